package layout

// DefaultFormation is the fallback for unknown formation keys.
const DefaultFormation = "4-3"

// formations maps formation key → base defensive alignment.
var formations = map[string]Formation{
	"4-3": {
		Line:        []Point{{155, 135}, {185, 135}, {215, 135}, {245, 135}},
		Linebackers: []Point{{140, 110}, {200, 105}, {260, 110}},
		Cornerbacks: []Point{{50, 100}, {350, 100}},
		SlotCorners: []Point{},
		Safeties:    []Point{{150, 60}, {250, 60}},
	},
	"3-4": {
		Line:        []Point{{170, 135}, {200, 135}, {230, 135}},
		Linebackers: []Point{{120, 115}, {165, 110}, {235, 110}, {280, 115}},
		Cornerbacks: []Point{{50, 100}, {350, 100}},
		SlotCorners: []Point{},
		Safeties:    []Point{{150, 60}, {250, 60}},
	},
	"nickel": {
		Line:        []Point{{155, 135}, {185, 135}, {215, 135}, {245, 135}},
		Linebackers: []Point{{170, 110}, {230, 110}},
		Cornerbacks: []Point{{50, 100}, {350, 100}},
		SlotCorners: []Point{{100, 105}},
		Safeties:    []Point{{150, 50}, {250, 50}},
	},
	"dime": {
		Line:        []Point{{155, 135}, {185, 135}, {215, 135}, {245, 135}},
		Linebackers: []Point{{200, 105}},
		Cornerbacks: []Point{{50, 100}, {350, 100}},
		SlotCorners: []Point{{100, 105}, {300, 105}},
		Safeties:    []Point{{150, 45}, {250, 45}},
	},
}

// FormationFor returns the base alignment for a formation key.
// Unknown keys resolve to the 4-3 so rendering never fails.
func FormationFor(key string) Formation {
	if f, ok := formations[key]; ok {
		return f
	}
	return formations[DefaultFormation]
}

// KnownFormation reports whether key has its own layout table.
func KnownFormation(key string) bool {
	_, ok := formations[key]
	return ok
}

// FormationKeys returns every key with a layout table, unordered.
func FormationKeys() []string {
	keys := make([]string, 0, len(formations))
	for k := range formations {
		keys = append(keys, k)
	}
	return keys
}
