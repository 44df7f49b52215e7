package layout

// Alignment is a per-coverage override of the safety positions.
type Alignment int

// Safety alignments. AlignBase leaves the formation's safeties untouched.
const (
	AlignBase Alignment = iota
	AlignDeepTwo
	AlignSingleHigh
	AlignBox
)

// alignments maps coverage key → safety alignment.
var alignments = map[string]Alignment{
	"cover_2":       AlignDeepTwo,
	"cover_2_man":   AlignDeepTwo,
	"tampa_2":       AlignDeepTwo,
	"cover_4":       AlignDeepTwo,
	"cover_6":       AlignDeepTwo,
	"cover_3":       AlignSingleHigh,
	"cover_3_sky":   AlignSingleHigh,
	"cover_3_cloud": AlignSingleHigh,
	"cover_1":       AlignSingleHigh,
	"cover_1_robber": AlignSingleHigh,
	"cover_0":       AlignBox,
}

// Safety position overrides per alignment.
var (
	safetiesDeepTwo    = []Point{{120, 40}, {280, 40}}  // split the deep halves
	safetiesSingleHigh = []Point{{200, 35}, {250, 80}}  // free safety high, strong safety down
	safetiesBox        = []Point{{180, 95}, {220, 95}}  // everyone in the box
)

// AlignmentFor returns the safety alignment for a coverage key.
// Unknown keys return AlignBase.
func AlignmentFor(coverage string) Alignment {
	return alignments[coverage]
}

// AdjustSafeties returns the safety positions for a coverage, starting
// from the formation's base positions. The base slice is never mutated.
func AdjustSafeties(coverage string, base []Point) []Point {
	switch AlignmentFor(coverage) {
	case AlignDeepTwo:
		return safetiesDeepTwo
	case AlignSingleHigh:
		return safetiesSingleHigh
	case AlignBox:
		return safetiesBox
	}
	return base
}

// ZoneKind tags a coverage zone by depth.
type ZoneKind string

// Zone kinds.
const (
	ZoneDeep ZoneKind = "deep"
	ZoneFlat ZoneKind = "flat"
)

// Zone is a translucent coverage-responsibility rectangle.
type Zone struct {
	Kind       ZoneKind
	X, Y, W, H float64
	Fill       string
}

// zones maps coverage key → shaded responsibility areas.
// Pure man coverages have no zones.
var zones = map[string][]Zone{
	"cover_0": {},
	"cover_1": {
		{ZoneDeep, 50, 0, 300, 60, "rgba(255,165,0,0.3)"},
	},
	"cover_2": {
		{ZoneDeep, 50, 0, 150, 50, "rgba(255,165,0,0.3)"},
		{ZoneDeep, 200, 0, 150, 50, "rgba(255,165,0,0.3)"},
		{ZoneFlat, 0, 50, 80, 60, "rgba(255,69,0,0.3)"},
		{ZoneFlat, 320, 50, 80, 60, "rgba(255,69,0,0.3)"},
	},
	"tampa_2": {
		{ZoneDeep, 50, 0, 120, 50, "rgba(255,165,0,0.3)"},
		{ZoneDeep, 170, 0, 60, 70, "rgba(255,140,0,0.3)"},
		{ZoneDeep, 230, 0, 120, 50, "rgba(255,165,0,0.3)"},
	},
	"cover_3": {
		{ZoneDeep, 0, 0, 133, 60, "rgba(255,69,0,0.3)"},
		{ZoneDeep, 133, 0, 134, 60, "rgba(255,165,0,0.3)"},
		{ZoneDeep, 267, 0, 133, 60, "rgba(255,69,0,0.3)"},
	},
	"cover_4": {
		{ZoneDeep, 0, 0, 100, 60, "rgba(255,69,0,0.3)"},
		{ZoneDeep, 100, 0, 100, 60, "rgba(255,165,0,0.3)"},
		{ZoneDeep, 200, 0, 100, 60, "rgba(255,165,0,0.3)"},
		{ZoneDeep, 300, 0, 100, 60, "rgba(255,69,0,0.3)"},
	},
}

// ZonesFor returns the zone overlays for a coverage.
// Unknown keys and man coverages return an empty slice.
func ZonesFor(coverage string) []Zone {
	return zones[coverage]
}

// Spot is a labeled soft area a coverage concedes.
type Spot struct {
	X, Y  float64
	Label string
}

// spots maps coverage key → exploitable soft areas.
var spots = map[string][]Spot{
	"cover_0": {
		{200, 30, "Deep - no help!"},
	},
	"cover_1": {
		{100, 80, "Crossers"},
		{300, 80, "Crossers"},
	},
	"cover_2": {
		{200, 25, "Hole Shot"},
		{70, 15, "Corner"},
		{330, 15, "Corner"},
	},
	"tampa_2": {
		{120, 40, "Seam"},
		{280, 40, "Seam"},
	},
	"cover_3": {
		{100, 50, "Seam"},
		{300, 50, "Seam"},
		{50, 90, "Flat"},
		{350, 90, "Flat"},
	},
	"cover_4": {
		{50, 90, "Flat"},
		{350, 90, "Flat"},
		{150, 85, "Curl"},
		{250, 85, "Curl"},
	},
	"cover_2_man": {
		{200, 75, "Crossers"},
	},
}

// SpotsFor returns the soft-spot annotations for a coverage.
// Unknown keys return an empty slice.
func SpotsFor(coverage string) []Spot {
	return spots[coverage]
}
