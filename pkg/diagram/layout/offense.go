package layout

// OffensiveRole determines the marker shape and color for an offensive
// position.
type OffensiveRole int

// Offensive roles.
const (
	OffenseLine OffensiveRole = iota
	OffenseQuarterback
	OffenseBack
	OffenseReceiver
)

// OffensivePosition is one player in the offensive alignment.
type OffensivePosition struct {
	Label string
	Role  OffensiveRole
	At    Point
}

// proFormation is the fixed 11-man pro alignment the offense is always
// drawn in. Offensive alignment is not configurable yet, so there is a
// single table rather than a keyed lookup.
var proFormation = []OffensivePosition{
	{"C", OffenseLine, Point{200, 150}},
	{"LG", OffenseLine, Point{170, 150}},
	{"RG", OffenseLine, Point{230, 150}},
	{"LT", OffenseLine, Point{140, 150}},
	{"RT", OffenseLine, Point{260, 150}},
	{"QB", OffenseQuarterback, Point{200, 175}},
	{"RB", OffenseBack, Point{200, 200}},
	{"WR1", OffenseReceiver, Point{50, 150}},
	{"WR2", OffenseReceiver, Point{350, 150}},
	{"TE", OffenseReceiver, Point{290, 150}},
	{"SLOT", OffenseReceiver, Point{100, 150}},
}

// ProFormation returns the fixed offensive alignment in draw order.
func ProFormation() []OffensivePosition {
	return proFormation
}
