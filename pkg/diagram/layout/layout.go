package layout

// Canvas dimensions shared by every table in this package.
const (
	CanvasWidth  = 400.0
	CanvasHeight = 250.0
)

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Role identifies a defensive role group.
type Role int

// Defensive role groups, in draw order.
const (
	RoleLine Role = iota
	RoleLinebacker
	RoleCornerback
	RoleSlotCorner
	RoleSafety
)

// String returns the role group name.
func (r Role) String() string {
	switch r {
	case RoleLine:
		return "line"
	case RoleLinebacker:
		return "linebacker"
	case RoleCornerback:
		return "cornerback"
	case RoleSlotCorner:
		return "slot-corner"
	case RoleSafety:
		return "safety"
	}
	return "unknown"
}

// Formation is a defensive alignment: one ordered position list per role
// group. Slices may be empty (a 4-3 has no slot corners) but never nil
// for formations returned by FormationFor.
type Formation struct {
	Line        []Point
	Linebackers []Point
	Cornerbacks []Point
	SlotCorners []Point
	Safeties    []Point
}

// Group pairs a role with its positions for ordered iteration.
type Group struct {
	Role   Role
	Points []Point
}

// Groups returns the formation's role groups in fixed draw order.
func (f Formation) Groups() []Group {
	return []Group{
		{RoleLine, f.Line},
		{RoleLinebacker, f.Linebackers},
		{RoleCornerback, f.Cornerbacks},
		{RoleSlotCorner, f.SlotCorners},
		{RoleSafety, f.Safeties},
	}
}

// PositionCount returns the total number of defenders in the formation.
func (f Formation) PositionCount() int {
	return len(f.Line) + len(f.Linebackers) + len(f.Cornerbacks) +
		len(f.SlotCorners) + len(f.Safeties)
}
