package diagram

import "github.com/fieldgeneral/playcall/pkg/diagram/layout"

// Marker paint shared by both sides.
const (
	markerStroke      = "white"
	markerStrokeWidth = 2.0
	markerRadius      = 10.0
)

// Offensive marker fills by role.
var offenseFills = map[layout.OffensiveRole]string{
	layout.OffenseLine:        "#4169e1",
	layout.OffenseQuarterback: "#ffd700",
	layout.OffenseBack:        "#32cd32",
	layout.OffenseReceiver:    "#1e90ff",
}

// Defensive marker fills by role group.
var defenseFills = map[layout.Role]string{
	layout.RoleLine:       "#dc143c",
	layout.RoleLinebacker: "#ff6347",
	layout.RoleCornerback: "#ff4500",
	layout.RoleSlotCorner: "#ff4500",
	layout.RoleSafety:     "#ff8c00",
}

// offenseElements draws the fixed 11-man pro alignment: squares for the
// line, circles for skill positions. The offense is always shown in this
// one look; alignment is not configurable yet.
func offenseElements() []Element {
	pro := layout.ProFormation()
	els := make([]Element, 0, len(pro))
	for _, p := range pro {
		fill := offenseFills[p.Role]
		if p.Role == layout.OffenseLine {
			els = append(els, Rect{
				X: p.At.X - 8, Y: p.At.Y - 8, W: 16, H: 16,
				Fill: fill, Stroke: markerStroke, StrokeWidth: markerStrokeWidth,
			})
			continue
		}
		els = append(els, Circle{
			CX: p.At.X, CY: p.At.Y, R: markerRadius,
			Fill: fill, Stroke: markerStroke, StrokeWidth: markerStrokeWidth,
		})
	}
	return els
}

// defenseElements draws one triangle per defender. The formation gives
// the base alignment; the coverage may replace the safety positions.
func defenseElements(formation, coverage string) []Element {
	f := layout.FormationFor(formation)
	f.Safeties = layout.AdjustSafeties(coverage, f.Safeties)

	els := make([]Element, 0, f.PositionCount())
	for _, g := range f.Groups() {
		fill := defenseFills[g.Role]
		for _, pt := range g.Points {
			els = append(els, Triangle{
				CX: pt.X, CY: pt.Y,
				Fill: fill, Stroke: markerStroke, StrokeWidth: markerStrokeWidth,
			})
		}
	}
	return els
}
