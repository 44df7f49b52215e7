package diagram

import "github.com/fieldgeneral/playcall/pkg/diagram/layout"

// Field paint.
const (
	fieldFill     = "#2d5a27"
	lineStroke    = "white"
	spotFill      = "rgba(0,255,0,0.4)"
	spotStroke    = "#00ff00"
	spotLabelSize = 10.0
)

// fieldElements draws the constant background: turf, four yard lines,
// and the dashed midline.
func fieldElements() []Element {
	els := []Element{
		Rect{X: 0, Y: 0, W: layout.CanvasWidth, H: layout.CanvasHeight, Fill: fieldFill},
	}
	for _, y := range []float64{50, 100, 150, 200} {
		els = append(els, Line{
			X1: 0, Y1: y, X2: layout.CanvasWidth, Y2: y,
			Stroke: lineStroke, StrokeWidth: 2,
		})
	}
	els = append(els, Line{
		X1: 200, Y1: 0, X2: 200, Y2: layout.CanvasHeight,
		Stroke: lineStroke, StrokeWidth: 1, Dash: "5,5",
	})
	return els
}

// zoneElements draws one translucent rectangle per coverage zone.
// Man coverages and unknown keys produce nothing.
func zoneElements(coverage string) []Element {
	zones := layout.ZonesFor(coverage)
	els := make([]Element, 0, len(zones))
	for _, z := range zones {
		els = append(els, Rect{X: z.X, Y: z.Y, W: z.W, H: z.H, Fill: z.Fill})
	}
	return els
}

// spotElements draws a pulsing circle and label per coverage soft spot.
func spotElements(coverage string) []Element {
	spots := layout.SpotsFor(coverage)
	els := make([]Element, 0, 2*len(spots))
	for _, s := range spots {
		els = append(els,
			Circle{
				CX: s.X, CY: s.Y, R: 15,
				Fill: spotFill, Stroke: spotStroke, StrokeWidth: 2,
				Pulse: true,
			},
			Label{
				X: s.X, Y: s.Y + 30,
				Text: s.Label, Fill: spotStroke, Size: spotLabelSize, Bold: true,
			},
		)
	}
	return els
}

// routeElements draws one arrow-terminated line per route in the concept.
// Unknown concepts produce nothing.
func routeElements(concept string) []Element {
	routes := layout.RoutesFor(concept)
	els := make([]Element, 0, len(routes))
	for _, r := range routes {
		els = append(els, Line{
			X1: r.From.X, Y1: r.From.Y, X2: r.To.X, Y2: r.To.Y,
			Stroke: routeColor, StrokeWidth: 3, Arrow: true,
		})
	}
	return els
}
