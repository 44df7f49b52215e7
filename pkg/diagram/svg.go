package diagram

import (
	"bytes"
	"fmt"

	"github.com/fieldgeneral/playcall/pkg/diagram/layout"
)

// routeColor paints route lines and the shared arrowhead.
const routeColor = "#00bfff"

// Diagram is an ordered list of drawable elements. Earlier elements are
// painted first, so overlays must precede player markers and routes come
// last.
type Diagram struct {
	Elements []Element
}

// Append adds elements to the top of the paint stack.
func (d *Diagram) Append(els ...Element) {
	d.Elements = append(d.Elements, els...)
}

// SVG serializes the diagram as a self-contained SVG document with a
// fixed 400×250 viewBox. The output embeds one reusable arrowhead marker
// and is byte-identical across calls for the same element list.
func (d *Diagram) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		layout.CanvasWidth, layout.CanvasHeight)
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <marker id="arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">` + "\n")
	fmt.Fprintf(&buf, `      <polygon points="0 0, 10 3.5, 0 7" fill="%s" />`+"\n", routeColor)
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")

	for _, el := range d.Elements {
		el.encode(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
