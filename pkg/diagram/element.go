package diagram

import (
	"bytes"
	"fmt"
)

// Element is a single drawable item in a diagram.
// Implementations write one SVG fragment and nothing else.
type Element interface {
	encode(buf *bytes.Buffer)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H  float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (r Rect) encode(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s"`, r.X, r.Y, r.W, r.H, r.Fill)
	writeStroke(buf, r.Stroke, r.StrokeWidth)
	buf.WriteString(" />\n")
}

// Circle is a circular marker. Pulse adds the soft-spot breathing
// animation used for coverage weaknesses.
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Pulse       bool
}

func (c Circle) encode(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <circle cx="%g" cy="%g" r="%g" fill="%s"`, c.CX, c.CY, c.R, c.Fill)
	writeStroke(buf, c.Stroke, c.StrokeWidth)
	if !c.Pulse {
		buf.WriteString(" />\n")
		return
	}
	buf.WriteString(">\n")
	buf.WriteString(`    <animate attributeName="r" values="12;18;12" dur="1.5s" repeatCount="indefinite"/>` + "\n")
	buf.WriteString(`    <animate attributeName="opacity" values="0.6;0.3;0.6" dur="1.5s" repeatCount="indefinite"/>` + "\n")
	buf.WriteString("  </circle>\n")
}

// Triangle is the defender marker: an upward-pointing triangle centered
// on CX, CY.
type Triangle struct {
	CX, CY      float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (t Triangle) encode(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <polygon points="%g,%g %g,%g %g,%g" fill="%s"`,
		t.CX, t.CY-10, t.CX-10, t.CY+8, t.CX+10, t.CY+8, t.Fill)
	writeStroke(buf, t.Stroke, t.StrokeWidth)
	buf.WriteString(" />\n")
}

// Line is a straight segment. Dash holds an SVG dash pattern; Arrow
// terminates the line with the shared arrowhead marker.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	Dash           string
	Arrow          bool
}

func (l Line) encode(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"`,
		l.X1, l.Y1, l.X2, l.Y2, l.Stroke, l.StrokeWidth)
	if l.Dash != "" {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, l.Dash)
	}
	if l.Arrow {
		buf.WriteString(` marker-end="url(#arrowhead)"`)
	}
	buf.WriteString(" />\n")
}

// Label is centered annotation text.
type Label struct {
	X, Y float64
	Text string
	Fill string
	Size float64
	Bold bool
}

func (l Label) encode(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <text x="%g" y="%g" text-anchor="middle" fill="%s" font-size="%g"`,
		l.X, l.Y, l.Fill, l.Size)
	if l.Bold {
		buf.WriteString(` font-weight="bold"`)
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(l.Text))
}

func writeStroke(buf *bytes.Buffer, stroke string, width float64) {
	if stroke == "" {
		return
	}
	fmt.Fprintf(buf, ` stroke="%s" stroke-width="%g"`, stroke, width)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
