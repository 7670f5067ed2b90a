package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/raylayout/pkg/rect"
)

const (
	fontFamily = "monospace"
	fontSize   = 13.0
	// Baseline of the first label line, matching the 7x13 measuring face.
	labelAscent = 11.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	outlines   bool
	labels     bool
	names      bool
	background string
}

func WithOutlines() SVGOption { return func(r *svgRenderer) { r.outlines = true } }
func WithLabels() SVGOption   { return func(r *svgRenderer) { r.labels = true } }

// WithNames adds a data-name attribute to named groups so the output can be
// styled or scripted by node name.
func WithNames() SVGOption { return func(r *svgRenderer) { r.names = true } }

// WithBackground fills the canvas before drawing the root.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// RenderSVG draws t as nested groups.
func RenderSVG(t *rect.Tree, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	root := t.MustNode(rect.RootID)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(root.W), num(root.H), num(root.W), num(root.H))
	if c, ok := parseColor(r.background); ok {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(c))
	}
	r.renderNode(&buf, t, rect.RootID, 1)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, t *rect.Tree, id rect.NodeID, depth int) {
	n := t.MustNode(id)
	indent := strings.Repeat("  ", depth)

	x, y := n.X, n.Y
	if id == rect.RootID {
		x, y = 0, 0
	}

	fmt.Fprintf(buf, `%s<g transform="translate(%s,%s)"`, indent, num(x), num(y))
	if r.names && n.Name != "" {
		fmt.Fprintf(buf, ` data-name="%s"`, EscapeXML(n.Name))
	}
	buf.WriteString(">\n")

	fill := "none"
	if c, ok := parseColor(n.Color); ok {
		fill = hexColor(c)
	}
	stroke := ""
	if r.outlines {
		stroke = fmt.Sprintf(` stroke="%s" stroke-width="1"`, outlineColor)
	}
	if fill != "none" || stroke != "" {
		fmt.Fprintf(buf, `%s  <rect width="%s" height="%s" fill="%s"%s/>`+"\n",
			indent, num(n.W), num(n.H), fill, stroke)
	}

	if r.labels && n.Label != "" {
		renderLabel(buf, indent+"  ", n.Label)
	}

	for _, c := range t.Children(id) {
		r.renderNode(buf, t, c, depth+1)
	}
	fmt.Fprintf(buf, "%s</g>\n", indent)
}

func renderLabel(buf *bytes.Buffer, indent, label string) {
	fmt.Fprintf(buf, `%s<text font-family="%s" font-size="%s">`, indent, fontFamily, num(fontSize))
	for i, line := range strings.Split(label, "\n") {
		fmt.Fprintf(buf, `<tspan x="0" y="%s">%s</tspan>`, num(labelAscent+float64(i)*fontSize), EscapeXML(line))
	}
	buf.WriteString("</text>\n")
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
