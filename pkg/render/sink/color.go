package sink

import (
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

const outlineColor = "#333333"

// parseColor resolves a CSS colour. ok is false for the empty string, which
// means "no fill", and for a colour csscolorparser rejects. Scene and tree
// loaders refuse such colours, so the latter only reaches here for trees
// built in code.
func parseColor(s string) (c color.RGBA, ok bool) {
	if s == "" {
		return color.RGBA{}, false
	}
	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b, a := parsed.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, true
}

func hexColor(c color.RGBA) string {
	return csscolorparser.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}.HexString()
}
