package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// MaxPixels bounds the raster canvas (width times height after scaling),
// roughly 128 MiB of RGBA.
const MaxPixels = 1 << 25

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions applies SVG options (outlines, labels, background) to
// the raster output, so both formats look alike.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterises t.
func RenderPNG(t *rect.Tree, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid scale %g", r.scale)
	}
	style := newSVGRenderer(r.svgOpts...)

	root := t.MustNode(rect.RootID)
	fw, fh := math.Ceil(root.W*r.scale), math.Ceil(root.H*r.scale)
	if !(fw >= 1 && fh >= 1) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty canvas %gx%g", root.W, root.H)
	}
	if fw*fh > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"canvas %gx%g at scale %g exceeds %d pixels", root.W, root.H, r.scale, MaxPixels)
	}
	w, h := int(fw), int(fh)

	dc := gg.NewContext(w, h)
	if c, ok := parseColor(style.background); ok {
		dc.SetColor(c)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)
	dc.SetFontFace(basicfont.Face7x13)
	drawNode(dc, &style, t, rect.RootID)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawNode(dc *gg.Context, style *svgRenderer, t *rect.Tree, id rect.NodeID) {
	n := t.MustNode(id)
	dc.Push()
	defer dc.Pop()
	if id != rect.RootID {
		dc.Translate(n.X, n.Y)
	}

	if c, ok := parseColor(n.Color); ok {
		dc.SetColor(c)
		dc.DrawRectangle(0, 0, n.W, n.H)
		dc.Fill()
	}
	if style.outlines {
		c, _ := parseColor(outlineColor)
		dc.SetColor(c)
		dc.SetLineWidth(1)
		dc.DrawRectangle(0, 0, n.W, n.H)
		dc.Stroke()
	}
	if style.labels && n.Label != "" {
		dc.SetRGB(0, 0, 0)
		for i, line := range strings.Split(n.Label, "\n") {
			dc.DrawString(line, 0, labelAscent+float64(i)*fontSize)
		}
	}

	for _, c := range t.Children(id) {
		drawNode(dc, style, t, c)
	}
}
