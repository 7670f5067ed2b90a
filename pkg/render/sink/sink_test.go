package sink

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/raylayout/pkg/errors"
	rlio "github.com/matzehuels/raylayout/pkg/io"
	"github.com/matzehuels/raylayout/pkg/rect"
)

func sampleTree(t *testing.T) *rect.Tree {
	t.Helper()
	tr := rect.New(rect.Node{Name: "stage", X: 7, Y: 7, W: 100, H: 50, Color: "white"})
	a, err := tr.Add(rect.RootID, rect.Node{Name: "a", X: 10, Y: 20, W: 30, H: 10, Color: "red", Label: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Add(a, rect.Node{X: 2, Y: 2, W: 4, H: 4, Label: "x<y\nz"}); err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestRenderSVG(t *testing.T) {
	tests := []struct {
		name    string
		opts    []SVGOption
		want    []string
		notWant []string
	}{
		{
			name: "defaults",
			want: []string{
				`viewBox="0 0 100 50" width="100" height="50"`,
				`<g transform="translate(0,0)">`,
				`<g transform="translate(10,20)">`,
				`<rect width="30" height="10" fill="#ff0000"/>`,
				`<rect width="100" height="50" fill="#ffffff"/>`,
			},
			notWant: []string{"<text", "stroke=", "data-name"},
		},
		{
			name: "labels",
			opts: []SVGOption{WithLabels()},
			want: []string{
				`<tspan x="0" y="11">hi</tspan>`,
				`<tspan x="0" y="11">x&lt;y</tspan><tspan x="0" y="24">z</tspan>`,
			},
		},
		{
			name: "outlines",
			opts: []SVGOption{WithOutlines()},
			want: []string{
				`<rect width="4" height="4" fill="none" stroke="#333333" stroke-width="1"/>`,
			},
		},
		{
			name: "names and background",
			opts: []SVGOption{WithNames(), WithBackground("black")},
			want: []string{
				`data-name="stage"`,
				`<g transform="translate(10,20)" data-name="a">`,
				`<rect width="100%" height="100%" fill="#000000"/>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(RenderSVG(sampleTree(t), tt.opts...))
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output unexpectedly contains %q", s)
				}
			}
		})
	}
}

func TestRenderSVGNesting(t *testing.T) {
	out := string(RenderSVG(sampleTree(t)))
	if got := strings.Count(out, "<g "); got != 3 {
		t.Errorf("got %d groups, want 3", got)
	}
	if got := strings.Count(out, "</g>"); got != 3 {
		t.Errorf("got %d closing groups, want 3", got)
	}
	// The grandchild group opens before its parent closes.
	inner := strings.Index(out, "translate(2,2)")
	firstClose := strings.Index(out, "</g>")
	if inner < 0 || inner > firstClose {
		t.Error("grandchild is not nested inside its parent")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(sampleTree(t), WithScale(2), WithPNGSVGOptions(WithLabels(), WithOutlines()))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 200x100", b)
	}

	// Inside "a", clear of its label and child: (30, 27) in tree space.
	r, g, b, _ := img.At(60, 54).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel in a = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
	// Root fill.
	r, g, b, _ = img.At(180, 90).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("pixel in root = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGErrors(t *testing.T) {
	tests := []struct {
		name string
		tree *rect.Tree
		opts []PNGOption
	}{
		{"zero scale", sampleTree(t), []PNGOption{WithScale(0)}},
		{"empty canvas", rect.New(rect.Node{}), nil},
		{"nan size", rect.New(rect.Node{W: math.NaN(), H: 10}), nil},
		{"huge canvas", rect.New(rect.Node{W: 1e9, H: 1e9}), nil},
		{"scale pushes past the limit", rect.New(rect.Node{W: 4000, H: 4000}), []PNGOption{WithScale(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderPNG(tt.tree, tt.opts...)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleTree(t))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	back, err := rlio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if back.Len() != 3 {
		t.Errorf("Len() = %d, want 3", back.Len())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", "", false},
		{"steelblue", "#4682b4", true},
		{"#4682b4", "#4682b4", true},
		{"rgb(70, 130, 180)", "#4682b4", true},
		{"not-a-colour", "", false},
	}
	for _, tt := range tests {
		c, ok := parseColor(tt.in)
		if ok != tt.wantOK {
			t.Errorf("parseColor(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && hexColor(c) != tt.want {
			t.Errorf("parseColor(%q) = %s, want %s", tt.in, hexColor(c), tt.want)
		}
	}
}
