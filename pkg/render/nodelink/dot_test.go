package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/raylayout/pkg/rect"
)

func sampleTree(t *testing.T) *rect.Tree {
	t.Helper()
	tr := rect.New(rect.Node{Name: "stage", W: 100, H: 50})
	a, err := tr.Add(rect.RootID, rect.Node{Name: "a", X: 10, Y: 20, W: 30, H: 10, Color: "red", Label: "hi\nthere"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Add(a, rect.Node{W: 4, H: 4}); err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestToDOT(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "plain",
			want: []string{
				`"n0" [label="stage"];`,
				`"n1" [label="a", fillcolor="#ff0000"];`,
				`"n2" [label="#2", style="rounded,filled,dashed"];`,
				`"n0" -> "n1";`,
				`"n1" -> "n2";`,
			},
		},
		{
			name: "detailed",
			opts: Options{Detailed: true},
			want: []string{
				`label="a\nx: 10, y: 20\nw: 30, h: 10\nlabel: hi there"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(sampleTree(t), tt.opts)
			if !strings.HasPrefix(dot, "digraph G {") {
				t.Errorf("unexpected header: %q", dot[:20])
			}
			for _, s := range tt.want {
				if !strings.Contains(dot, s) {
					t.Errorf("DOT missing %q:\n%s", s, dot)
				}
			}
			if got := strings.Count(dot, "->"); got != 2 {
				t.Errorf("got %d edges, want 2", got)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleTree(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("viewBox not normalized:\n%.200s", out)
	}
	if !strings.Contains(out, "stage") {
		t.Error("node label missing from SVG")
	}
}

func TestRenderSVGBadDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("RenderSVG accepted malformed DOT")
	}
}
