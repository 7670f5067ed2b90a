package measure

import (
	"testing"

	"github.com/matzehuels/raylayout/pkg/rect"
)

func TestTextSize(t *testing.T) {
	m := Default()
	tests := []struct {
		name  string
		label string
		w, h  float64
	}{
		{"empty", "", 0, 0},
		{"single char", "a", 7, 13},
		{"word", "eliashogstvedt", 98, 13},
		{"two lines", "ab\nabcd", 28, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := m.Size(tt.label)
			if w != tt.w || h != tt.h {
				t.Errorf("Size(%q) = %v,%v, want %v,%v", tt.label, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestTextMeasureModes(t *testing.T) {
	tr := rect.New(rect.Node{W: 100, H: 100})
	id, _ := tr.Add(rect.RootID, rect.Node{X: 5, Y: 6, W: 1, H: 1, Label: "abc"})
	bare, _ := tr.Add(rect.RootID, rect.Node{X: 2, Y: 3, W: 40, H: 50})

	m := Default()

	if got, want := m.Measure(tr, id, Constrained), (rect.Rect{Left: 5, Top: 6, Right: 6, Bottom: 7}); got != want {
		t.Errorf("Constrained = %v, want %v", got, want)
	}
	if got, want := m.Measure(tr, id, Natural), (rect.Rect{Left: 5, Top: 6, Right: 26, Bottom: 19}); got != want {
		t.Errorf("Natural = %v, want %v", got, want)
	}

	nat := m.Measure(tr, bare, Natural)
	if !nat.IsEmpty() || nat.Left != 2 || nat.Top != 3 {
		t.Errorf("Natural without content = %v, want empty box at (2,3)", nat)
	}
	if got := m.Measure(tr, rect.NodeID(99), Natural); got != (rect.Rect{}) {
		t.Errorf("unknown node = %v, want zero", got)
	}
}

func TestTextNilFace(t *testing.T) {
	m := &Text{}
	if w, h := m.Size("ab"); w != 14 || h != 13 {
		t.Errorf("Size with nil face = %v,%v, want 14,13", w, h)
	}
}

func TestBoxes(t *testing.T) {
	tr := rect.New(rect.Node{W: 100, H: 100})
	id, _ := tr.Add(rect.RootID, rect.Node{X: 1, Y: 2, W: 3, H: 4, Label: "ignored"})
	want := rect.Rect{Left: 1, Top: 2, Right: 4, Bottom: 6}
	for _, mode := range []Mode{Constrained, Natural} {
		if got := (Boxes{}).Measure(tr, id, mode); got != want {
			t.Errorf("Boxes.Measure(%v) = %v, want %v", mode, got, want)
		}
	}
}

func TestModeString(t *testing.T) {
	if Constrained.String() != "constrained" || Natural.String() != "natural" {
		t.Errorf("Mode strings = %q,%q", Constrained.String(), Natural.String())
	}
}
