// Package measure answers "how big is this node" in two modes.
//
// [Constrained] returns the node's committed box. [Natural] ignores the
// committed size and returns the box the node's own content needs: for a
// labelled node that is the text extent, for a node without content it is a
// zero-size box at the node's origin (an auto-sized box with nothing inside).
//
// Both modes are pure functions of the tree; nothing is toggled and restored.
package measure

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/raylayout/pkg/rect"
)

// Mode selects how a node is measured.
type Mode int

const (
	// Constrained measures the committed box.
	Constrained Mode = iota
	// Natural measures the content, ignoring the committed size.
	Natural
)

func (m Mode) String() string {
	if m == Natural {
		return "natural"
	}
	return "constrained"
}

// Measurer reports a node's box, in its parent's coordinate space.
type Measurer interface {
	Measure(t *rect.Tree, id rect.NodeID, mode Mode) rect.Rect
}

// Text measures labels with a font face. Each line of a label stacks below
// the previous one.
type Text struct {
	Face font.Face
}

// Default returns a Text measurer using the fixed 7x13 bitmap face, which
// keeps results identical across machines.
func Default() *Text {
	return &Text{Face: basicfont.Face7x13}
}

// Measure implements [Measurer].
func (m *Text) Measure(t *rect.Tree, id rect.NodeID, mode Mode) rect.Rect {
	n, ok := t.Node(id)
	if !ok {
		return rect.Rect{}
	}
	if mode == Constrained {
		return n.Box()
	}
	w, h := m.Size(n.Label)
	return rect.Rect{Left: n.X, Top: n.Y, Right: n.X + w, Bottom: n.Y + h}
}

// Size returns the width and height of s when drawn with the face.
func (m *Text) Size(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	face := m.face()
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = math.Max(w, math.Ceil(float64(font.MeasureString(face, line))/64.0))
	}
	h = lineHeight(face) * float64(len(lines))
	return w, h
}

func (m *Text) face() font.Face {
	if m.Face == nil {
		return basicfont.Face7x13
	}
	return m.Face
}

func lineHeight(face font.Face) float64 {
	return math.Ceil(float64(face.Metrics().Height) / 64.0)
}

// Boxes measures with each node's committed box in both modes. It suits
// callers with no content to measure, such as trees loaded from documents.
type Boxes struct{}

// Measure implements [Measurer].
func (Boxes) Measure(t *rect.Tree, id rect.NodeID, mode Mode) rect.Rect {
	n, ok := t.Node(id)
	if !ok {
		return rect.Rect{}
	}
	return n.Box()
}
