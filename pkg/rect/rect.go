package rect

import (
	"fmt"
	"math"
)

// Point is a position in a parent's coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal span of the box.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the box.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the box encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right) || !(r.Top < r.Bottom)
}

// Union returns the smallest box containing both r and other.
// Empty boxes do not contribute.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsEmpty() && other.IsEmpty():
		return Rect{}
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(left=%.2f, top=%.2f, right=%.2f, bottom=%.2f)", r.Left, r.Top, r.Right, r.Bottom)
}
