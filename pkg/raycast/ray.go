package raycast

import "github.com/matzehuels/raylayout/pkg/rect"

// Direction is one of the four cardinal directions, or None.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	None:  "none",
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "unknown"
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Ray is a directional probe from Start towards End. Only the sign of
// End-Start matters; its length is never used.
type Ray struct {
	Start, End rect.Point
}

// Toward builds the ray from a node's current corner to a target point.
func Toward(from, to rect.Point) Ray {
	return Ray{Start: from, End: to}
}

// Direction classifies the ray. A vertical component takes precedence over a
// horizontal one, and a zero vector yields None.
func (r Ray) Direction() Direction {
	dx := r.End.X - r.Start.X
	dy := r.End.Y - r.Start.Y
	switch {
	case dy > 0:
		return Down
	case dy < 0:
		return Up
	case dx > 0:
		return Right
	case dx < 0:
		return Left
	}
	return None
}
