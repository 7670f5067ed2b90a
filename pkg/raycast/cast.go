package raycast

import (
	"math"
	"slices"

	"github.com/matzehuels/raylayout/pkg/rect"
)

// Hit is the result of a cast.
type Hit struct {
	Found   bool        // Whether any sibling obstructs
	Sibling rect.NodeID // The nearest obstruction (NoNode when !Found)
	Contact float64     // The obstruction's near edge along the axis of motion
	Pos     rect.Point  // Where the subject's top-left lands touching Sibling
}

type candidate struct {
	id      rect.NodeID
	contact float64
}

// Cast looks for the nearest sibling of id blocking travel in dir. A None
// direction, an empty sibling set or no blocking sibling all produce a Hit
// with Found == false. Casting from the root fails with INVALID_OPERATION.
func Cast(t *rect.Tree, id rect.NodeID, dir Direction) (Hit, error) {
	miss := Hit{Sibling: rect.NoNode}

	siblings, err := t.Siblings(id)
	if err != nil {
		return miss, err
	}
	if dir == None {
		return miss, nil
	}

	a := t.WorldRect(id)
	found := make([]candidate, 0, len(siblings))

	for _, sib := range siblings {
		b := t.WorldRect(sib)

		switch {
		case dir.Vertical() && spansOverlap(a.Left, a.Right, b.Left, b.Right):
			if dir == Down && b.Top > a.Top {
				found = append(found, candidate{sib, b.Top})
			} else if dir == Up && b.Bottom < a.Bottom {
				found = append(found, candidate{sib, b.Bottom})
			}
		case dir.Horizontal() && spansOverlap(a.Top, a.Bottom, b.Top, b.Bottom):
			if dir == Right && b.Right > a.Right {
				found = append(found, candidate{sib, b.Left})
			} else if dir == Left && b.Left < a.Left {
				found = append(found, candidate{sib, b.Right})
			}
		}
	}

	if len(found) == 0 {
		return miss, nil
	}

	origin := leadingEdge(a, dir)
	slices.SortStableFunc(found, func(x, y candidate) int {
		dx, dy := math.Abs(x.contact-origin), math.Abs(y.contact-origin)
		switch {
		case dx < dy:
			return -1
		case dx > dy:
			return 1
		}
		return 0
	})

	win := found[0]
	return Hit{
		Found:   true,
		Sibling: win.id,
		Contact: win.contact,
		Pos:     landing(t.MustNode(id), t.MustNode(win.id), dir),
	}, nil
}

// spansOverlap is the generous overlap test between the subject's span
// [aLo, aHi] and a sibling's [bLo, bHi]: containment either way, or the
// sibling straddling one of the subject's ends.
func spansOverlap(aLo, aHi, bLo, bHi float64) bool {
	return (bLo <= aLo && bHi >= aHi) ||
		(bLo >= aLo && bHi <= aHi) ||
		(bHi > aHi && bLo < aHi) ||
		(bHi > aLo && bLo < aLo)
}

func leadingEdge(a rect.Rect, dir Direction) float64 {
	switch dir {
	case Down:
		return a.Bottom
	case Up:
		return a.Top
	case Right:
		return a.Right
	case Left:
		return a.Left
	}
	return 0
}

// landing keeps the subject's cross-axis coordinate and places its leading
// edge on the obstruction's trailing edge.
func landing(a, b *rect.Node, dir Direction) rect.Point {
	p := rect.Point{X: b.X, Y: b.Y}
	switch dir {
	case Left:
		p.Y = a.Y
		p.X = b.X + b.W
	case Right:
		p.Y = a.Y
		p.X = b.X - a.W
	case Up:
		p.X = a.X
		p.Y = b.Y + b.H
	case Down:
		p.X = a.X
		p.Y = b.Y - a.H
	}
	return p
}
