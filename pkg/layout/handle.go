package layout

import (
	"github.com/matzehuels/raylayout/pkg/measure"
	"github.com/matzehuels/raylayout/pkg/raycast"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// Handle addresses one node of an Engine's tree. Handles are values; copies
// refer to the same node.
type Handle struct {
	e   *Engine
	id  rect.NodeID
	err error
}

// ID returns the node the handle addresses.
func (h Handle) ID() rect.NodeID { return h.id }

// Err returns the first error raised along the handle's pipeline.
func (h Handle) Err() error { return h.err }

// Node returns the addressed node for direct reads and writes.
func (h Handle) Node() *rect.Node {
	n, _ := h.e.Tree.Node(h.id)
	return n
}

// Equal reports whether both handles address the same node of the same
// tree, independent of current geometry.
func (h Handle) Equal(other Handle) bool {
	return h.e != nil && other.e != nil && h.e.Tree == other.e.Tree && h.id == other.id
}

// Parent returns a handle on the parent node.
func (h Handle) Parent() Handle {
	if h.err != nil {
		return h
	}
	p, err := h.e.Tree.Parent(h.id)
	return Handle{e: h.e, id: p, err: err}
}

// Children returns handles on the direct children, in structural order.
func (h Handle) Children() []Handle {
	if h.err != nil {
		return nil
	}
	ids := h.e.Tree.Children(h.id)
	out := make([]Handle, len(ids))
	for i, id := range ids {
		out[i] = Handle{e: h.e, id: id}
	}
	return out
}

// WorldRect returns the node's box in its parent's space.
func (h Handle) WorldRect() rect.Rect { return h.e.Tree.WorldRect(h.id) }

// MoveRight slides the node right until it touches a sibling or the parent's
// right edge.
func (h Handle) MoveRight() Handle {
	return h.step(OpMoveRight, func(n, p *rect.Node) rect.Point {
		return rect.Point{X: p.W - n.W, Y: n.Y}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.X = pick(hit, hit.Pos.X, target.X)
	})
}

// MoveLeft slides the node left until it touches a sibling or x = 0.
func (h Handle) MoveLeft() Handle {
	return h.step(OpMoveLeft, func(n, _ *rect.Node) rect.Point {
		return rect.Point{X: 0, Y: n.Y}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.X = pick(hit, hit.Pos.X, target.X)
	})
}

// MoveUp slides the node up until it touches a sibling or y = 0.
func (h Handle) MoveUp() Handle {
	return h.step(OpMoveUp, func(n, _ *rect.Node) rect.Point {
		return rect.Point{X: n.X, Y: 0}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.Y = pick(hit, hit.Pos.Y, target.Y)
	})
}

// MoveDown slides the node down until it touches a sibling or the parent's
// bottom edge.
func (h Handle) MoveDown() Handle {
	return h.step(OpMoveDown, func(n, p *rect.Node) rect.Point {
		return rect.Point{X: n.X, Y: p.H - n.H}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.Y = pick(hit, hit.Pos.Y, target.Y)
	})
}

// StretchRight sets the width from the first obstruction to the right, or
// to the parent's width when none.
func (h Handle) StretchRight() Handle {
	return h.step(OpStretchRight, func(n, p *rect.Node) rect.Point {
		return rect.Point{X: p.W, Y: n.Y}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.W = pick(hit, hit.Pos.X, target.X)
	})
}

// StretchLeft moves the left edge to the first obstruction (or x = 0) while
// keeping the right edge in place.
func (h Handle) StretchLeft() Handle {
	return h.step(OpStretchLeft, func(n, _ *rect.Node) rect.Point {
		return rect.Point{X: 0, Y: n.Y}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		right := n.X + n.W
		n.X = pick(hit, hit.Pos.X, target.X)
		n.W = right - n.X
	})
}

// StretchUp moves the top edge to the first obstruction (or y = 0) while
// keeping the bottom edge in place.
func (h Handle) StretchUp() Handle {
	return h.step(OpStretchUp, func(n, _ *rect.Node) rect.Point {
		return rect.Point{X: n.X, Y: 0}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		bottom := n.Y + n.H
		n.Y = pick(hit, hit.Pos.Y, target.Y)
		n.H = bottom - n.Y
	})
}

// StretchDown sets the height from the first obstruction below, or to the
// parent's height when none.
func (h Handle) StretchDown() Handle {
	return h.step(OpStretchDown, func(n, p *rect.Node) rect.Point {
		return rect.Point{X: n.X, Y: p.H}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.H = pick(hit, hit.Pos.Y, target.Y)
	})
}

// CenterXParent centers the node horizontally in its parent, stopping short
// of a sibling between the node and the parent's midline.
func (h Handle) CenterXParent() Handle {
	return h.step(OpCenterXParent, func(n, p *rect.Node) rect.Point {
		return rect.Point{X: p.W / 2, Y: n.Y}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.X = pick(hit, hit.Pos.X, target.X) - n.W/2
	})
}

// CenterYParent centers the node vertically in its parent, stopping short
// of a sibling between the node and the parent's midline.
func (h Handle) CenterYParent() Handle {
	return h.step(OpCenterYParent, func(n, p *rect.Node) rect.Point {
		return rect.Point{X: n.X, Y: p.H / 2}
	}, func(n *rect.Node, hit raycast.Hit, target rect.Point) {
		n.Y = pick(hit, hit.Pos.Y, target.Y) - n.H/2
	})
}

// StretchToChildren resizes the node to the union of its own natural
// content (placed at its local origin) and its children's committed boxes.
// The union is taken in the node's own space and committed as its new x, y,
// w and h. A node with neither content nor children keeps its geometry.
func (h Handle) StretchToChildren() Handle {
	if h.err != nil {
		return h
	}
	t := h.e.Tree
	n := h.Node()
	m := h.e.Measurer

	content := m.Measure(t, h.id, measure.Natural).Translate(-n.X, -n.Y)
	box := content
	for _, c := range t.Children(h.id) {
		box = box.Union(m.Measure(t, c, measure.Constrained))
	}
	if box.IsEmpty() {
		h.e.Logger.Debug("stretch to children skipped", "node", h.id, "reason", "nothing to enclose")
		return h
	}

	n.X, n.Y = box.Left, box.Top
	n.W, n.H = box.Width(), box.Height()
	h.log(OpStretchToChildren, raycast.Hit{Sibling: rect.NoNode})
	return h
}

// step runs one ray-cast operation: aim at target, cast toward it from the
// node's corner, then let commit write the result.
func (h Handle) step(op Op, target func(n, parent *rect.Node) rect.Point, commit func(n *rect.Node, hit raycast.Hit, target rect.Point)) Handle {
	if h.err != nil {
		return h
	}
	t := h.e.Tree
	p, err := t.Parent(h.id)
	if err != nil {
		h.err = err
		return h
	}
	n := h.Node()
	aim := target(n, t.MustNode(p))
	ray := raycast.Toward(rect.Point{X: n.X, Y: n.Y}, aim)

	hit, err := raycast.Cast(t, h.id, ray.Direction())
	if err != nil {
		h.err = err
		return h
	}
	commit(n, hit, aim)
	h.log(op, hit)
	return h
}

func (h Handle) log(op Op, hit raycast.Hit) {
	n := h.Node()
	h.e.Logger.Debug("committed "+string(op),
		"node", h.id,
		"hit", hit.Found,
		"sibling", hit.Sibling,
		"x", n.X, "y", n.Y, "w", n.W, "h", n.H)
}

// pick returns onHit when the cast found an obstruction and fallback when
// the ray was clear.
func pick(hit raycast.Hit, onHit, fallback float64) float64 {
	if hit.Found {
		return onHit
	}
	return fallback
}
