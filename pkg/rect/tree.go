package rect

import (
	"github.com/matzehuels/raylayout/pkg/errors"
)

// NodeID addresses a node inside a [Tree]. Two ids from the same tree are
// equal iff they denote the same node, whatever its current geometry.
type NodeID int

const (
	// NoNode is the parent of the root and the zero result of failed lookups.
	NoNode NodeID = -1
	// RootID is the id of every tree's root node.
	RootID NodeID = 0
)

// Node is one rectangle. X and Y locate its top-left corner in the parent's
// space; W and H are its committed size.
type Node struct {
	Name  string  // Optional user-facing identifier (unique when set)
	X, Y  float64 // Top-left corner relative to the parent
	W, H  float64 // Committed size
	Color string  // Display colour; never read by geometry code
	Label string  // Text content; measured by the natural-size collaborator
}

// Box returns the node's rectangle as edges.
func (n Node) Box() Rect {
	return Rect{Left: n.X, Top: n.Y, Right: n.X + n.W, Bottom: n.Y + n.H}
}

type slot struct {
	node     Node
	parent   NodeID
	children []NodeID
}

// Tree is an arena of nodes. It is not safe for concurrent mutation.
type Tree struct {
	slots []slot
	names map[string]NodeID
}

// New creates a tree whose root holds the given node.
func New(root Node) *Tree {
	t := &Tree{names: make(map[string]NodeID)}
	t.slots = append(t.slots, slot{node: root, parent: NoNode})
	if root.Name != "" {
		t.names[root.Name] = RootID
	}
	return t
}

// Add appends n as the last child of parent and returns its id.
func (t *Tree) Add(parent NodeID, n Node) (NodeID, error) {
	if !t.Has(parent) {
		return NoNode, errors.New(errors.ErrCodeUnknownNode, "parent %d does not exist", parent)
	}
	if n.Name != "" {
		if _, dup := t.names[n.Name]; dup {
			return NoNode, errors.New(errors.ErrCodeInvalidInput, "duplicate node name %q", n.Name)
		}
	}
	id := NodeID(len(t.slots))
	t.slots = append(t.slots, slot{node: n, parent: parent})
	t.slots[parent].children = append(t.slots[parent].children, id)
	if n.Name != "" {
		t.names[n.Name] = id
	}
	return id, nil
}

// Has reports whether id refers to a node of t.
func (t *Tree) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(t.slots)
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.slots) }

// Node returns a pointer to the stored node so callers can read and write its
// geometry in place.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if !t.Has(id) {
		return nil, false
	}
	return &t.slots[id].node, true
}

// MustNode is like Node but panics on an unknown id.
func (t *Tree) MustNode(id NodeID) *Node {
	n, ok := t.Node(id)
	if !ok {
		panic(errors.New(errors.ErrCodeUnknownNode, "node %d does not exist", id))
	}
	return n
}

// Lookup finds a node by name.
func (t *Tree) Lookup(name string) (NodeID, bool) {
	id, ok := t.names[name]
	return id, ok
}

// Parent returns the parent of id. The root has none and yields an
// INVALID_OPERATION error, since every directional operation needs one.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	if !t.Has(id) {
		return NoNode, errors.New(errors.ErrCodeUnknownNode, "node %d does not exist", id)
	}
	p := t.slots[id].parent
	if p == NoNode {
		return NoNode, errors.New(errors.ErrCodeInvalidOperation, "directional operation requires a parent")
	}
	return p, nil
}

// Children returns the direct children of id in structural order. The slice
// is fresh on every call.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Has(id) {
		return nil
	}
	kids := t.slots[id].children
	out := make([]NodeID, len(kids))
	copy(out, kids)
	return out
}

// Siblings returns the other children of id's parent, in structural order.
func (t *Tree) Siblings(id NodeID) ([]NodeID, error) {
	p, err := t.Parent(id)
	if err != nil {
		return nil, err
	}
	kids := t.slots[p].children
	out := make([]NodeID, 0, len(kids)-1)
	for _, k := range kids {
		if k != id {
			out = append(out, k)
		}
	}
	return out, nil
}

// WorldRect returns the node's box in its parent's coordinate space.
func (t *Tree) WorldRect(id NodeID) Rect {
	n, ok := t.Node(id)
	if !ok {
		return Rect{}
	}
	return n.Box()
}

// CanvasRect returns the node's box in the root's coordinate space, the
// space renderers draw in. The root itself sits at the origin.
func (t *Tree) CanvasRect(id NodeID) Rect {
	n, ok := t.Node(id)
	if !ok {
		return Rect{}
	}
	if id == RootID {
		return Rect{Right: n.W, Bottom: n.H}
	}
	r := n.Box()
	for p := t.slots[id].parent; p != RootID; p = t.slots[p].parent {
		r = r.Translate(t.slots[p].node.X, t.slots[p].node.Y)
	}
	return r
}

// Depth returns the number of ancestors of id, or -1 for an unknown id.
func (t *Tree) Depth(id NodeID) int {
	if !t.Has(id) {
		return -1
	}
	d := 0
	for p := t.slots[id].parent; p != NoNode; p = t.slots[p].parent {
		d++
	}
	return d
}

// Walk visits every node depth-first, parents before children. Returning
// false from fn stops the walk.
func (t *Tree) Walk(fn func(id NodeID) bool) {
	t.walk(RootID, fn, false)
}

// WalkPost visits every node depth-first, children before parents.
func (t *Tree) WalkPost(fn func(id NodeID) bool) {
	t.walk(RootID, fn, true)
}

func (t *Tree) walk(id NodeID, fn func(NodeID) bool, post bool) bool {
	if !post && !fn(id) {
		return false
	}
	for _, c := range t.slots[id].children {
		if !t.walk(c, fn, post) {
			return false
		}
	}
	if post {
		return fn(id)
	}
	return true
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		slots: make([]slot, len(t.slots)),
		names: make(map[string]NodeID, len(t.names)),
	}
	for i, s := range t.slots {
		c.slots[i] = slot{node: s.node, parent: s.parent, children: append([]NodeID(nil), s.children...)}
	}
	for k, v := range t.names {
		c.names[k] = v
	}
	return c
}
