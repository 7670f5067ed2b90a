// Package rect is the data model behind raylayout: an arena of axis-aligned
// rectangles arranged as a tree.
//
// # Tree
//
// A [Tree] owns every [Node]. Nodes are addressed by [NodeID], a dense index
// into the arena, and parent/child relations are stored as ids rather than
// pointers. The root is always [RootID]; its parent is [NoNode].
//
//	t := rect.New(rect.Node{W: 500, H: 800, Color: "red"})
//	a, _ := t.Add(rect.RootID, rect.Node{X: 0, W: 10, H: 10})
//	b, _ := t.Add(rect.RootID, rect.Node{X: 40, W: 10, H: 10})
//
// # Coordinates
//
// A node's X and Y are relative to its immediate parent. [Tree.WorldRect]
// returns the box as (left, top, right, bottom) in that same parent space;
// offsets are never composed across ancestors.
//
// # Malformed geometry
//
// Negative sizes and NaN coordinates are stored as given. Operations on them
// produce degenerate but deterministic results; nothing here validates them.
package rect
