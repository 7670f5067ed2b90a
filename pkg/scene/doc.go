// Package scene loads declarative layout scenes.
//
// A scene describes a tree of rectangles together with the operation
// pipeline each node runs once the tree is built. Scenes are written in
// TOML or JSON; the top-level table is the root node:
//
//	name = "stage"
//	width = 400
//	height = 300
//
//	[[children]]
//	name = "card"
//	color = "steelblue"
//	ops = ["stretchToChildren", "centerXParent", "moveUp"]
//
//	  [[children.children]]
//	  label = "hello"
//	  ops = ["stretchToChildren"]
//
// Nodes default to a 1x1 box at the origin of their parent, so a pipeline
// starting with stretchToChildren sizes a node from its content. The root
// has no such default and must give its width and height.
//
// # Execution order
//
// [Scene.Apply] runs pipelines children first, siblings in document order.
// A parent's stretchToChildren therefore sees its children in their final
// positions, and a later sibling sees earlier siblings already placed.
package scene
