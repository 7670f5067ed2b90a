// Package layout implements directional operations on a rectangle tree:
// move, stretch and center a node until it touches the first sibling in the
// way, or the parent's boundary when nothing is.
//
// # Handles
//
// An [Engine] binds a [rect.Tree] to a measurement collaborator and a logger.
// [Engine.Node] returns a [Handle]; each operation commits its coordinates
// into the tree and returns the handle, so pipelines chain:
//
//	eng := layout.NewEngine(tree)
//	err := eng.Node(id).StretchToChildren().MoveUp().StretchLeft().StretchRight().Err()
//
// Each step sees the geometry committed by the previous one. The first
// failure sticks to the handle; later steps are skipped and Err reports it.
//
// # Operations
//
// Every directional operation casts a ray from the node's corner toward a
// target on the parent (an edge or the midpoint) using [raycast.Cast]:
//
//	MoveRight/MoveLeft/MoveUp/MoveDown      reposition, size unchanged
//	StretchRight/StretchLeft/StretchUp/...  grow toward the obstruction
//	CenterXParent/CenterYParent             center on the parent's axis
//
// [Handle.StretchToChildren] is the exception: it resizes the node to the
// union of its children's boxes and its own natural content.
//
// # Named operations
//
// Scene files and the HTTP API name operations as strings ("moveUp",
// "stretchToChildren"...). [ParseOp] and [Handle.Apply] run such pipelines.
package layout
