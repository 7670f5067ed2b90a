// Package raycast finds the nearest sibling that blocks a rectangle moving in
// a cardinal direction.
//
// A cast looks only at the subject's siblings (the other children of its
// parent). For vertical travel, a sibling is a candidate when its horizontal
// span overlaps the subject's; for horizontal travel, when its vertical span
// does. Partial overlap counts: anything sharing the subject's column blocks
// vertical travel, anything sharing its row blocks horizontal travel.
//
// Candidates behind the subject are discarded, and the one whose contact edge
// lies closest to the subject's leading edge wins. Ties keep sibling order.
//
//	hit, err := raycast.Cast(tree, id, raycast.Right)
//	if hit.Found {
//	    tree.MustNode(id).X = hit.Pos.X // leading edge now touches hit.Sibling
//	}
package raycast
