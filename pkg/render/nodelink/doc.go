// Package nodelink renders tree structure as node-link diagrams.
//
// # Overview
//
// Where package sink draws a tree as it is laid out, this package draws
// who contains whom: every node becomes a box and every parent-child link
// an arrow. It is useful for checking a scene's structure before looking
// at geometry.
//
// # Usage
//
//	dot := nodelink.ToDOT(tree, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// [ToDOT] produces Graphviz DOT source that can be rendered with
// [RenderSVG], saved, or processed with external Graphviz tools. Node keys
// are "n<id>"; labels show the node name, or "#<id>" for anonymous nodes.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
