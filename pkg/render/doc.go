// Package render groups the output renderers for laid-out trees.
//
// # Overview
//
// Rendering happens after layout: the engine commits geometry into a
// [rect.Tree], and renderers only read it. Two families exist:
//
//   - [sink]: the tree as laid out (SVG, PNG, JSON)
//   - [nodelink]: the tree's structure as a Graphviz diagram (DOT, or SVG
//     under the "nodelink" format)
//
// # Formats
//
// [Formats] lists the format names accepted by the CLI and the HTTP API,
// and [ContentType] maps them to MIME types.
//
//	svg := sink.RenderSVG(tree, sink.WithLabels())
//	png, err := sink.RenderPNG(tree, sink.WithScale(2))
//	dot := nodelink.ToDOT(tree, nodelink.Options{})
//
// [rect.Tree]: github.com/matzehuels/raylayout/pkg/rect.Tree
// [sink]: github.com/matzehuels/raylayout/pkg/render/sink
// [nodelink]: github.com/matzehuels/raylayout/pkg/render/nodelink
package render
