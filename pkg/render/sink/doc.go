// Package sink provides output format renderers for laid-out trees.
//
// # Overview
//
// A "sink" turns a [rect.Tree] with committed geometry into a final output
// format:
//
//   - SVG: nested groups, one per node, translated into parent space
//   - PNG: raster output drawn in-process with gg
//   - JSON: the flat tree document from package io
//
// The canvas is the root's width and height. The root is drawn at the
// canvas origin whatever its own x and y; every other node is placed
// relative to its parent, exactly as the layout engine sees it.
//
// # Colours
//
// A node's Color is any CSS colour ("steelblue", "#4682b4",
// "rgb(70,130,180)"). Nodes without one are transparent. Unparseable
// colours render black.
//
// # SVG Output
//
//	svg := sink.RenderSVG(tree,
//	    sink.WithOutlines(),
//	    sink.WithLabels(),
//	)
//
// # PNG Output
//
//	png, err := sink.RenderPNG(tree,
//	    sink.WithScale(2),
//	    sink.WithPNGSVGOptions(sink.WithLabels()),
//	)
//
// [rect.Tree]: github.com/matzehuels/raylayout/pkg/rect.Tree
package sink
