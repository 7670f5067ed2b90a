package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/mazznoer/csscolorparser"

	"github.com/matzehuels/raylayout/pkg/rect"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each node's committed geometry to its label.
	// When false, only the name (or #id for anonymous nodes) is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT, one edge per parent-child link.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes with a parseable Color are filled with it; anonymous nodes get dashed
// outlines so named structure stands out.
func ToDOT(t *rect.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	t.Walk(func(id rect.NodeID) bool {
		n := t.MustNode(id)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeKey(id), strings.Join(fmtAttrs(*n, fmtLabel(id, *n, opts.Detailed)), ", "))
		return true
	})

	buf.WriteString("\n")
	t.Walk(func(id rect.NodeID) bool {
		for _, c := range t.Children(id) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeKey(id), nodeKey(c))
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func nodeKey(id rect.NodeID) string {
	return "n" + strconv.Itoa(int(id))
}

func fmtLabel(id rect.NodeID, n rect.Node, detailed bool) string {
	name := n.Name
	if name == "" {
		name = "#" + strconv.Itoa(int(id))
	}
	if !detailed {
		return name
	}

	parts := []string{
		fmt.Sprintf("x: %g, y: %g", n.X, n.Y),
		fmt.Sprintf("w: %g, h: %g", n.W, n.H),
	}
	if n.Label != "" {
		parts = append(parts, fmt.Sprintf("label: %s", strings.ReplaceAll(n.Label, "\n", " ")))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n rect.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if c, err := csscolorparser.Parse(n.Color); n.Color != "" && err == nil {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c.HexString()))
	}
	if n.Name == "" {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Graphviz runs in-process, so no external tools are needed. Cancelling ctx
// aborts the render.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
