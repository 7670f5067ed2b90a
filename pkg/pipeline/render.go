package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/raylayout/pkg/render/nodelink"
	"github.com/matzehuels/raylayout/pkg/render/sink"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, t *rect.Tree, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(t, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(t, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(t)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(t, nodelink.Options{Detailed: opts.Detailed}))
		case FormatNodelink:
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(t, nodelink.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds the drawing options shared by SVG and PNG.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithNames()}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Outlines {
		svgOpts = append(svgOpts, sink.WithOutlines())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts
}
