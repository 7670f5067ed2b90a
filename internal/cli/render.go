package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raylayout/pkg/pipeline"
	"github.com/matzehuels/raylayout/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	layoutFlags
	output     string  // output file (single format) or base path
	formats    string  // comma-separated output formats
	labels     bool    // draw node labels
	outlines   bool    // stroke every node
	detailed   bool    // geometry in structure diagram labels
	scale      float64 // PNG scale factor
	background string  // canvas colour
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [scene|tree.json]",
		Short: "Render a scene or laid-out tree",
		Long: `Render a scene or laid-out tree.

Scenes are laid out first; tree documents written by 'layout' are drawn as
they are. Formats:

  svg       nested rectangles, one group per node
  png       the SVG drawing rasterized (see --scale)
  json      the laid-out tree document
  dot       Graphviz source of the node hierarchy
  nodelink  the hierarchy rendered to SVG by Graphviz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(render.Formats, ", ")+" (comma-separated, default svg)")
	cmd.Flags().BoolVar(&opts.labels, "labels", true, "draw node labels")
	cmd.Flags().BoolVar(&opts.outlines, "outlines", false, "outline every node")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show geometry in dot and nodelink labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.background, "background", "", "canvas colour (any CSS colour)")
	opts.layoutFlags.register(cmd)

	return cmd
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return trimExt(input)
	}
	ext := filepath.Ext(output)
	if render.IsFormat(strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath names the file for one format. A single format written to an
// explicit -o keeps that exact name.
func outputPath(opts renderOpts, input, format string, single bool) string {
	if single && opts.output != "" && filepath.Ext(opts.output) != "" {
		return opts.output
	}
	ext := format
	if format == pipeline.FormatNodelink {
		ext = "nodelink.svg"
	}
	return basePath(opts.output, input) + "." + ext
}

// runRender loads input, lays it out and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, ro renderOpts) error {
	opts, err := ro.options(input)
	if err != nil {
		return err
	}
	opts.Formats = parseFormats(ro.formats)
	opts.Labels = ro.labels
	opts.Outlines = ro.outlines
	opts.Detailed = ro.detailed
	opts.Scale = ro.scale
	opts.Background = ro.background
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d formats", len(opts.Formats)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	var written []string
	for _, format := range opts.Formats {
		path := outputPath(ro, input, format, len(opts.Formats) == 1)
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(res.Stats.NodeCount, res.Stats.OpCount, res.CacheInfo.RenderHit)

	return nil
}
