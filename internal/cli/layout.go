package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raylayout/pkg/errors"
	"github.com/matzehuels/raylayout/pkg/pipeline"
)

// layoutFlags are shared by the commands that run a scene's operations.
type layoutFlags struct {
	input    string
	measurer string
	noCache  bool
	refresh  bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.input, "input", "", "input kind: toml, json, tree (default: detect)")
	cmd.Flags().StringVar(&f.measurer, "measurer", pipeline.DefaultMeasurer, "content measurer: text, boxes")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// options reads path into pipeline options carrying the flags.
func (f *layoutFlags) options(path string) (pipeline.Options, error) {
	opts, err := inputOptions(path, f.input)
	if err != nil {
		return opts, err
	}
	opts.Measurer = f.measurer
	opts.Refresh = f.refresh
	return opts, nil
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Run a scene's operations and write the laid-out tree",
		Long: `Run a scene's operations and write the laid-out tree.

The scene (TOML or JSON) lists nodes and the operations to run on each. Nodes
are laid out children first, siblings in file order. The result is a tree
document (the same format as 'render -f json') that 'render' accepts in place
of a scene.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <scene>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout lays out the scene at input and writes the tree document.
func (c *CLI) runLayout(ctx context.Context, input string, flags layoutFlags, output string) error {
	opts, err := flags.options(input)
	if err != nil {
		return err
	}
	if opts.IsTree() {
		return errors.New(errors.ErrCodeInvalidFormat, "%s is already laid out; use 'render' instead", input)
	}
	opts.Formats = []string{pipeline.FormatJSON}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Laying out "+input+"...")
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done("Laid out " + input)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	doc := res.Artifacts[pipeline.FormatJSON]
	if output == "-" {
		_, err := c.Out.Write(doc)
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = trimExt(input) + ".layout.json"
	}
	if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(res.Stats.NodeCount, res.Stats.OpCount, res.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
