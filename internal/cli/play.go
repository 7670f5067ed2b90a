package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rlio "github.com/matzehuels/raylayout/pkg/io"
	"github.com/matzehuels/raylayout/pkg/layout"
)

// playCommand creates the interactive playground command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "play [scene|tree.json]",
		Short: "Move and stretch nodes interactively",
		Long: `Move and stretch nodes interactively.

The scene is laid out first, then every key applies one more operation to the
selected node:

  tab / shift+tab       select next / previous node
  arrows (h j k l)      move until blocked
  shift+arrows (H J K L) stretch until blocked
  x / y                 center in the parent horizontally / vertically
  s                     fit to content and children
  u                     undo
  q                     quit

With --output the final tree is written as a tree document on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd.Context(), args[0], flags, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the final tree document here on exit")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, input string, flags layoutFlags, output string) error {
	opts, err := flags.options(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	loaded, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	t, err := runner.Layout(ctx, loaded, opts)
	if err != nil {
		return err
	}

	engine := layout.NewEngine(t, layout.WithMeasurer(opts.NewMeasurer()), layout.WithLogger(c.Logger))
	final, err := tea.NewProgram(NewPlayModel(engine), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("playground: %w", err)
	}
	m := final.(PlayModel)

	if output == "" {
		printInfo("Applied %d operations", m.Applied())
		return nil
	}
	if err := rlio.ExportJSON(m.Engine.Tree, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	printSuccess("Saved %d operations", m.Applied())
	printFile(output)
	return nil
}
