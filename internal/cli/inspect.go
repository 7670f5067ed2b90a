package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/raylayout/pkg/rect"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "inspect [scene|tree.json]",
		Short: "Print the laid-out geometry of every node",
		Long: `Print the laid-out geometry of every node.

x and y are relative to the parent; the canvas column is the node's rectangle
in the root's space, where the renderers draw it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, flags layoutFlags) error {
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
	t, hit, err := runner.LayoutWithCacheInfo(ctx, loaded, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out, inspectTable(t))
	printStats(t.Len(), loaded.OpCount(), hit)
	return nil
}

// inspectTable renders one row per node in pre-order, names indented by
// depth.
func inspectTable(t *rect.Tree) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(colorWhite)
	anonStyle := lipgloss.NewStyle().Foreground(colorDim)

	var (
		rows  [][]string
		named []bool
	)
	t.Walk(func(id rect.NodeID) bool {
		n := t.MustNode(id)
		name := n.Name
		if name == "" {
			name = "#" + strconv.Itoa(int(id))
		}
		w := t.CanvasRect(id)
		rows = append(rows, []string{
			strings.Repeat("  ", t.Depth(id)) + name,
			fmtNum(n.X), fmtNum(n.Y), fmtNum(n.W), fmtNum(n.H),
			fmt.Sprintf("%s,%s → %s,%s", fmtNum(w.Left), fmtNum(w.Top), fmtNum(w.Right), fmtNum(w.Bottom)),
			n.Color,
		})
		named = append(named, n.Name != "")
		return true
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "x", "y", "w", "h", "Canvas", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 && named[row]:
				return nameStyle
			case col == 0:
				return anonStyle
			case col >= 1 && col <= 4:
				return StyleNumber
			default:
				return StyleDim
			}
		}).
		Render()
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
