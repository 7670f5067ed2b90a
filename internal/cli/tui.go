package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/raylayout/pkg/layout"
	"github.com/matzehuels/raylayout/pkg/rect"
)

// Playground styles
var (
	playSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	playNormalStyle   = lipgloss.NewStyle().Foreground(colorGray)
	playDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	playErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// playKeys maps keys to the operation they apply to the selected node.
var playKeys = map[string]layout.Op{
	"right": layout.OpMoveRight, "l": layout.OpMoveRight,
	"left": layout.OpMoveLeft, "h": layout.OpMoveLeft,
	"up": layout.OpMoveUp, "k": layout.OpMoveUp,
	"down": layout.OpMoveDown, "j": layout.OpMoveDown,
	"shift+right": layout.OpStretchRight, "L": layout.OpStretchRight,
	"shift+left": layout.OpStretchLeft, "H": layout.OpStretchLeft,
	"shift+up": layout.OpStretchUp, "K": layout.OpStretchUp,
	"shift+down": layout.OpStretchDown, "J": layout.OpStretchDown,
	"x": layout.OpCenterXParent,
	"y": layout.OpCenterYParent,
	"s": layout.OpStretchToChildren,
}

// =============================================================================
// PlayModel - Interactive layout playground
// =============================================================================

// PlayModel is the bubbletea model behind `raylayout play`. Every node but
// the root can be selected; each key press applies one operation and can be
// undone.
type PlayModel struct {
	Engine *layout.Engine

	order   []rect.NodeID
	cursor  int
	history []*rect.Tree
	applied int
	status  string
	err     error
	cols    int
	rows    int
}

// NewPlayModel creates a playground over e's tree.
func NewPlayModel(e *layout.Engine) PlayModel {
	m := PlayModel{Engine: e, cols: 64, rows: 20}
	e.Tree.Walk(func(id rect.NodeID) bool {
		if id != rect.RootID {
			m.order = append(m.order, id)
		}
		return true
	})
	return m
}

// Selected returns the selected node, or rect.NoNode for a tree with only a root.
func (m PlayModel) Selected() rect.NodeID {
	if len(m.order) == 0 {
		return rect.NoNode
	}
	return m.order[m.cursor]
}

// Applied returns the number of operations applied and not undone.
func (m PlayModel) Applied() int { return m.applied }

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if len(m.order) > 0 {
				m.cursor = (m.cursor + 1) % len(m.order)
			}
			return m, nil
		case "shift+tab":
			if len(m.order) > 0 {
				m.cursor = (m.cursor + len(m.order) - 1) % len(m.order)
			}
			return m, nil
		case "u":
			m.undo()
			return m, nil
		}
		if op, ok := playKeys[key]; ok {
			m.apply(op)
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-34, 16)
		m.rows = max(msg.Height-6, 6)
	}
	return m, nil
}

func (m *PlayModel) apply(op layout.Op) {
	id := m.Selected()
	if id == rect.NoNode {
		return
	}
	snapshot := m.Engine.Tree.Clone()
	if h := m.Engine.Node(id).Apply(op); h.Err() != nil {
		m.err = h.Err()
		return
	}
	m.history = append(m.history, snapshot)
	m.applied++
	m.err = nil
	m.status = fmt.Sprintf("%s %s", op, nodeName(m.Engine.Tree, id))
}

func (m *PlayModel) undo() {
	if len(m.history) == 0 {
		m.status = "nothing to undo"
		return
	}
	last := len(m.history) - 1
	m.Engine.Tree = m.history[last]
	m.history = m.history[:last]
	m.applied--
	m.err = nil
	m.status = "undone"
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Raylayout Playground"))
	b.WriteString("\n")
	b.WriteString(playDimStyle.Render("tab select  arrows move  shift+arrows stretch  x/y center  s fit  u undo  q quit"))
	b.WriteString("\n\n")

	canvas := drawCanvas(m.Engine.Tree, m.Selected(), m.cols, m.rows)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, "  ", m.sidebar()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(playErrorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(playDimStyle.Render(m.status))
	}
	return b.String()
}

func (m PlayModel) sidebar() string {
	t := m.Engine.Tree
	id := m.Selected()
	if id == rect.NoNode {
		return playDimStyle.Render("no nodes to move")
	}
	n := t.MustNode(id)
	w := t.CanvasRect(id)

	lines := []string{
		playSelectedStyle.Render(nodeName(t, id)) + playDimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.order))),
		"",
		sideKV("x", fmtNum(n.X)),
		sideKV("y", fmtNum(n.Y)),
		sideKV("w", fmtNum(n.W)),
		sideKV("h", fmtNum(n.H)),
		"",
		sideKV("left", fmtNum(w.Left)),
		sideKV("top", fmtNum(w.Top)),
		sideKV("right", fmtNum(w.Right)),
		sideKV("bottom", fmtNum(w.Bottom)),
		"",
		sideKV("ops", fmt.Sprintf("%d", m.applied)),
	}
	return strings.Join(lines, "\n")
}

func sideKV(key, value string) string {
	return playDimStyle.Width(8).Render(key) + StyleValue.Render(value)
}

func nodeName(t *rect.Tree, id rect.NodeID) string {
	if n := t.MustNode(id); n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("#%d", id)
}

// drawCanvas draws every node's outline scaled to cols×rows cells, children
// over parents, the selected node highlighted.
func drawCanvas(t *rect.Tree, selected rect.NodeID, cols, rows int) string {
	root := t.MustNode(rect.RootID)
	if root.W <= 0 || root.H <= 0 {
		return playDimStyle.Render("(empty canvas)")
	}
	sx := float64(cols) / root.W
	sy := float64(rows) / root.H

	cells := make([][]rune, rows)
	marks := make([][]bool, rows)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(" ", cols))
		marks[r] = make([]bool, cols)
	}

	t.Walk(func(id rect.NodeID) bool {
		w := t.CanvasRect(id)
		c0, c1 := span(w.Left, w.Right, sx, cols)
		r0, r1 := span(w.Top, w.Bottom, sy, rows)
		if c0 > c1 || r0 > r1 {
			return true
		}
		box(cells, c0, c1, r0, r1)
		if id == selected {
			for r := r0; r <= r1; r++ {
				for c := c0; c <= c1; c++ {
					marks[r][c] = true
				}
			}
		}
		return true
	})

	var b strings.Builder
	for r := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		// Emit runs of equally styled cells.
		start := 0
		for c := 1; c <= cols; c++ {
			if c < cols && marks[r][c] == marks[r][start] {
				continue
			}
			run := string(cells[r][start:c])
			if marks[r][start] {
				b.WriteString(playSelectedStyle.Render(run))
			} else {
				b.WriteString(playNormalStyle.Render(run))
			}
			start = c
		}
	}
	return b.String()
}

// span maps [lo, hi) in tree units to an inclusive cell range clipped to n.
func span(lo, hi, scale float64, n int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale)) - 1
	if b < a {
		b = a
	}
	return max(a, 0), min(b, n-1)
}

func box(cells [][]rune, c0, c1, r0, r1 int) {
	if c0 == c1 || r0 == r1 {
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				cells[r][c] = '▪'
			}
		}
		return
	}
	for c := c0 + 1; c < c1; c++ {
		cells[r0][c] = '─'
		cells[r1][c] = '─'
	}
	for r := r0 + 1; r < r1; r++ {
		cells[r][c0] = '│'
		cells[r][c1] = '│'
	}
	cells[r0][c0] = '┌'
	cells[r0][c1] = '┐'
	cells[r1][c0] = '└'
	cells[r1][c1] = '┘'
}
