package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/layout"
)

var (
	navStyle      = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	splitterStyle = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	docStyle      = lipgloss.NewStyle().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("236"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the pane geometry for a container width",
	Long: `Computes the navigation, splitter and document pane geometry the page
script would apply to a container of --width pixels: the load-time default
split, or the split after dragging the splitter to --split.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().Int("width", 1280, "container content width in pixels")
	layoutCmd.Flags().Int("split", -1, "splitter left edge after a drag (default split when negative)")
	layoutCmd.Flags().Int("columns", 80, "width of the rendered strip in terminal columns")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m := cfg.Layout.Metrics

	width, _ := cmd.Flags().GetInt("width")
	split, _ := cmd.Flags().GetInt("split")
	columns, _ := cmd.Flags().GetInt("columns")

	bounds := m.Containment(width, m.HeaderHeight)
	var g layout.PaneGeometry
	if split < 0 {
		g = m.DefaultSplit(width)
	} else {
		clamped := bounds.Clamp(split)
		if clamped != split {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("split %d clamped to %d", split, clamped)))
		}
		g = m.DraggedSplit(width, clamped)
	}

	fmt.Println(labelStyle.Render(fmt.Sprintf("Container %dpx", max(0, width))))
	rows := [][2]string{
		{"nav width", fmt.Sprintf("%dpx (+%dpx padding = %dpx)", g.NavWidth, m.NavPadding, g.NavTotalWidth)},
		{"splitter left", fmt.Sprintf("%dpx", g.SplitterLeft)},
		{"doc left", fmt.Sprintf("%dpx", g.DocLeft)},
		{"doc width", fmt.Sprintf("%dpx", g.DocWidth)},
		{"drag bounds", fmt.Sprintf("%dpx .. %dpx", bounds.MinLeft, bounds.MaxLeft)},
	}
	for _, r := range rows {
		fmt.Printf("  %-14s %s\n", r[0], r[1])
	}
	fmt.Println()
	fmt.Println(renderStrip(m, g, width, columns))
	return nil
}

// renderStrip draws the three panes as a single line of cols columns,
// each pane proportional to its pixel width.
func renderStrip(m layout.Metrics, g layout.PaneGeometry, width, cols int) string {
	if width <= 0 || cols <= 0 {
		return ""
	}
	scale := func(px int) int {
		return px * cols / width
	}

	nav := min(scale(g.NavTotalWidth), cols)
	splitter := min(max(1, scale(m.SplitterWidth)), cols-nav)
	doc := max(0, cols-nav-splitter)

	return navStyle.Render(fill("nav", nav)) +
		splitterStyle.Render(strings.Repeat(" ", splitter)) +
		docStyle.Render(fill("document", doc))
}

// fill centres label in n columns, dropping it when it does not fit.
func fill(label string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(label)+2 > n {
		return strings.Repeat(" ", n)
	}
	left := (n - len(label)) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", n-left-len(label))
}
