package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	invisibleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)
)

// RenderTable renders the top-N ranking as a bordered table. Human and
// process rows are flagged: they carry criticality that a network diagram
// never shows.
func (s Summary) RenderTable(topN int) string {
	if topN <= 0 || topN > len(s.Rankings) {
		topN = len(s.Rankings)
	}

	rows := make([][]string, 0, topN)
	for _, r := range s.Rankings[:topN] {
		flag := ""
		if r.Category == "Human" || r.Category == "Process" {
			flag = "INVISIBLE"
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", r.Rank),
			string(r.ID),
			fmt.Sprintf("%.4f", r.Score),
			r.Category,
			flag,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RANK", "NODE", "BC", "TYPE", "").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if rows[row][4] != "" {
				return invisibleStyle
			}
			return cellStyle
		}).
		Rows(rows...)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(
		fmt.Sprintf("%s (%d nodes, %d undirected edges)", s.Model, s.NodeCount, s.EdgeCount)))
	b.WriteString(t.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Invisible node BC share:  %.1f%%\n", s.InvisibleShare*100)
	if s.TopInvisible != "" {
		fmt.Fprintf(&b, "Top invisible node:       %s (BC: %.4f)\n", s.TopInvisible, s.TopInvisibleBC)
	}
	if s.TopTechnical != "" {
		fmt.Fprintf(&b, "Top technical node:       %s (BC: %.4f)\n", s.TopTechnical, s.TopTechnicalBC)
	}
	if s.Multiplier > 0 {
		fmt.Fprintf(&b, "Invisible vs technical:   %.2fx\n", s.Multiplier)
	}
	return b.String()
}
