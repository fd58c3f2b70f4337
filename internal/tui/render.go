package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/similigh/simili-rank/internal/core/ranking"
)

const maxSummaryWidth = 60

var headerStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Padding(0, 1)

// OrderTable renders the proposed order with each issue's previous position
// and current tracker rank. Issues that change position are highlighted.
func OrderTable(p *ranking.Proposal) string {
	was := make(map[string]int, len(p.Current))
	for i, k := range p.Current {
		was[k] = i + 1
	}

	rows := make([][]string, 0, len(p.Issues))
	moved := make([]bool, 0, len(p.Issues))
	for i, issue := range p.Issues {
		rank := issue.Rank
		if rank == "" {
			rank = "N/A"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			issue.Key,
			strconv.Itoa(was[issue.Key]),
			rank,
			truncate(issue.Summary, maxSummaryWidth),
		})
		moved = append(moved, was[issue.Key] != i+1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtleColor)).
		Headers("#", "KEY", "WAS", "RANK", "SUMMARY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(moved) && moved[row]:
				return activeStepStyle.Padding(0, 1)
			default:
				return stepStyle.Padding(0, 1)
			}
		})

	return t.Render()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
