package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/state"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SummaryRow is one line of the status table
type SummaryRow struct {
	Step   string
	Status state.Status
	Detail string
}

// RenderSummaryTable renders the step status table shown by
// `ete status` and at the end of an install run.
func RenderSummaryTable(rows []SummaryRow) string {
	if len(rows) == 0 {
		return dimStyle.Render("no steps recorded yet; run `ete install` first")
	}

	width := len("STEP")
	for _, row := range rows {
		if len(row.Step) > width {
			width = len(row.Step)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-8s  %s", width, "STEP", "STATUS", "DETAIL")))
	b.WriteString("\n")

	for _, row := range rows {
		status := string(row.Status)
		switch row.Status {
		case state.StatusDone:
			status = doneStyle.Render(status)
		case state.StatusFailed:
			status = failStyle.Render(status)
		case state.StatusSkipped, state.StatusPending:
			status = dimStyle.Render(status)
		}
		line := fmt.Sprintf("%s  %s", cellStyle.Render(fmt.Sprintf("%-*s", width, row.Step)), status)
		if row.Detail != "" {
			line += "  " + dimStyle.Render(row.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
