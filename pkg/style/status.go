// Package style renders step status lines and run summaries for the
// terminal, on pterm for status colors and lipgloss for the summary
// table.
package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/state"
)

// StatusStyle returns the pterm style for a step status
func StatusStyle(status state.Status) *pterm.Style {
	switch status {
	case state.StatusDone:
		return pterm.NewStyle(pterm.FgGreen)
	case state.StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case state.StatusRunning:
		return pterm.NewStyle(pterm.FgYellow)
	case state.StatusSkipped:
		return pterm.NewStyle(pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}

// StatusGlyph returns the single-character marker for a step status
func StatusGlyph(status state.Status) string {
	switch status {
	case state.StatusDone:
		return "✓"
	case state.StatusFailed:
		return "✗"
	case state.StatusRunning:
		return "…"
	case state.StatusSkipped:
		return "-"
	default:
		return "·"
	}
}

// RenderStepLine renders one step's status line, e.g. "✓ packages  done"
func RenderStepLine(name string, status state.Status, detail string) string {
	styled := StatusStyle(status).Sprint(StatusGlyph(status))
	line := fmt.Sprintf("%s %-12s %s", styled, name, status)
	if detail != "" {
		line += "  " + detail
	}
	return line
}
