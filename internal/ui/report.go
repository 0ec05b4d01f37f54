package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
	warningSymbol  = "!"
	criticalSymbol = "✗"
)

func reportStyle(critical bool) lipgloss.Style {
	color := lipgloss.Color("3")
	if critical {
		color = lipgloss.Color("1")
	}
	return lipgloss.NewStyle().Foreground(color)
}

// RenderReport draws the end-of-batch failure summary, one line per
// failed project. Critical reports carry the error mark; otherwise
// every failure was a deliberate guard and the box stays a warning.
func RenderReport(lines []string, critical bool) string {
	var b strings.Builder

	border := reportStyle(critical)

	symbol := warningSymbol
	title := "Some projects were not deleted"
	if critical {
		symbol = criticalSymbol
		title = "Failed to delete some projects"
	}

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(border.Render(symbol))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, line := range lines {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}
