package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/omaratef3221/omaratef3221.github.io/internal/export"
)

var (
	colorAccent = lipgloss.Color("#7D56F4")
	colorOK     = lipgloss.Color("#04B575")
	colorFail   = lipgloss.Color("#FF5F87")
	colorMuted  = lipgloss.Color("#767676")

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(colorOK)
	failStyle  = lipgloss.NewStyle().Foreground(colorFail)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

func renderSummary(results []export.Result) string {
	var b strings.Builder
	succeeded := 0

	b.WriteString(titleStyle.Render("Portfolio data export"))
	b.WriteString("\n\n")

	for _, r := range results {
		if r.Err != nil {
			b.WriteString(failStyle.Render("✗ " + r.Name))
			b.WriteString(" ")
			b.WriteString(mutedStyle.Render(r.Err.Error()))
		} else {
			succeeded++
			b.WriteString(okStyle.Render("✓ " + r.Name))
			b.WriteString(" ")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%d items → %s", r.Count, r.Path)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d/%d successful", succeeded, len(results))
	if succeeded == len(results) {
		b.WriteString(okStyle.Render(status))
	} else {
		b.WriteString(failStyle.Render(status))
	}

	return boxStyle.Render(b.String())
}
