// Package tui provides the terminal dashboard for Taskdeck.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/theme"
)

// Styles groups the lipgloss styles used by the dashboard, built from
// the active color scheme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Badge    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the dashboard styles for a color scheme.
func NewStyles(scheme theme.Scheme) Styles {
	p := scheme.Colors()
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#6B7280")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")),
	}
}
