package schedule

import "github.com/charmbracelet/lipgloss"

type styles struct {
	day     lipgloss.Style
	nearDay lipgloss.Style
	entry   lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		day:     lipgloss.NewStyle().Bold(true),
		nearDay: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		entry:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginBottom(1),
	}
}
