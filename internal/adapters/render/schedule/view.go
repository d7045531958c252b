// Package schedule renders the day-by-day schedule projection for the
// terminal.
package schedule

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwern/courtctl/internal/application"
)

const clockLayout = "15:04"

// Render produces the schedule view, one section per day.
func Render(days []application.Day) string {
	return renderView(days, newStyles())
}

func renderView(days []application.Day, s styles) string {
	sections := make([]string, 0, len(days))
	for _, day := range days {
		sections = append(sections, s.section.Render(renderDay(day, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderDay(day application.Day, s styles) string {
	title := s.day
	if day.Label == "Today" || day.Label == "Tomorrow" {
		title = s.nearDay
	}

	lines := []string{title.Render(day.Label)}
	if len(day.Reservations) == 0 {
		lines = append(lines, s.empty.Render("No reservations"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, r := range day.Reservations {
		lines = append(lines, s.entry.Render(fmt.Sprintf("* %s %s - %s",
			r.Subject, r.Start.Format(clockLayout), r.End.Format(clockLayout))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
