package application

import (
	"time"

	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/ports"
)

const dayLabelLayout = "Monday, 02 January, 2006"

// Day is one calendar day of the schedule projection.
type Day struct {
	Date         time.Time
	Label        string
	Reservations []domain.Reservation
}

// ScheduleService projects the ledger into day-by-day views and flat export
// slices. It only reads.
type ScheduleService struct {
	ledger *domain.Ledger
	clock  ports.Clock
}

func NewScheduleService(ledger *domain.Ledger, clock ports.Clock) *ScheduleService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ScheduleService{ledger: ledger, clock: clock}
}

// Days walks [from, to] one calendar day at a time. Days without
// reservations are kept so callers can render an explicit empty marker.
func (s *ScheduleService) Days(from, to time.Time) []Day {
	today := domain.DateOf(s.clock.Now())
	reservations := s.ledger.All()

	var days []Day
	for day := domain.DateOf(from); !day.After(domain.DateOf(to)); day = day.AddDate(0, 0, 1) {
		entry := Day{Date: day, Label: dayLabel(day, today)}
		for _, r := range reservations {
			if r.OnDay(day) {
				entry.Reservations = append(entry.Reservations, r)
			}
		}
		days = append(days, entry)
	}

	return days
}

// Export returns the reservations starting within [from, to] by calendar
// date, in start order. Both file encodings consume this slice.
func (s *ScheduleService) Export(from, to time.Time) []domain.Reservation {
	return s.ledger.Within(from, to)
}

func dayLabel(day, today time.Time) string {
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return day.Format(dayLabelLayout)
	}
}
