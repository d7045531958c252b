package domain

import "time"

// Periods lists the bookable slot lengths, shortest first.
var Periods = []time.Duration{30 * time.Minute, 60 * time.Minute, 90 * time.Minute}

const (
	// MinGap is the smallest opening NextAvailable reports before the
	// following reservation.
	MinGap = 30 * time.Minute

	// LeadTime is the minimum notice required to book or cancel.
	LeadTime = time.Hour

	// WeeklyQuota is the maximum number of reservations one subject may
	// hold within a single ISO calendar week.
	WeeklyQuota = 2
)

// Reservation is a booked slot on the court. Records are never mutated in
// place; rebooking removes the old record and creates a new one.
type Reservation struct {
	Subject string
	Start   time.Time
	End     time.Time
}

func NewReservation(subject string, start, end time.Time) (Reservation, error) {
	if subject == "" {
		return Reservation{}, ErrEmptySubject
	}
	if !end.After(start) {
		return Reservation{}, ErrInvalidInterval
	}

	return Reservation{Subject: subject, Start: start, End: end}, nil
}

func (r Reservation) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// OnDay reports whether the reservation starts on the given calendar day.
func (r Reservation) OnDay(day time.Time) bool {
	y1, m1, d1 := r.Start.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOf strips the clock component, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
