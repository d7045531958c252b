package domain

import "time"

// Ledger holds every reservation for the court, ordered ascending by start
// time. It is the in-memory source of truth for a session: loaded wholesale
// from storage on startup and mirrored back on every mutation. The ledger
// never rejects an insert on its own; callers run the query operations
// before inserting.
type Ledger struct {
	reservations []Reservation
}

func NewLedger(reservations []Reservation) *Ledger {
	l := &Ledger{}
	l.Replace(reservations)
	return l
}

// Replace swaps the whole sequence for the records loaded from storage.
// The input is expected in start order.
func (l *Ledger) Replace(reservations []Reservation) {
	l.reservations = make([]Reservation, len(reservations))
	copy(l.reservations, reservations)
}

// All returns the reservations in start order.
func (l *Ledger) All() []Reservation {
	out := make([]Reservation, len(l.reservations))
	copy(out, l.reservations)
	return out
}

func (l *Ledger) Len() int {
	return len(l.reservations)
}

// Overlaps reports whether [start, end) shares any open interval with an
// existing reservation. Touching endpoints do not collide.
func (l *Ledger) Overlaps(start, end time.Time) bool {
	for _, r := range l.reservations {
		if start.Before(r.End) && end.After(r.Start) {
			return true
		}
	}
	return false
}

// IsOccupied reports whether an existing reservation covers the instant:
// start inclusive, end exclusive.
func (l *Ledger) IsOccupied(at time.Time) bool {
	for _, r := range l.reservations {
		if !at.Before(r.Start) && at.Before(r.End) {
			return true
		}
	}
	return false
}

// WeeklyCount counts the subject's reservations starting in the same ISO
// calendar week as ref. The (year, week) pair is compared, so early-January
// days that ISO 8601 assigns to the previous year's final week share that
// week's quota.
func (l *Ledger) WeeklyCount(subject string, ref time.Time) int {
	year, week := ref.ISOWeek()
	count := 0
	for _, r := range l.reservations {
		if r.Subject != subject {
			continue
		}
		if y, w := r.Start.ISOWeek(); y == year && w == week {
			count++
		}
	}
	return count
}

func (l *Ledger) HasReachedWeeklyQuota(subject string, ref time.Time) bool {
	return l.WeeklyCount(subject, ref) >= WeeklyQuota
}

// NextAvailable returns the earliest instant at or after desired with room
// for at least MinGap before the next reservation, or the end of the last
// conflicting reservation when no such gap exists.
func (l *Ledger) NextAvailable(desired time.Time) time.Time {
	closest := desired
	for _, r := range l.reservations {
		if !r.Start.Before(closest.Add(MinGap)) {
			return closest
		}
		if !closest.After(r.End) {
			closest = r.End
		}
	}
	return closest
}

// AvailablePeriods returns the prefix of Periods that fits at start without
// colliding. Evaluation stops at the first overlap, so a longer period is
// never offered once a shorter one has failed.
func (l *Ledger) AvailablePeriods(start time.Time) []time.Duration {
	available := make([]time.Duration, 0, len(Periods))
	for _, period := range Periods {
		if l.Overlaps(start, start.Add(period)) {
			break
		}
		available = append(available, period)
	}
	return available
}

// Insert places the reservation before the first entry with a strictly
// later start, keeping the sequence sorted. Overlap prevention is the
// caller's job.
func (l *Ledger) Insert(res Reservation) {
	at := len(l.reservations)
	for i, r := range l.reservations {
		if r.Start.After(res.Start) {
			at = i
			break
		}
	}

	l.reservations = append(l.reservations, Reservation{})
	copy(l.reservations[at+1:], l.reservations[at:])
	l.reservations[at] = res
}

// Remove deletes the first reservation matching subject and start exactly
// and reports whether one was found. End is not consulted.
func (l *Ledger) Remove(subject string, start time.Time) bool {
	for i, r := range l.reservations {
		if r.Subject == subject && r.Start.Equal(start) {
			l.reservations = append(l.reservations[:i], l.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first reservation matching subject and start exactly.
func (l *Ledger) Find(subject string, start time.Time) (Reservation, bool) {
	for _, r := range l.reservations {
		if r.Subject == subject && r.Start.Equal(start) {
			return r, true
		}
	}
	return Reservation{}, false
}

// Within returns the reservations whose start date falls in [from, to],
// compared by calendar day, in start order.
func (l *Ledger) Within(from, to time.Time) []Reservation {
	fromDay := DateOf(from)
	toDay := DateOf(to)

	out := make([]Reservation, 0)
	for _, r := range l.reservations {
		day := DateOf(r.Start)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		out = append(out, r)
	}
	return out
}
