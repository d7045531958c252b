package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mwern/courtctl/internal/domain"
)

const (
	dayKeyLayout = "02.01.2006"
	clockLayout  = "15:04"
)

// Appointment is one reservation in the grouped export.
type Appointment struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GroupedSchedule maps "DD.MM.YYYY" day keys to their appointments while
// remembering day order, which a plain map would lose at encode time.
type GroupedSchedule struct {
	days  []string
	byDay map[string][]Appointment
}

// GroupByDay buckets reservations by start date, keeping first-seen day
// order. With a chronologically sorted input the day keys come out in
// chronological order too.
func GroupByDay(reservations []domain.Reservation) GroupedSchedule {
	g := GroupedSchedule{byDay: map[string][]Appointment{}}
	for _, r := range reservations {
		key := r.Start.Format(dayKeyLayout)
		if _, seen := g.byDay[key]; !seen {
			g.days = append(g.days, key)
		}
		g.byDay[key] = append(g.byDay[key], Appointment{
			Name:      r.Subject,
			StartTime: r.Start.Format(clockLayout),
			EndTime:   r.End.Format(clockLayout),
		})
	}
	return g
}

// MarshalJSON emits the day keys in grouping order instead of the lexical
// order encoding/json applies to maps.
func (g GroupedSchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range g.days {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(day)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		entries, err := json.Marshal(g.byDay[day])
		if err != nil {
			return nil, err
		}
		buf.Write(entries)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the grouped schedule with 2-space indentation.
func WriteJSON(w io.Writer, reservations []domain.Reservation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(GroupByDay(reservations)); err != nil {
		return fmt.Errorf("encode schedule json: %w", err)
	}
	return nil
}
