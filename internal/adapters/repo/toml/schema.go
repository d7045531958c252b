package toml

import (
	"fmt"
	"time"

	"github.com/mwern/courtctl/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version      int                 `toml:"version"`
	Reservations []reservationSchema `toml:"reservations"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported reservations schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type reservationSchema struct {
	Name  string `toml:"name"`
	Start string `toml:"start_datetime"`
	End   string `toml:"end_datetime"`
}

func toSchema(reservation domain.Reservation) reservationSchema {
	return reservationSchema{
		Name:  reservation.Subject,
		Start: reservation.Start.Format(time.RFC3339),
		End:   reservation.End.Format(time.RFC3339),
	}
}

func fromSchema(entry reservationSchema) (domain.Reservation, error) {
	start, err := parseTime(entry.Start)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("decode reservation start: %w", err)
	}
	end, err := parseTime(entry.End)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("decode reservation end: %w", err)
	}

	return domain.Reservation{Subject: entry.Name, Start: start, End: end}, nil
}

func parseTime(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}

	return parsed.In(time.Local), nil
}
