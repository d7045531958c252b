// Package sqlite persists reservations in a local SQLite database, the
// primary store driver.
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	reservation_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT NOT NULL,
	start_datetime TIMESTAMP NOT NULL,
	end_datetime   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reservations_start ON reservations (start_datetime);
`

type Repository struct {
	db *sqlx.DB
}

var _ ports.ReservationRepository = (*Repository)(nil)

// New opens the reservation database, creating the schema when missing.
// Use ":memory:" for tests. Timestamps are parsed back in local time to
// match the naive local timestamps the rest of the system works with.
func New(path string) (*Repository, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_journal_mode=WAL&_loc=auto")
	if err != nil {
		return nil, fmt.Errorf("open reservation database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate reservation schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

type reservationRow struct {
	ID      int64     `db:"reservation_id"`
	Name    string    `db:"name"`
	StartAt time.Time `db:"start_datetime"`
	EndAt   time.Time `db:"end_datetime"`
}

func (r *Repository) LoadAll(ctx context.Context) ([]domain.Reservation, error) {
	var rows []reservationRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT reservation_id, name, start_datetime, end_datetime
		 FROM reservations
		 ORDER BY start_datetime ASC`)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, domain.Reservation{
			Subject: row.Name,
			Start:   row.StartAt,
			End:     row.EndAt,
		})
	}
	return reservations, nil
}

func (r *Repository) Insert(ctx context.Context, reservation domain.Reservation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reservations (name, start_datetime, end_datetime) VALUES (?, ?, ?)`,
		reservation.Subject, reservation.Start, reservation.End)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// Delete removes at most one record matching subject and start exactly.
func (r *Repository) Delete(ctx context.Context, subject string, start time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM reservations WHERE reservation_id IN (
			SELECT reservation_id FROM reservations
			WHERE name = ? AND start_datetime = ?
			LIMIT 1
		)`,
		subject, start)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
