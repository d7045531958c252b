package ports

import (
	"context"
	"time"

	"github.com/mwern/courtctl/internal/domain"
)

// ReservationRepository persists single reservation records. LoadAll returns
// them ordered ascending by start. Delete matches subject and start exactly
// and returns domain.ErrReservationNotFound when nothing matched.
type ReservationRepository interface {
	LoadAll(ctx context.Context) ([]domain.Reservation, error)
	Insert(ctx context.Context, reservation domain.Reservation) error
	Delete(ctx context.Context, subject string, start time.Time) error
}
