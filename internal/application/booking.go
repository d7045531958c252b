package application

import (
	"context"
	"fmt"
	"time"

	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/ports"
)

// BookingService runs the reservation policy over the in-memory ledger and
// mirrors every mutation to the repository. Writes hit the repository first;
// the ledger is only updated once the store confirms, so a failed write
// never leaves memory ahead of disk.
type BookingService struct {
	ledger *domain.Ledger
	repo   ports.ReservationRepository
	clock  ports.Clock
}

func NewBookingService(repo ports.ReservationRepository, clock ports.Clock) *BookingService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &BookingService{
		ledger: domain.NewLedger(nil),
		repo:   repo,
		clock:  clock,
	}
}

// Load replaces the ledger with the repository contents.
func (s *BookingService) Load(ctx context.Context) error {
	reservations, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}

	s.ledger.Replace(reservations)
	return nil
}

// Ledger exposes the in-memory ledger for read-side services.
func (s *BookingService) Ledger() *domain.Ledger {
	return s.ledger
}

// Plan is the outcome of the pre-booking checks.
type Plan struct {
	Subject        string
	RequestedStart time.Time

	// Start is the slot actually offered. It differs from RequestedStart
	// when the requested instant was occupied.
	Start time.Time

	// RequiresConfirmation is set when Start was moved off the requested
	// instant and the caller must approve the alternate before booking.
	RequiresConfirmation bool

	// Periods are the slot lengths available at Start, shortest first.
	Periods []time.Duration
}

// PlanBooking runs the booking checks in policy order: subject, lead time,
// weekly quota, occupancy. It never mutates state; when the requested start
// is occupied the plan carries the next available instant instead.
func (s *BookingService) PlanBooking(subject string, start time.Time) (Plan, error) {
	if subject == "" {
		return Plan{}, domain.ErrEmptySubject
	}
	if err := s.checkLeadTime(start); err != nil {
		return Plan{}, err
	}
	if s.ledger.HasReachedWeeklyQuota(subject, start) {
		return Plan{}, domain.ErrWeeklyQuotaReached
	}

	plan := Plan{Subject: subject, RequestedStart: start, Start: start}
	if s.ledger.IsOccupied(start) {
		plan.Start = s.ledger.NextAvailable(start)
		plan.RequiresConfirmation = true
	}
	plan.Periods = s.ledger.AvailablePeriods(plan.Start)

	return plan, nil
}

// Book re-validates the policy checks at the committed start, verifies the
// chosen period is still offered, and commits: repository insert first,
// ledger insert after.
func (s *BookingService) Book(ctx context.Context, subject string, start time.Time, period time.Duration) (domain.Reservation, error) {
	if subject == "" {
		return domain.Reservation{}, domain.ErrEmptySubject
	}
	if err := s.checkLeadTime(start); err != nil {
		return domain.Reservation{}, err
	}
	if s.ledger.HasReachedWeeklyQuota(subject, start) {
		return domain.Reservation{}, domain.ErrWeeklyQuotaReached
	}
	if !offered(s.ledger.AvailablePeriods(start), period) {
		return domain.Reservation{}, domain.ErrPeriodUnavailable
	}

	reservation, err := domain.NewReservation(subject, start, start.Add(period))
	if err != nil {
		return domain.Reservation{}, err
	}

	if err := s.repo.Insert(ctx, reservation); err != nil {
		return domain.Reservation{}, fmt.Errorf("persist reservation: %w", err)
	}
	s.ledger.Insert(reservation)

	return reservation, nil
}

// Cancel enforces the lead-time rule against the reservation being removed,
// then deletes from the store before dropping it from the ledger.
func (s *BookingService) Cancel(ctx context.Context, subject string, start time.Time) error {
	if subject == "" {
		return domain.ErrEmptySubject
	}
	if err := s.checkLeadTime(start); err != nil {
		return err
	}
	if _, ok := s.ledger.Find(subject, start); !ok {
		return domain.ErrReservationNotFound
	}

	if err := s.repo.Delete(ctx, subject, start); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	s.ledger.Remove(subject, start)

	return nil
}

// checkLeadTime rejects starts less than one hour from now. The boundary is
// exclusive: a start exactly one hour away is still rejected.
func (s *BookingService) checkLeadTime(start time.Time) error {
	if !start.Add(-domain.LeadTime).After(s.clock.Now()) {
		return domain.ErrLeadTimeViolated
	}
	return nil
}

func offered(periods []time.Duration, period time.Duration) bool {
	for _, p := range periods {
		if p == period {
			return true
		}
	}
	return false
}
