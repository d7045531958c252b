package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrEmptySubject        = errors.New("subject name is empty")
	ErrInvalidInterval     = errors.New("reservation end must be after start")
	ErrLeadTimeViolated    = errors.New("reservation must be at least one hour away")
	ErrWeeklyQuotaReached  = errors.New("weekly reservation quota reached")
	ErrSlotUnavailable     = errors.New("requested time is not available")
	ErrPeriodUnavailable   = errors.New("requested period is not available")
)
