package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/ports/mocks"
)

func TestScheduleDaysLabelsAndGrouping(t *testing.T) {
	now := time.Date(2023, 5, 27, 9, 30, 0, 0, time.Local)
	clock := mocks.NewMockClock(t)
	clock.On("Now").Return(now)

	morning := testReservation(t, "John", time.Date(2023, 5, 27, 10, 0, 0, 0, time.Local), 30*time.Minute)
	evening := testReservation(t, "Kate", time.Date(2023, 5, 27, 18, 0, 0, 0, time.Local), time.Hour)
	later := testReservation(t, "Mark", time.Date(2023, 5, 29, 12, 0, 0, 0, time.Local), time.Hour)

	ledger := domain.NewLedger([]domain.Reservation{morning, evening, later})
	service := NewScheduleService(ledger, clock)

	days := service.Days(now, now.AddDate(0, 0, 2))
	require.Len(t, days, 3)

	assert.Equal(t, "Today", days[0].Label)
	assert.Equal(t, []domain.Reservation{morning, evening}, days[0].Reservations)

	assert.Equal(t, "Tomorrow", days[1].Label)
	assert.Empty(t, days[1].Reservations)

	assert.Equal(t, "Monday, 29 May, 2023", days[2].Label)
	assert.Equal(t, []domain.Reservation{later}, days[2].Reservations)
}

func TestScheduleDaysSingleDayRange(t *testing.T) {
	now := time.Date(2023, 5, 27, 9, 30, 0, 0, time.Local)
	clock := mocks.NewMockClock(t)
	clock.On("Now").Return(now)

	service := NewScheduleService(domain.NewLedger(nil), clock)

	day := time.Date(2023, 6, 3, 0, 0, 0, 0, time.Local)
	days := service.Days(day, day)
	require.Len(t, days, 1)
	assert.Equal(t, "Saturday, 03 June, 2023", days[0].Label)
	assert.Empty(t, days[0].Reservations)
}

func TestScheduleExportAppliesInclusiveDateFilter(t *testing.T) {
	now := time.Date(2023, 5, 27, 9, 30, 0, 0, time.Local)
	clock := mocks.NewMockClock(t)
	clock.On("Now").Return(now).Maybe()

	inRange := testReservation(t, "John", time.Date(2023, 5, 27, 10, 0, 0, 0, time.Local), 30*time.Minute)
	outOfRange := testReservation(t, "Kate", time.Date(2023, 5, 30, 10, 0, 0, 0, time.Local), 30*time.Minute)

	ledger := domain.NewLedger([]domain.Reservation{inRange, outOfRange})
	service := NewScheduleService(ledger, clock)

	from := time.Date(2023, 5, 26, 0, 0, 0, 0, time.Local)
	to := time.Date(2023, 5, 28, 0, 0, 0, 0, time.Local)
	assert.Equal(t, []domain.Reservation{inRange}, service.Export(from, to))
}
