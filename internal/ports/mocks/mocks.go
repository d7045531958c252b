// Package mocks provides hand-maintained testify mocks for the port
// interfaces used in application tests.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mwern/courtctl/internal/domain"
)

type MockReservationRepository struct {
	mock.Mock
}

func NewMockReservationRepository(t *testing.T) *MockReservationRepository {
	m := &MockReservationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockReservationRepository) LoadAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	reservations, _ := args.Get(0).([]domain.Reservation)
	return reservations, args.Error(1)
}

func (m *MockReservationRepository) Insert(ctx context.Context, reservation domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, subject string, start time.Time) error {
	return m.Called(ctx, subject, start).Error(0)
}

type MockClock struct {
	mock.Mock
}

func NewMockClock(t *testing.T) *MockClock {
	m := &MockClock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}
