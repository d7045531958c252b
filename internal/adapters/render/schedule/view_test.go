package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwern/courtctl/internal/application"
	"github.com/mwern/courtctl/internal/domain"
)

func TestRenderScheduleWithReservationsAndEmptyDay(t *testing.T) {
	start := time.Date(2023, 5, 27, 10, 0, 0, 0, time.Local)
	res, err := domain.NewReservation("John", start, start.Add(30*time.Minute))
	require.NoError(t, err)

	output := Render([]application.Day{
		{
			Date:         domain.DateOf(start),
			Label:        "Today",
			Reservations: []domain.Reservation{res},
		},
		{
			Date:  domain.DateOf(start).AddDate(0, 0, 1),
			Label: "Tomorrow",
		},
		{
			Date:  domain.DateOf(start).AddDate(0, 0, 2),
			Label: "Monday, 29 May, 2023",
		},
	})

	assert.Contains(t, output, "Today")
	assert.Contains(t, output, "* John 10:00 - 10:30")
	assert.Contains(t, output, "Tomorrow")
	assert.Contains(t, output, "Monday, 29 May, 2023")
	assert.Contains(t, output, "No reservations")
}

func TestRenderEmptyRange(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}
