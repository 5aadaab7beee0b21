package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	now := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)

	t.Run("renders each entry as a VEVENT", func(t *testing.T) {
		payload, err := Export([]Event{
			{
				UID:         "entry-1",
				Summary:     "Morning Asan - Rahul Sharma",
				Description: "Prepare the prayer hall",
				Date:        "2024-03-09",
				StartTime:   "06:00",
				EndTime:     "07:00",
				Status:      StatusConfirmed,
			},
			{
				UID:       "entry-2",
				Summary:   "Evening Aarti - Priya Patel",
				Date:      "2024-03-09",
				StartTime: "18:30",
				EndTime:   "19:30",
				Status:    StatusCancelled,
			},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, 2, strings.Count(payload, "BEGIN:VEVENT"))
		assert.Contains(t, payload, "UID:entry-1")
		assert.Contains(t, payload, "SUMMARY:Morning Asan - Rahul Sharma")
		assert.Contains(t, payload, "DESCRIPTION:Prepare the prayer hall")
		assert.Contains(t, payload, "STATUS:CONFIRMED")
		assert.Contains(t, payload, "STATUS:CANCELLED")
	})

	t.Run("empty export still yields a valid calendar", func(t *testing.T) {
		payload, err := Export(nil, now)
		require.NoError(t, err)
		assert.Contains(t, payload, "BEGIN:VCALENDAR")
		assert.Contains(t, payload, "END:VCALENDAR")
		assert.NotContains(t, payload, "BEGIN:VEVENT")
	})

	t.Run("rejects malformed component values", func(t *testing.T) {
		_, err := Export([]Event{
			{UID: "entry-1", Date: "tomorrow", StartTime: "06:00", EndTime: "07:00"},
		}, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry-1")
	})
}

func TestEventTimes(t *testing.T) {
	t.Run("builds local timestamps from the components", func(t *testing.T) {
		start, end, err := eventTimes(Event{Date: "2024-03-09", StartTime: "06:00", EndTime: "07:30"})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.March, 9, 6, 0, 0, 0, time.Local), start)
		assert.Equal(t, time.Date(2024, time.March, 9, 7, 30, 0, 0, time.Local), end)
	})

	t.Run("an end at or before the start rolls into the next day", func(t *testing.T) {
		start, end, err := eventTimes(Event{Date: "2024-03-09", StartTime: "23:30", EndTime: "00:30"})
		require.NoError(t, err)

		assert.True(t, end.After(start))
		assert.Equal(t, time.Date(2024, time.March, 10, 0, 30, 0, 0, time.Local), end)
	})
}
