package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/seva-scheduler/internal/models"
)

func TestGrid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		year       int
		month      time.Month
		wantDays   int
		wantBlanks int
	}{
		{name: "march 2024 starts friday", year: 2024, month: time.March, wantDays: 31, wantBlanks: 5},
		{name: "leap february", year: 2024, month: time.February, wantDays: 29, wantBlanks: 4},
		{name: "non-leap february", year: 2023, month: time.February, wantDays: 28, wantBlanks: 3},
		{name: "sunday start has no blanks", year: 2024, month: time.September, wantDays: 30, wantBlanks: 0},
		{name: "december 2024", year: 2024, month: time.December, wantDays: 31, wantBlanks: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			grid := Grid(tc.year, tc.month)
			assert.Equal(t, tc.wantDays, grid.DaysInMonth)
			assert.Equal(t, tc.wantBlanks, grid.LeadingBlanks)
		})
	}
}

func entryAt(id, date, start string) models.ScheduleEntry {
	return models.ScheduleEntry{
		ID:        id,
		Date:      date,
		StartTime: start,
		Status:    models.StatusScheduled,
	}
}

func TestEntriesForDate(t *testing.T) {
	t.Parallel()

	entries := []models.ScheduleEntry{
		entryAt("c", "2024-03-09", "18:30"),
		entryAt("a", "2024-03-09", "05:00"),
		entryAt("other", "2024-03-10", "05:00"),
		entryAt("b", "2024-03-09", "07:00"),
	}

	t.Run("filters by exact date and sorts by start time", func(t *testing.T) {
		t.Parallel()
		got := EntriesForDate(entries, "2024-03-09")
		require.Len(t, got, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("is idempotent for an unchanged collection", func(t *testing.T) {
		t.Parallel()
		first := EntriesForDate(entries, "2024-03-09")
		second := EntriesForDate(entries, "2024-03-09")
		assert.Equal(t, first, second)
	})

	t.Run("unknown date yields an empty slice", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, EntriesForDate(entries, "2030-01-01"))
	})

	t.Run("equal start times keep insertion order", func(t *testing.T) {
		t.Parallel()
		tied := []models.ScheduleEntry{
			entryAt("first", "2024-03-09", "06:00"),
			entryAt("second", "2024-03-09", "06:00"),
		}
		got := EntriesForDate(tied, "2024-03-09")
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].ID)
		assert.Equal(t, "second", got[1].ID)
	})
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)
	entries := []models.ScheduleEntry{
		entryAt("tomorrow-early", "2024-03-10", "05:00"),
		entryAt("today-late", "2024-03-09", "18:30"),
		entryAt("today-early", "2024-03-09", "05:00"),
		entryAt("past", "2024-03-08", "05:00"),
		entryAt("future", "2024-03-11", "05:00"),
	}

	got := Upcoming(entries, today)
	require.Len(t, got, 3)
	assert.Equal(t,
		[]string{"today-early", "today-late", "tomorrow-early"},
		[]string{got[0].ID, got[1].ID, got[2].ID},
	)
}

func TestUpcoming_MonthBoundary(t *testing.T) {
	t.Parallel()

	// Tomorrow rolls into the next month; the date arithmetic must follow.
	today := time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC)
	entries := []models.ScheduleEntry{
		entryAt("next-month", "2024-04-01", "06:00"),
		entryAt("today", "2024-03-31", "06:00"),
	}

	got := Upcoming(entries, today)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].ID)
	assert.Equal(t, "next-month", got[1].ID)
}
