// Package calendar provides pure aggregation functions over the full
// schedule entry collection. Everything here is recomputed per call; at a
// single temple's data scale no caching is warranted.
package calendar

import (
	"sort"
	"time"

	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/recurrence"
)

// MonthGrid describes the Sunday-start month layout used by the dashboard.
type MonthGrid struct {
	Year  int
	Month time.Month
	// DaysInMonth is the number of calendar days in the month.
	DaysInMonth int
	// LeadingBlanks is the number of empty cells before day 1, equal to the
	// weekday of the first day (Sunday = 0).
	LeadingBlanks int
}

// Grid computes the month layout for the proleptic Gregorian calendar.
func Grid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:  year,
		Month: month,
		// Day zero of the following month is the last day of this one.
		DaysInMonth:   time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(),
		LeadingBlanks: int(first.Weekday()),
	}
}

// EntriesForDate returns the entries scheduled on the given YYYY-MM-DD day,
// ordered ascending by start time. The input slice is never mutated.
func EntriesForDate(entries []models.ScheduleEntry, date string) []models.ScheduleEntry {
	matched := make([]models.ScheduleEntry, 0)
	for _, entry := range entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartTime < matched[j].StartTime
	})
	return matched
}

// Upcoming returns the entries dated today or tomorrow relative to the given
// reference instant, ordered by date then start time.
func Upcoming(entries []models.ScheduleEntry, today time.Time) []models.ScheduleEntry {
	todayStr := today.Format(recurrence.DateLayout)
	tomorrowStr := today.AddDate(0, 0, 1).Format(recurrence.DateLayout)

	matched := make([]models.ScheduleEntry, 0)
	for _, entry := range entries {
		if entry.Date == todayStr || entry.Date == tomorrowStr {
			matched = append(matched, entry)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date == matched[j].Date {
			return matched[i].StartTime < matched[j].StartTime
		}
		return matched[i].Date < matched[j].Date
	})
	return matched
}
