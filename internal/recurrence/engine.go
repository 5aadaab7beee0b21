// Package recurrence expands an authoring action (date range, weekday
// filter, entry template) into concrete schedule entries.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/example/seva-scheduler/internal/models"
)

// DateLayout is the calendar-day format used for entry dates.
const DateLayout = "2006-01-02"

// MaxExpansionDays caps how many calendar days a single expansion examines.
// Days beyond the cap are reported, not silently dropped.
const MaxExpansionDays = 365

// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("recurrence: invalid date")

// Input describes one schedule authoring action.
type Input struct {
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	SevaID    string
	PersonID  string
	// Recurring selects range expansion. When false, EndDate is ignored and
	// the single StartDate day is always emitted regardless of its weekday.
	Recurring bool
	// Weekdays filters emitted days for recurring input. Matches Go's
	// time.Weekday numbering (Sunday = 0).
	Weekdays []time.Weekday
}

// Result carries the expanded entries together with expansion metadata.
type Result struct {
	Entries []models.ScheduleEntry
	// GroupID is the correlation key stamped on every entry of a recurring
	// batch. Empty for single-day expansion.
	GroupID string
	// TruncatedDays counts the in-range calendar days that were never
	// examined because the expansion hit MaxExpansionDays.
	TruncatedDays int
}

// Truncated reports whether the requested range exceeded the expansion cap.
func (r Result) Truncated() bool { return r.TruncatedDays > 0 }

// Expand walks the requested date range one calendar day at a time and emits
// one SCHEDULED entry per matching day, each with a fresh identifier from
// newID. Recurring batches share a single generated group identifier.
//
// An empty result is not an error: callers treat zero emitted entries as a
// rejected submission. A range reaching past MaxExpansionDays succeeds
// partially and reports the omitted day count.
func Expand(input Input, newID func() string) (Result, error) {
	if newID == nil {
		newID = func() string { return "" }
	}

	start, err := parseDate(input.StartDate)
	if err != nil {
		return Result{}, err
	}

	end := start
	if input.Recurring {
		end, err = parseDate(input.EndDate)
		if err != nil {
			return Result{}, err
		}
	}

	weekdaySet := make(map[time.Weekday]struct{}, len(input.Weekdays))
	for _, day := range input.Weekdays {
		weekdaySet[day] = struct{}{}
	}

	var result Result
	if input.Recurring {
		result.GroupID = newID()
	}

	examined := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if examined == MaxExpansionDays {
			result.TruncatedDays = daysInclusive(current, end)
			break
		}
		examined++

		if input.Recurring {
			if _, ok := weekdaySet[current.Weekday()]; !ok {
				continue
			}
		}

		result.Entries = append(result.Entries, models.ScheduleEntry{
			ID:        newID(),
			GroupID:   result.GroupID,
			Date:      current.Format(DateLayout),
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			SevaID:    input.SevaID,
			PersonID:  input.PersonID,
			Status:    models.StatusScheduled,
		})
	}

	if len(result.Entries) == 0 {
		result.GroupID = ""
	}

	return result, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

func daysInclusive(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
