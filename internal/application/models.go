package application

import (
	"time"

	"github.com/example/seva-scheduler/internal/calendar"
	"github.com/example/seva-scheduler/internal/models"
)

// PersonInput captures caller provided volunteer attributes.
type PersonInput struct {
	FullName         string
	Email            string
	Mobile           string
	PreferredChannel models.NotificationChannel
	// Active defaults to true when nil.
	Active *bool
}

// SevaInput captures caller provided seva type attributes.
type SevaInput struct {
	Name                   string
	Description            string
	DefaultDurationMinutes int
	DefaultStartTime       string
	Color                  string
}

// ScheduleInput captures one schedule authoring action, single-day or
// recurring. StartTime and EndTime are optional; omitted values are derived
// from the selected seva's defaults.
type ScheduleInput struct {
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	SevaID    string
	PersonID  string
	Recurring bool
	Weekdays  []time.Weekday
}

// CreateEntriesResult reports a stored authoring batch. TruncatedDays is
// non-zero when the requested range exceeded the expansion ceiling.
type CreateEntriesResult struct {
	Entries       []models.ScheduleEntry
	GroupID       string
	TruncatedDays int
}

// SevaRef resolves an entry's seva reference for display. Known is false
// when the seva was deleted after the entry was created.
type SevaRef struct {
	ID    string
	Name  string
	Color string
	Known bool
}

// PersonRef resolves an entry's volunteer reference for display. Known is
// false when the person was deleted after the entry was created.
type PersonRef struct {
	ID    string
	Name  string
	Known bool
}

// ResolvedEntry pairs a schedule entry with its resolved references.
type ResolvedEntry struct {
	Entry  models.ScheduleEntry
	Seva   SevaRef
	Person PersonRef
}

// DayBucket groups the resolved entries of one calendar day.
type DayBucket struct {
	Day     int
	Date    string
	Entries []ResolvedEntry
}

// MonthView is the dashboard's month representation: the grid layout plus
// one bucket per day.
type MonthView struct {
	Grid calendar.MonthGrid
	Days []DayBucket
}

// EntriesFilter narrows entry listings. At most one of Date (YYYY-MM-DD)
// and Month (YYYY-MM) is honored, Date taking precedence.
type EntriesFilter struct {
	Date  string
	Month string
}
