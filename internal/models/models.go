// Package models defines the entities shared across the scheduling core:
// volunteers, seva types, and concrete schedule entries.
//
// Calendar dates are YYYY-MM-DD strings and times of day are fixed-width
// HH:mm strings, so lexicographic comparison on either is chronological.
package models

// NotificationChannel identifies how a volunteer prefers to be reached.
type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "EMAIL"
	ChannelWhatsApp NotificationChannel = "WHATSAPP"
	ChannelBoth     NotificationChannel = "BOTH"
)

// Valid reports whether the channel is one of the supported values.
func (c NotificationChannel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelBoth:
		return true
	}
	return false
}

// ScheduleStatus tracks the lifecycle of a schedule entry.
type ScheduleStatus string

const (
	StatusScheduled ScheduleStatus = "SCHEDULED"
	StatusCompleted ScheduleStatus = "COMPLETED"
	StatusCancelled ScheduleStatus = "CANCELLED"
)

// Valid reports whether the status is one of the supported values.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the entry lifecycle. Completed and
// cancelled entries never transition again.
func (s ScheduleStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Person represents a registered volunteer.
type Person struct {
	ID               string
	FullName         string
	Email            string
	Mobile           string
	PreferredChannel NotificationChannel
	Active           bool
}

// Seva describes a category of temple service a volunteer can be assigned to.
type Seva struct {
	ID          string
	Name        string
	Description string
	// DefaultDurationMinutes is used to derive an end time when authoring
	// entries for this seva. Always positive.
	DefaultDurationMinutes int
	// DefaultStartTime is an optional HH:mm value; empty when unset.
	DefaultStartTime string
	// Color is an opaque presentation tag carried through verbatim.
	Color string
}

// ScheduleEntry is one concrete assignment of a volunteer to a seva on a
// specific date and time range.
//
// Date, StartTime, and EndTime are stored independently: nothing enforces
// EndTime > StartTime, and the entry keeps whatever the authoring flow
// produced. SevaID and PersonID are weak references; deleting the target
// leaves them dangling and display logic must treat a failed lookup as a
// defined unknown variant.
type ScheduleEntry struct {
	ID string
	// GroupID correlates entries produced by a single recurring authoring
	// action. Empty for single-day entries.
	GroupID   string
	Date      string
	StartTime string
	EndTime   string
	SevaID    string
	PersonID  string
	Status    ScheduleStatus
}
