// Package testfixtures provides deterministic clocks, identifier generators,
// and canonical records for tests.
package testfixtures

import (
	"time"

	"github.com/example/seva-scheduler/internal/models"
)

var referenceTime = time.Date(2024, time.March, 9, 10, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
// 2024-03-09 is a Saturday.
func ReferenceTime() time.Time {
	return referenceTime
}

// SamplePerson returns a deterministic volunteer record.
func SamplePerson(id string) models.Person {
	return models.Person{
		ID:               id,
		FullName:         "Rahul Sharma",
		Email:            "rahul@example.com",
		Mobile:           "9876543210",
		PreferredChannel: models.ChannelWhatsApp,
		Active:           true,
	}
}

// SampleSeva returns a deterministic seva record with a one hour default slot.
func SampleSeva(id string) models.Seva {
	return models.Seva{
		ID:                     id,
		Name:                   "Morning Asan",
		Description:            "First prayer of the day.",
		DefaultDurationMinutes: 60,
		DefaultStartTime:       "06:00",
		Color:                  "bg-orange-100",
	}
}

// SampleEntry returns a deterministic schedule entry on the reference date.
func SampleEntry(id, sevaID, personID string) models.ScheduleEntry {
	return models.ScheduleEntry{
		ID:        id,
		Date:      referenceTime.Format("2006-01-02"),
		StartTime: "06:00",
		EndTime:   "07:00",
		SevaID:    sevaID,
		PersonID:  personID,
		Status:    models.StatusScheduled,
	}
}
