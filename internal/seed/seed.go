// Package seed populates a store with demo data for local development.
package seed

import (
	"time"

	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/store"
)

const dateLayout = "2006-01-02"

// Apply loads the demo roster, seva catalog, and a few schedule entries
// relative to the current day. Identifiers come from newID so repeated runs
// in tests stay deterministic.
func Apply(s *store.Store, newID func() string, now func() time.Time) {
	if s == nil || newID == nil {
		return
	}
	if now == nil {
		now = time.Now
	}

	people := []models.Person{
		{FullName: "Rahul Sharma", Email: "rahul@example.com", Mobile: "9876543210", PreferredChannel: models.ChannelWhatsApp, Active: true},
		{FullName: "Priya Patel", Email: "priya@example.com", Mobile: "9876543211", PreferredChannel: models.ChannelEmail, Active: true},
		{FullName: "Amit Kumar", Email: "amit@example.com", Mobile: "9876543212", PreferredChannel: models.ChannelBoth, Active: true},
		{FullName: "Anjali Desai", Email: "anjali@example.com", Mobile: "9876543213", PreferredChannel: models.ChannelWhatsApp, Active: true},
	}
	personIDs := make([]string, len(people))
	for i := range people {
		people[i].ID = newID()
		personIDs[i] = people[i].ID
		s.AddPerson(people[i])
	}

	sevas := []models.Seva{
		{Name: "Morning Asan", Description: "First prayer of the day. Requires setup of lamps.", DefaultDurationMinutes: 45, DefaultStartTime: "05:00", Color: "bg-orange-100 border-orange-200"},
		{Name: "Temple Cleaning", Description: "Cleaning the main hall and entrance.", DefaultDurationMinutes: 90, DefaultStartTime: "07:00", Color: "bg-blue-100 border-blue-200"},
		{Name: "Evening Aarti", Description: "Evening prayer service.", DefaultDurationMinutes: 60, DefaultStartTime: "18:30", Color: "bg-red-100 border-red-200"},
		{Name: "Kitchen Help", Description: "Assisting in preparing Prasad.", DefaultDurationMinutes: 120, DefaultStartTime: "09:00", Color: "bg-yellow-100 border-yellow-200"},
	}
	sevaIDs := make([]string, len(sevas))
	for i := range sevas {
		sevas[i].ID = newID()
		sevaIDs[i] = sevas[i].ID
		s.AddSeva(sevas[i])
	}

	today := now()
	dateAfter := func(days int) string {
		return today.AddDate(0, 0, days).Format(dateLayout)
	}

	morningGroup := newID()
	eveningGroup := newID()

	s.AddEntries([]models.ScheduleEntry{
		{ID: newID(), GroupID: morningGroup, Date: dateAfter(0), StartTime: "05:00", EndTime: "05:45", SevaID: sevaIDs[0], PersonID: personIDs[0], Status: models.StatusScheduled},
		{ID: newID(), GroupID: eveningGroup, Date: dateAfter(0), StartTime: "18:30", EndTime: "19:30", SevaID: sevaIDs[2], PersonID: personIDs[1], Status: models.StatusScheduled},
		{ID: newID(), GroupID: morningGroup, Date: dateAfter(1), StartTime: "05:00", EndTime: "05:45", SevaID: sevaIDs[0], PersonID: personIDs[2], Status: models.StatusScheduled},
		{ID: newID(), GroupID: eveningGroup, Date: dateAfter(1), StartTime: "18:30", EndTime: "19:30", SevaID: sevaIDs[2], PersonID: personIDs[3], Status: models.StatusScheduled},
		{ID: newID(), GroupID: morningGroup, Date: dateAfter(2), StartTime: "05:00", EndTime: "05:45", SevaID: sevaIDs[0], PersonID: personIDs[0], Status: models.StatusScheduled},
		{ID: newID(), Date: dateAfter(3), StartTime: "07:00", EndTime: "08:30", SevaID: sevaIDs[1], PersonID: personIDs[1], Status: models.StatusScheduled},
	})
}
