package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/testfixtures"
)

func TestStore_People(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddPerson(models.Person{ID: "p1", FullName: "Rahul Sharma", PreferredChannel: models.ChannelWhatsApp, Active: true})
	s.AddPerson(models.Person{ID: "p2", FullName: "Priya Patel", PreferredChannel: models.ChannelEmail, Active: true})

	t.Run("lookup finds stored records", func(t *testing.T) {
		person, ok := s.Person("p1")
		require.True(t, ok)
		assert.Equal(t, "Rahul Sharma", person.FullName)
	})

	t.Run("remove deletes only the matching record", func(t *testing.T) {
		s.RemovePerson("p1")
		_, ok := s.Person("p1")
		assert.False(t, ok)
		require.Len(t, s.People(), 1)
		assert.Equal(t, "p2", s.People()[0].ID)
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		s.RemovePerson("missing")
		assert.Len(t, s.People(), 1)
	})

	t.Run("snapshots are copies", func(t *testing.T) {
		snapshot := s.People()
		snapshot[0].FullName = "mutated"
		person, ok := s.Person("p2")
		require.True(t, ok)
		assert.Equal(t, "Priya Patel", person.FullName)
	})
}

func TestStore_Sevas(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddSeva(models.Seva{ID: "s1", Name: "Morning Asan", DefaultDurationMinutes: 45, DefaultStartTime: "05:00"})

	seva, ok := s.Seva("s1")
	require.True(t, ok)
	assert.Equal(t, 45, seva.DefaultDurationMinutes)

	s.RemoveSeva("s1")
	_, ok = s.Seva("s1")
	assert.False(t, ok)
	assert.Empty(t, s.Sevas())
}

func TestStore_DeleteLeavesReferencesDangling(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddPerson(testfixtures.SamplePerson("p1"))
	s.AddSeva(testfixtures.SampleSeva("s1"))
	s.AddEntries([]models.ScheduleEntry{testfixtures.SampleEntry("e1", "s1", "p1")})

	s.RemovePerson("p1")
	s.RemoveSeva("s1")

	entry, ok := s.Entry("e1")
	require.True(t, ok, "entry must survive deletion of its references")
	assert.Equal(t, "p1", entry.PersonID)
	assert.Equal(t, "s1", entry.SevaID)
}

func TestStore_Entries(t *testing.T) {
	t.Parallel()

	s := New()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		s.AddEntries(nil)
		assert.Empty(t, s.Entries())
	})

	batch := []models.ScheduleEntry{
		{ID: "e1", GroupID: "g1", Date: "2024-03-09", Status: models.StatusScheduled},
		{ID: "e2", GroupID: "g1", Date: "2024-03-10", Status: models.StatusScheduled},
	}
	s.AddEntries(batch)

	t.Run("batch append keeps every entry", func(t *testing.T) {
		assert.Len(t, s.Entries(), 2)
	})

	t.Run("status replacement targets one entry", func(t *testing.T) {
		updated := s.SetEntryStatus("e1", models.StatusCompleted)
		assert.True(t, updated)

		entry, ok := s.Entry("e1")
		require.True(t, ok)
		assert.Equal(t, models.StatusCompleted, entry.Status)

		other, ok := s.Entry("e2")
		require.True(t, ok)
		assert.Equal(t, models.StatusScheduled, other.Status)
	})

	t.Run("status update for an absent id reports false", func(t *testing.T) {
		assert.False(t, s.SetEntryStatus("missing", models.StatusCancelled))
	})
}
