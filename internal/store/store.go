// Package store holds the process-lifetime entity collections. There is no
// persistence: the store is the single source of truth for people, sevas,
// and schedule entries while the process runs.
package store

import (
	"sync"

	"github.com/example/seva-scheduler/internal/models"
)

// Store guards the three entity collections behind one mutex. Reads hand out
// copied snapshots so callers never observe a partial mutation, and every
// mutation happens under a single lock acquisition.
//
// The store performs no uniqueness or referential validation: deleting a
// person or seva leaves entries referencing it dangling, and resolving such
// references to a defined unknown variant is the display layer's job.
type Store struct {
	mu      sync.RWMutex
	people  []models.Person
	sevas   []models.Seva
	entries []models.ScheduleEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AddPerson appends a volunteer record. The caller supplies the identifier.
func (s *Store) AddPerson(person models.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = append(s.people, person)
}

// RemovePerson deletes the volunteer with the given id. Absent ids are a
// no-op, and schedule entries referencing the person are left untouched.
func (s *Store) RemovePerson(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = removeByID(s.people, id, func(p models.Person) string { return p.ID })
}

// People returns a snapshot of all volunteers.
func (s *Store) People() []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Person(nil), s.people...)
}

// Person looks up a volunteer by id.
func (s *Store) Person(id string) (models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// AddSeva appends a seva type. The caller supplies the identifier.
func (s *Store) AddSeva(seva models.Seva) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sevas = append(s.sevas, seva)
}

// RemoveSeva deletes the seva with the given id. Absent ids are a no-op, and
// schedule entries referencing the seva are left untouched.
func (s *Store) RemoveSeva(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sevas = removeByID(s.sevas, id, func(v models.Seva) string { return v.ID })
}

// Sevas returns a snapshot of all seva types.
func (s *Store) Sevas() []models.Seva {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Seva(nil), s.sevas...)
}

// Seva looks up a seva type by id.
func (s *Store) Seva(id string) (models.Seva, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.sevas {
		if v.ID == id {
			return v, true
		}
	}
	return models.Seva{}, false
}

// AddEntries appends a batch of schedule entries atomically: readers see
// either none or all of the batch.
func (s *Store) AddEntries(batch []models.ScheduleEntry) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, batch...)
}

// SetEntryStatus replaces the status of the matching entry and reports
// whether an entry was updated. Absent ids are a no-op.
func (s *Store) SetEntryStatus(id string, status models.ScheduleStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Status = status
			return true
		}
	}
	return false
}

// Entries returns a snapshot of all schedule entries.
func (s *Store) Entries() []models.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ScheduleEntry(nil), s.entries...)
}

// Entry looks up a schedule entry by id.
func (s *Store) Entry(id string) (models.ScheduleEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.ScheduleEntry{}, false
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	kept := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			kept = append(kept, item)
		}
	}
	return kept
}
