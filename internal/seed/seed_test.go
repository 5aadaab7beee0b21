package seed

import (
	"testing"
	"time"

	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/store"
	"github.com/example/seva-scheduler/internal/testfixtures"
)

func TestApply(t *testing.T) {
	s := store.New()
	ids := testfixtures.NewIDGenerator("seed")
	clock := testfixtures.NewClock(time.Date(2024, time.March, 9, 10, 0, 0, 0, time.UTC))

	Apply(s, ids.NextFunc(), clock.NowFunc())

	if len(s.People()) != 4 {
		t.Fatalf("expected 4 volunteers, got %d", len(s.People()))
	}
	if len(s.Sevas()) != 4 {
		t.Fatalf("expected 4 sevas, got %d", len(s.Sevas()))
	}
	entries := s.Entries()
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}

	byDate := make(map[string]int)
	for _, entry := range entries {
		byDate[entry.Date]++
		if entry.Status != models.StatusScheduled {
			t.Fatalf("entry %s status = %s, want SCHEDULED", entry.ID, entry.Status)
		}
		if _, ok := s.Seva(entry.SevaID); !ok {
			t.Fatalf("entry %s references unknown seva %s", entry.ID, entry.SevaID)
		}
		if _, ok := s.Person(entry.PersonID); !ok {
			t.Fatalf("entry %s references unknown volunteer %s", entry.ID, entry.PersonID)
		}
	}
	want := map[string]int{"2024-03-09": 2, "2024-03-10": 2, "2024-03-11": 1, "2024-03-12": 1}
	for date, count := range want {
		if byDate[date] != count {
			t.Fatalf("expected %d entries on %s, got %d", count, date, byDate[date])
		}
	}

	// The morning slots form one recurring group.
	groups := make(map[string]int)
	for _, entry := range entries {
		if entry.GroupID != "" {
			groups[entry.GroupID]++
		}
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 recurring groups, got %d", len(groups))
	}
}
