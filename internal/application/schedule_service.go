package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/example/seva-scheduler/internal/calendar"
	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/recurrence"
	"github.com/example/seva-scheduler/internal/store"
	"github.com/example/seva-scheduler/internal/timeslot"
)

// ScheduleService orchestrates entry authoring, status transitions, and the
// dashboard aggregation views.
type ScheduleService struct {
	store       *store.Store
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewScheduleService wires dependencies for schedule operations.
func NewScheduleService(store *store.Store, idGenerator func() string, now func() time.Time) *ScheduleService {
	return NewScheduleServiceWithLogger(store, idGenerator, now, nil)
}

// NewScheduleServiceWithLogger constructs a schedule service with a specified logger.
func NewScheduleServiceWithLogger(store *store.Store, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ScheduleService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{store: store, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *ScheduleService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ScheduleService", operation, attrs...)
}

// CreateEntries validates an authoring action, derives any omitted times from
// the selected seva's defaults, expands the requested range, and stores the
// resulting batch.
//
// A range that produces zero entries is rejected as a validation failure. A
// range that exceeds the expansion ceiling stores the capped batch and
// reports the omitted day count.
func (s *ScheduleService) CreateEntries(ctx context.Context, input ScheduleInput) (result CreateEntriesResult, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("ScheduleService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "CreateEntries",
		"seva_id", input.SevaID,
		"person_id", input.PersonID,
		"recurring", input.Recurring,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create entries", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "entries created",
			"count", len(result.Entries),
			"group_id", result.GroupID,
			"truncated_days", result.TruncatedDays,
		)
	}()

	vErr := &ValidationError{}

	var seva models.Seva
	if strings.TrimSpace(input.SevaID) == "" {
		vErr.add("seva_id", "a seva type must be selected")
	} else {
		var ok bool
		seva, ok = s.store.Seva(input.SevaID)
		if !ok {
			vErr.add("seva_id", "seva does not exist")
		}
	}

	if strings.TrimSpace(input.PersonID) == "" {
		vErr.add("person_id", "a volunteer must be selected")
	} else if _, ok := s.store.Person(input.PersonID); !ok {
		vErr.add("person_id", "volunteer does not exist")
	}

	validateEntryDates(input, vErr)

	if vErr.HasErrors() {
		err = vErr
		return
	}

	startTime, endTime, timesErr := deriveTimes(seva, input.StartTime, input.EndTime)
	if timesErr != nil {
		err = timesErr
		return
	}

	expanded, expandErr := recurrence.Expand(recurrence.Input{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		StartTime: startTime,
		EndTime:   endTime,
		SevaID:    input.SevaID,
		PersonID:  input.PersonID,
		Recurring: input.Recurring,
		Weekdays:  input.Weekdays,
	}, s.idGenerator)
	if expandErr != nil {
		err = expandErr
		return
	}

	if len(expanded.Entries) == 0 {
		vErr.add("range", "no days match the requested range")
		err = vErr
		return
	}

	if expanded.Truncated() {
		logger.WarnContext(ctx, "expansion hit the day ceiling",
			"ceiling", recurrence.MaxExpansionDays,
			"truncated_days", expanded.TruncatedDays,
		)
	}

	s.store.AddEntries(expanded.Entries)

	result = CreateEntriesResult{
		Entries:       expanded.Entries,
		GroupID:       expanded.GroupID,
		TruncatedDays: expanded.TruncatedDays,
	}
	return result, nil
}

// SetEntryStatus transitions an entry's status. Completed and cancelled are
// terminal: once reached, further transitions are rejected.
func (s *ScheduleService) SetEntryStatus(ctx context.Context, entryID string, status models.ScheduleStatus) (entry models.ScheduleEntry, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("ScheduleService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "SetEntryStatus", "entry_id", entryID, "status", string(status))
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update entry status", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "entry status updated")
	}()

	if !status.Valid() {
		vErr := &ValidationError{}
		vErr.add("status", "status must be SCHEDULED, COMPLETED, or CANCELLED")
		err = vErr
		return
	}

	entry, ok := s.store.Entry(entryID)
	if !ok {
		err = ErrNotFound
		return
	}

	if entry.Status == status {
		return entry, nil
	}
	if entry.Status.Terminal() {
		vErr := &ValidationError{}
		vErr.add("status", fmt.Sprintf("entry is already %s", entry.Status))
		err = vErr
		return
	}

	s.store.SetEntryStatus(entryID, status)
	entry.Status = status
	return entry, nil
}

// ListEntries returns entries matching the filter, ordered by date then
// start time.
func (s *ScheduleService) ListEntries(ctx context.Context, filter EntriesFilter) ([]models.ScheduleEntry, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("ScheduleService is not configured")
	}

	all := s.store.Entries()

	if filter.Date != "" {
		return calendar.EntriesForDate(all, filter.Date), nil
	}

	matched := all
	if filter.Month != "" {
		matched = make([]models.ScheduleEntry, 0)
		prefix := filter.Month + "-"
		for _, entry := range all {
			if strings.HasPrefix(entry.Date, prefix) {
				matched = append(matched, entry)
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date == matched[j].Date {
			return matched[i].StartTime < matched[j].StartTime
		}
		return matched[i].Date < matched[j].Date
	})
	return matched, nil
}

// MonthView assembles the dashboard month grid with one resolved bucket per
// calendar day.
func (s *ScheduleService) MonthView(ctx context.Context, year int, month time.Month) (MonthView, error) {
	if s == nil || s.store == nil {
		return MonthView{}, fmt.Errorf("ScheduleService is not configured")
	}

	grid := calendar.Grid(year, month)
	all := s.store.Entries()
	resolver := s.newResolver()

	days := make([]DayBucket, 0, grid.DaysInMonth)
	for day := 1; day <= grid.DaysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		days = append(days, DayBucket{
			Day:     day,
			Date:    date,
			Entries: resolver.resolveAll(calendar.EntriesForDate(all, date)),
		})
	}

	return MonthView{Grid: grid, Days: days}, nil
}

// Upcoming returns the resolved entries for today and tomorrow.
func (s *ScheduleService) Upcoming(ctx context.Context) ([]ResolvedEntry, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("ScheduleService is not configured")
	}
	resolver := s.newResolver()
	return resolver.resolveAll(calendar.Upcoming(s.store.Entries(), s.now())), nil
}

// ResolveEntry returns one entry with its references resolved, or
// ErrNotFound when the entry does not exist.
func (s *ScheduleService) ResolveEntry(ctx context.Context, entryID string) (ResolvedEntry, error) {
	if s == nil || s.store == nil {
		return ResolvedEntry{}, fmt.Errorf("ScheduleService is not configured")
	}

	entry, ok := s.store.Entry(entryID)
	if !ok {
		return ResolvedEntry{}, ErrNotFound
	}
	return s.newResolver().resolve(entry), nil
}

// resolver snapshots the people and seva collections once so a whole view is
// resolved against consistent data.
type resolver struct {
	sevas  map[string]models.Seva
	people map[string]models.Person
}

func (s *ScheduleService) newResolver() resolver {
	r := resolver{
		sevas:  make(map[string]models.Seva),
		people: make(map[string]models.Person),
	}
	for _, seva := range s.store.Sevas() {
		r.sevas[seva.ID] = seva
	}
	for _, person := range s.store.People() {
		r.people[person.ID] = person
	}
	return r
}

func (r resolver) resolve(entry models.ScheduleEntry) ResolvedEntry {
	resolved := ResolvedEntry{
		Entry:  entry,
		Seva:   SevaRef{ID: entry.SevaID},
		Person: PersonRef{ID: entry.PersonID},
	}
	if seva, ok := r.sevas[entry.SevaID]; ok {
		resolved.Seva = SevaRef{ID: seva.ID, Name: seva.Name, Color: seva.Color, Known: true}
	}
	if person, ok := r.people[entry.PersonID]; ok {
		resolved.Person = PersonRef{ID: person.ID, Name: person.FullName, Known: true}
	}
	return resolved
}

func (r resolver) resolveAll(entries []models.ScheduleEntry) []ResolvedEntry {
	resolved := make([]ResolvedEntry, 0, len(entries))
	for _, entry := range entries {
		resolved = append(resolved, r.resolve(entry))
	}
	return resolved
}

func validateEntryDates(input ScheduleInput, vErr *ValidationError) {
	if strings.TrimSpace(input.StartDate) == "" {
		vErr.add("start_date", "start date is required")
	} else if !validDate(input.StartDate) {
		vErr.add("start_date", "start date must be YYYY-MM-DD")
	}

	if !input.Recurring {
		return
	}

	if strings.TrimSpace(input.EndDate) == "" {
		vErr.add("end_date", "end date is required for recurring entries")
	} else if !validDate(input.EndDate) {
		vErr.add("end_date", "end date must be YYYY-MM-DD")
	}
}

func validDate(value string) bool {
	_, err := time.Parse(recurrence.DateLayout, value)
	return err == nil
}

// deriveTimes seeds a draft from the seva's defaults and applies any caller
// supplied overrides. Supplying a start time re-derives the end; supplying an
// end time pins it.
func deriveTimes(seva models.Seva, startTime, endTime string) (string, string, error) {
	draft, err := timeslot.NewDraft(seva.DefaultStartTime, seva.DefaultDurationMinutes)
	if err != nil {
		return "", "", err
	}

	vErr := &ValidationError{}
	if startTime != "" {
		if err := draft.SetStart(startTime); err != nil {
			vErr.add("start_time", "start time must be HH:mm")
		}
	}
	if endTime != "" {
		if err := draft.SetEnd(endTime); err != nil {
			vErr.add("end_time", "end time must be HH:mm")
		}
	}
	if vErr.HasErrors() {
		return "", "", vErr
	}
	return draft.Start(), draft.End(), nil
}
