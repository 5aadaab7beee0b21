package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/seva-scheduler/internal/application"
	"github.com/example/seva-scheduler/internal/ics"
	"github.com/example/seva-scheduler/internal/models"
)

type entryLister interface {
	ListEntries(ctx context.Context, filter application.EntriesFilter) ([]models.ScheduleEntry, error)
}

// ICSHandler serves the schedule as an iCalendar feed.
type ICSHandler struct {
	entries   entryLister
	people    personLookup
	sevas     sevaLookup
	now       func() time.Time
	responder responder
	logger    *slog.Logger
}

func NewICSHandler(entries entryLister, people personLookup, sevas sevaLookup, now func() time.Time, logger *slog.Logger) *ICSHandler {
	if now == nil {
		now = time.Now
	}
	base := defaultLogger(logger)
	return &ICSHandler{
		entries:   entries,
		people:    people,
		sevas:     sevas,
		now:       now,
		responder: newResponder(base),
		logger:    base,
	}
}

// Calendar handles GET /calendar.ics.
func (h *ICSHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.entries == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := handlerLogger(r.Context(), h.logger, "ICSHandler", "Calendar")

	entries, err := h.entries.ListEntries(r.Context(), application.EntriesFilter{})
	if err != nil {
		logger.ErrorContext(r.Context(), "entry list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	events := make([]ics.Event, 0, len(entries))
	for _, entry := range entries {
		events = append(events, h.toEvent(entry))
	}

	payload, err := ics.Export(events, h.now())
	if err != nil {
		logger.ErrorContext(r.Context(), "calendar export failed", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusInternalServerError, nil)
		return
	}

	logger.With("event_count", len(events)).InfoContext(r.Context(), "calendar exported")
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="seva-schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		logger.ErrorContext(r.Context(), "failed to write calendar response", "error", err)
	}
}

func (h *ICSHandler) toEvent(entry models.ScheduleEntry) ics.Event {
	sevaName := "Unknown Seva"
	description := ""
	if h.sevas != nil {
		if seva, ok := h.sevas.Seva(entry.SevaID); ok {
			sevaName = seva.Name
			description = seva.Description
		}
	}
	personName := "Unknown Volunteer"
	if h.people != nil {
		if person, ok := h.people.Person(entry.PersonID); ok {
			personName = person.FullName
		}
	}

	status := ics.StatusConfirmed
	if entry.Status == models.StatusCancelled {
		status = ics.StatusCancelled
	}

	return ics.Event{
		UID:         entry.ID,
		Summary:     sevaName + " - " + personName,
		Description: description,
		Date:        entry.Date,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		Status:      status,
	}
}
