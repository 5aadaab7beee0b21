package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/seva-scheduler/internal/application"
	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/reminder"
)

type entryResolver interface {
	ResolveEntry(ctx context.Context, entryID string) (application.ResolvedEntry, error)
	ListEntries(ctx context.Context, filter application.EntriesFilter) ([]models.ScheduleEntry, error)
}

type drafter interface {
	DraftReminder(ctx context.Context, person models.Person, seva models.Seva, date, startTime string) reminder.Draft
	DraftDailySummary(ctx context.Context, date string, scheduleCount int) reminder.Draft
}

type personLookup interface {
	Person(id string) (models.Person, bool)
}

type sevaLookup interface {
	Seva(id string) (models.Seva, bool)
}

// ReminderHandler drafts notification text for individual entries and whole
// days. The lookups pull the full person/seva records the prompts need; the
// resolver only carries display references.
type ReminderHandler struct {
	entries   entryResolver
	drafter   drafter
	people    personLookup
	sevas     sevaLookup
	responder responder
	logger    *slog.Logger
}

func NewReminderHandler(entries entryResolver, drafter drafter, people personLookup, sevas sevaLookup, logger *slog.Logger) *ReminderHandler {
	base := defaultLogger(logger)
	return &ReminderHandler{
		entries:   entries,
		drafter:   drafter,
		people:    people,
		sevas:     sevas,
		responder: newResponder(base),
		logger:    base,
	}
}

func (h *ReminderHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ReminderHandler", operation, attrs...)
}

// DraftReminder handles POST /entries/{id}/reminder.
func (h *ReminderHandler) DraftReminder(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.entries == nil || h.drafter == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	entryID, ok := EntryIDFromContext(r.Context())
	if !ok || strings.TrimSpace(entryID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, nil)
		return
	}

	logger := h.log(r.Context(), "DraftReminder", "entry_id", entryID)

	resolved, err := h.entries.ResolveEntry(r.Context(), entryID)
	if err != nil {
		logger.ErrorContext(r.Context(), "entry resolution failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	vErr := &application.ValidationError{FieldErrors: map[string]string{}}
	person, personOK := h.people.Person(resolved.Entry.PersonID)
	if !personOK {
		vErr.FieldErrors["person_id"] = "the assigned volunteer no longer exists"
	}
	seva, sevaOK := h.sevas.Seva(resolved.Entry.SevaID)
	if !sevaOK {
		vErr.FieldErrors["seva_id"] = "the assigned seva no longer exists"
	}
	if len(vErr.FieldErrors) > 0 {
		logger.ErrorContext(r.Context(), "entry references removed records", "error", vErr)
		h.responder.handleServiceError(r.Context(), w, vErr)
		return
	}

	draft := h.drafter.DraftReminder(r.Context(), person, seva, resolved.Entry.Date, resolved.Entry.StartTime)
	logger.With("draft_state", string(draft.State)).InfoContext(r.Context(), "reminder drafted")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, draftResponse{
		State:   string(draft.State),
		Message: draft.Message(),
	})
}

// DailySummary handles GET /summaries/daily?date=YYYY-MM-DD.
func (h *ReminderHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.entries == nil || h.drafter == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingDate)
		return
	}

	logger := h.log(r.Context(), "DailySummary", "date", date)

	entries, err := h.entries.ListEntries(r.Context(), application.EntriesFilter{Date: date})
	if err != nil {
		logger.ErrorContext(r.Context(), "entry list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	draft := h.drafter.DraftDailySummary(r.Context(), date, len(entries))
	logger.With("draft_state", string(draft.State), "entry_count", len(entries)).InfoContext(r.Context(), "daily summary drafted")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, summaryResponse{
		State:      string(draft.State),
		Message:    draft.Message(),
		Date:       date,
		EntryCount: len(entries),
	})
}

type draftResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

type summaryResponse struct {
	State      string `json:"state"`
	Message    string `json:"message"`
	Date       string `json:"date"`
	EntryCount int    `json:"entry_count"`
}
