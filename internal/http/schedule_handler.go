package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/seva-scheduler/internal/application"
	"github.com/example/seva-scheduler/internal/models"
)

type scheduleService interface {
	CreateEntries(ctx context.Context, input application.ScheduleInput) (application.CreateEntriesResult, error)
	SetEntryStatus(ctx context.Context, entryID string, status models.ScheduleStatus) (models.ScheduleEntry, error)
	ListEntries(ctx context.Context, filter application.EntriesFilter) ([]models.ScheduleEntry, error)
}

type ScheduleHandler struct {
	service   scheduleService
	responder responder
	logger    *slog.Logger
}

func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	base := defaultLogger(logger)
	return &ScheduleHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ScheduleHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ScheduleHandler", operation, attrs...)
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req entryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode entry request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "seva_id", req.SevaID, "person_id", req.PersonID)

	result, err := h.service.CreateEntries(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "entry creation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	resp := createEntriesResponse{
		Entries: toEntryDTOs(result.Entries),
		GroupID: result.GroupID,
	}
	if result.TruncatedDays > 0 {
		resp.Warning = fmt.Sprintf("the requested range was shortened by %d day(s)", result.TruncatedDays)
	}

	logger.With("entry_count", len(result.Entries), "truncated_days", result.TruncatedDays).
		InfoContext(r.Context(), "entries created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, resp)
}

func (h *ScheduleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	entryID, ok := EntryIDFromContext(r.Context())
	if !ok || strings.TrimSpace(entryID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, nil)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "UpdateStatus", "entry_id", entryID, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode status request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "UpdateStatus", "entry_id", entryID, "status", req.Status)

	entry, err := h.service.SetEntryStatus(r.Context(), entryID, models.ScheduleStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		logger.ErrorContext(r.Context(), "status update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "entry status updated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, entryResponse{Entry: toEntryDTO(entry)})
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filter := application.EntriesFilter{
		Date:  strings.TrimSpace(r.URL.Query().Get("date")),
		Month: strings.TrimSpace(r.URL.Query().Get("month")),
	}

	logger := h.log(r.Context(), "List")
	entries, err := h.service.ListEntries(r.Context(), filter)
	if err != nil {
		logger.ErrorContext(r.Context(), "entry list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(entries)).InfoContext(r.Context(), "entries listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listEntriesResponse{Entries: toEntryDTOs(entries)})
}

type entryCreateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	SevaID    string `json:"seva_id"`
	PersonID  string `json:"person_id"`
	Recurring bool   `json:"recurring"`
	Weekdays  []int  `json:"weekdays"`
}

func (r entryCreateRequest) toInput() application.ScheduleInput {
	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, day := range r.Weekdays {
		if day >= 0 && day <= 6 {
			weekdays = append(weekdays, time.Weekday(day))
		}
	}
	return application.ScheduleInput{
		StartDate: strings.TrimSpace(r.StartDate),
		EndDate:   strings.TrimSpace(r.EndDate),
		StartTime: strings.TrimSpace(r.StartTime),
		EndTime:   strings.TrimSpace(r.EndTime),
		SevaID:    strings.TrimSpace(r.SevaID),
		PersonID:  strings.TrimSpace(r.PersonID),
		Recurring: r.Recurring,
		Weekdays:  weekdays,
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

type createEntriesResponse struct {
	Entries []entryDTO `json:"entries"`
	GroupID string     `json:"group_id,omitempty"`
	Warning string     `json:"warning,omitempty"`
}

type entryResponse struct {
	Entry entryDTO `json:"entry"`
}

type listEntriesResponse struct {
	Entries []entryDTO `json:"entries"`
}

type entryDTO struct {
	ID        string `json:"id"`
	GroupID   string `json:"group_id,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	SevaID    string `json:"seva_id"`
	PersonID  string `json:"person_id"`
	Status    string `json:"status"`
}

func toEntryDTO(entry models.ScheduleEntry) entryDTO {
	return entryDTO{
		ID:        entry.ID,
		GroupID:   entry.GroupID,
		Date:      entry.Date,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		SevaID:    entry.SevaID,
		PersonID:  entry.PersonID,
		Status:    string(entry.Status),
	}
}

func toEntryDTOs(entries []models.ScheduleEntry) []entryDTO {
	if len(entries) == 0 {
		return nil
	}
	out := make([]entryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toEntryDTO(entry))
	}
	return out
}
