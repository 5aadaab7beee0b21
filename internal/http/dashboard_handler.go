package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/seva-scheduler/internal/application"
)

type dashboardService interface {
	MonthView(ctx context.Context, year int, month time.Month) (application.MonthView, error)
	Upcoming(ctx context.Context) ([]application.ResolvedEntry, error)
}

type DashboardHandler struct {
	service   dashboardService
	responder responder
	logger    *slog.Logger
}

func NewDashboardHandler(service dashboardService, logger *slog.Logger) *DashboardHandler {
	base := defaultLogger(logger)
	return &DashboardHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *DashboardHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "DashboardHandler", operation, attrs...)
}

func (h *DashboardHandler) Month(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	monthParam := strings.TrimSpace(r.URL.Query().Get("month"))
	parsed, err := time.Parse("2006-01", monthParam)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidMonth)
		return
	}

	logger := h.log(r.Context(), "Month", "month", monthParam)

	view, err := h.service.MonthView(r.Context(), parsed.Year(), parsed.Month())
	if err != nil {
		logger.ErrorContext(r.Context(), "month view failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "month view rendered")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toMonthViewDTO(view))
}

func (h *DashboardHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "Upcoming")
	entries, err := h.service.Upcoming(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "upcoming view failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(entries)).InfoContext(r.Context(), "upcoming entries listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, upcomingResponse{Entries: toResolvedEntryDTOs(entries)})
}

type monthViewDTO struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	DaysInMonth   int            `json:"days_in_month"`
	LeadingBlanks int            `json:"leading_blanks"`
	Days          []dayBucketDTO `json:"days"`
}

type dayBucketDTO struct {
	Day     int                `json:"day"`
	Date    string             `json:"date"`
	Entries []resolvedEntryDTO `json:"entries,omitempty"`
}

type upcomingResponse struct {
	Entries []resolvedEntryDTO `json:"entries"`
}

type resolvedEntryDTO struct {
	Entry  entryDTO     `json:"entry"`
	Seva   sevaRefDTO   `json:"seva"`
	Person personRefDTO `json:"person"`
}

type sevaRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Known bool   `json:"known"`
}

type personRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

func toMonthViewDTO(view application.MonthView) monthViewDTO {
	days := make([]dayBucketDTO, 0, len(view.Days))
	for _, bucket := range view.Days {
		days = append(days, dayBucketDTO{
			Day:     bucket.Day,
			Date:    bucket.Date,
			Entries: toResolvedEntryDTOs(bucket.Entries),
		})
	}
	return monthViewDTO{
		Year:          view.Grid.Year,
		Month:         int(view.Grid.Month),
		DaysInMonth:   view.Grid.DaysInMonth,
		LeadingBlanks: view.Grid.LeadingBlanks,
		Days:          days,
	}
}

func toResolvedEntryDTO(resolved application.ResolvedEntry) resolvedEntryDTO {
	return resolvedEntryDTO{
		Entry: toEntryDTO(resolved.Entry),
		Seva: sevaRefDTO{
			ID:    resolved.Seva.ID,
			Name:  resolved.Seva.Name,
			Color: resolved.Seva.Color,
			Known: resolved.Seva.Known,
		},
		Person: personRefDTO{
			ID:    resolved.Person.ID,
			Name:  resolved.Person.Name,
			Known: resolved.Person.Known,
		},
	}
}

func toResolvedEntryDTOs(entries []application.ResolvedEntry) []resolvedEntryDTO {
	if len(entries) == 0 {
		return nil
	}
	out := make([]resolvedEntryDTO, 0, len(entries))
	for _, resolved := range entries {
		out = append(out, toResolvedEntryDTO(resolved))
	}
	return out
}
