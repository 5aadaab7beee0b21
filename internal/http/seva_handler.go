package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/seva-scheduler/internal/application"
	"github.com/example/seva-scheduler/internal/models"
)

type sevaService interface {
	Create(ctx context.Context, input application.SevaInput) (models.Seva, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Seva, error)
}

type SevaHandler struct {
	service   sevaService
	responder responder
	logger    *slog.Logger
}

func NewSevaHandler(service sevaService, logger *slog.Logger) *SevaHandler {
	base := defaultLogger(logger)
	return &SevaHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *SevaHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "SevaHandler", operation, attrs...)
}

func (h *SevaHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req sevaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode seva request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create")

	seva, err := h.service.Create(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "seva creation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("seva_id", seva.ID).InfoContext(r.Context(), "seva created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, sevaResponse{Seva: toSevaDTO(seva)})
}

func (h *SevaHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "Delete", "seva_id", id)
	if err := h.service.Remove(r.Context(), id); err != nil {
		logger.ErrorContext(r.Context(), "seva removal failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "seva removed")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *SevaHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	sevas, err := h.service.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "seva list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(sevas)).InfoContext(r.Context(), "sevas listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listSevasResponse{Sevas: toSevaDTOs(sevas)})
}

type sevaRequest struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
	DefaultStartTime       string `json:"default_start_time"`
	Color                  string `json:"color"`
}

func (r sevaRequest) toInput() application.SevaInput {
	return application.SevaInput{
		Name:                   strings.TrimSpace(r.Name),
		Description:            strings.TrimSpace(r.Description),
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		DefaultStartTime:       strings.TrimSpace(r.DefaultStartTime),
		Color:                  strings.TrimSpace(r.Color),
	}
}

type sevaResponse struct {
	Seva sevaDTO `json:"seva"`
}

type listSevasResponse struct {
	Sevas []sevaDTO `json:"sevas"`
}

type sevaDTO struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description,omitempty"`
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
	DefaultStartTime       string `json:"default_start_time,omitempty"`
	Color                  string `json:"color,omitempty"`
}

func toSevaDTO(seva models.Seva) sevaDTO {
	return sevaDTO{
		ID:                     seva.ID,
		Name:                   seva.Name,
		Description:            seva.Description,
		DefaultDurationMinutes: seva.DefaultDurationMinutes,
		DefaultStartTime:       seva.DefaultStartTime,
		Color:                  seva.Color,
	}
}

func toSevaDTOs(sevas []models.Seva) []sevaDTO {
	if len(sevas) == 0 {
		return nil
	}
	out := make([]sevaDTO, 0, len(sevas))
	for _, seva := range sevas {
		out = append(out, toSevaDTO(seva))
	}
	return out
}
