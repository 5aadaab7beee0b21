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

type personService interface {
	Register(ctx context.Context, input application.PersonInput) (models.Person, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Person, error)
}

type PersonHandler struct {
	service   personService
	responder responder
	logger    *slog.Logger
}

func NewPersonHandler(service personService, logger *slog.Logger) *PersonHandler {
	base := defaultLogger(logger)
	return &PersonHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *PersonHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "PersonHandler", operation, attrs...)
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode person request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create")

	person, err := h.service.Register(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "volunteer registration failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("person_id", person.ID).InfoContext(r.Context(), "volunteer registered")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, personResponse{Person: toPersonDTO(person)})
}

func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "Delete", "person_id", id)
	if err := h.service.Remove(r.Context(), id); err != nil {
		logger.ErrorContext(r.Context(), "volunteer removal failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "volunteer removed")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	people, err := h.service.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "volunteer list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(people)).InfoContext(r.Context(), "volunteers listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPeopleResponse{People: toPersonDTOs(people)})
}

type personRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	PreferredChannel string `json:"preferred_channel"`
	Active           *bool  `json:"active"`
}

func (r personRequest) toInput() application.PersonInput {
	return application.PersonInput{
		FullName:         strings.TrimSpace(r.FullName),
		Email:            strings.TrimSpace(r.Email),
		Mobile:           strings.TrimSpace(r.Mobile),
		PreferredChannel: models.NotificationChannel(strings.TrimSpace(r.PreferredChannel)),
		Active:           r.Active,
	}
}

type personResponse struct {
	Person personDTO `json:"person"`
}

type listPeopleResponse struct {
	People []personDTO `json:"people"`
}

type personDTO struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	PreferredChannel string `json:"preferred_channel"`
	Active           bool   `json:"active"`
}

func toPersonDTO(person models.Person) personDTO {
	return personDTO{
		ID:               person.ID,
		FullName:         person.FullName,
		Email:            person.Email,
		Mobile:           person.Mobile,
		PreferredChannel: string(person.PreferredChannel),
		Active:           person.Active,
	}
}

func toPersonDTOs(people []models.Person) []personDTO {
	if len(people) == 0 {
		return nil
	}
	out := make([]personDTO, 0, len(people))
	for _, person := range people {
		out = append(out, toPersonDTO(person))
	}
	return out
}
