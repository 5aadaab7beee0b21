package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/store"
	"github.com/example/seva-scheduler/internal/timeslot"
)

// SevaService manages the catalog of seva types.
type SevaService struct {
	store       *store.Store
	idGenerator func() string
	logger      *slog.Logger
}

// NewSevaService constructs a seva service with the provided dependencies.
func NewSevaService(store *store.Store, idGenerator func() string) *SevaService {
	return NewSevaServiceWithLogger(store, idGenerator, nil)
}

// NewSevaServiceWithLogger constructs a seva service with a specified logger.
func NewSevaServiceWithLogger(store *store.Store, idGenerator func() string, logger *slog.Logger) *SevaService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &SevaService{store: store, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

func (s *SevaService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SevaService", operation, attrs...)
}

// Create validates and stores a new seva type, assigning a fresh identifier.
func (s *SevaService) Create(ctx context.Context, input SevaInput) (seva models.Seva, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("SevaService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Create")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create seva", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("seva_id", seva.ID).InfoContext(ctx, "seva created")
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if input.DefaultDurationMinutes <= 0 {
		vErr.add("default_duration_minutes", "default duration must be a positive number of minutes")
	}
	if start := strings.TrimSpace(input.DefaultStartTime); start != "" && !timeslot.Valid(start) {
		vErr.add("default_start_time", "default start time must be HH:mm")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	seva = models.Seva{
		ID:                     s.idGenerator(),
		Name:                   strings.TrimSpace(input.Name),
		Description:            input.Description,
		DefaultDurationMinutes: input.DefaultDurationMinutes,
		DefaultStartTime:       strings.TrimSpace(input.DefaultStartTime),
		Color:                  input.Color,
	}
	s.store.AddSeva(seva)
	return seva, nil
}

// Remove deletes the seva type with the given id. Removal of an absent id is
// a no-op, and schedule entries referencing the seva are deliberately left
// dangling.
func (s *SevaService) Remove(ctx context.Context, id string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("SevaService is not configured")
	}

	s.store.RemoveSeva(id)
	s.loggerWith(ctx, "Remove", "seva_id", id).InfoContext(ctx, "seva removed")
	return nil
}

// List returns all seva types.
func (s *SevaService) List(ctx context.Context) ([]models.Seva, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("SevaService is not configured")
	}
	return s.store.Sevas(), nil
}
