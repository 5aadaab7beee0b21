package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/seva-scheduler/internal/models"
	"github.com/example/seva-scheduler/internal/store"
)

// PersonService manages the volunteer roster.
type PersonService struct {
	store       *store.Store
	idGenerator func() string
	logger      *slog.Logger
}

// NewPersonService constructs a person service with the provided dependencies.
func NewPersonService(store *store.Store, idGenerator func() string) *PersonService {
	return NewPersonServiceWithLogger(store, idGenerator, nil)
}

// NewPersonServiceWithLogger constructs a person service with a specified logger.
func NewPersonServiceWithLogger(store *store.Store, idGenerator func() string, logger *slog.Logger) *PersonService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &PersonService{store: store, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

func (s *PersonService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PersonService", operation, attrs...)
}

// Register validates and stores a new volunteer, assigning a fresh identifier.
func (s *PersonService) Register(ctx context.Context, input PersonInput) (person models.Person, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("PersonService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Register")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to register volunteer", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("person_id", person.ID).InfoContext(ctx, "volunteer registered")
	}()

	channel := input.PreferredChannel
	if channel == "" {
		channel = models.ChannelWhatsApp
	}

	vErr := &ValidationError{}
	if strings.TrimSpace(input.FullName) == "" {
		vErr.add("full_name", "full name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		vErr.add("email", "email is required")
	}
	if strings.TrimSpace(input.Mobile) == "" {
		vErr.add("mobile", "mobile number is required")
	}
	if !channel.Valid() {
		vErr.add("preferred_channel", "preferred channel must be EMAIL, WHATSAPP, or BOTH")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	person = models.Person{
		ID:               s.idGenerator(),
		FullName:         strings.TrimSpace(input.FullName),
		Email:            strings.TrimSpace(input.Email),
		Mobile:           strings.TrimSpace(input.Mobile),
		PreferredChannel: channel,
		Active:           active,
	}
	s.store.AddPerson(person)
	return person, nil
}

// Remove deletes the volunteer with the given id. Removal of an absent id is
// a no-op, and schedule entries referencing the volunteer are deliberately
// left dangling.
func (s *PersonService) Remove(ctx context.Context, id string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("PersonService is not configured")
	}

	s.store.RemovePerson(id)
	s.loggerWith(ctx, "Remove", "person_id", id).InfoContext(ctx, "volunteer removed")
	return nil
}

// List returns all registered volunteers.
func (s *PersonService) List(ctx context.Context) ([]models.Person, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("PersonService is not configured")
	}
	return s.store.People(), nil
}
