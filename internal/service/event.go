package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/repository"
)

const defaultUpcomingN = 10

var (
	ErrEventNotFound       = repository.ErrEventNotFound
	ErrAlreadyRegistered   = repository.ErrAlreadyRegistered
	ErrEventFieldsRequired = errors.New("title, event_date and location are required")
	ErrInvalidEventStatus  = errors.New("invalid event status")
	ErrInvalidMaxEntrants  = errors.New("max_participants must be a positive integer")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, update domain.EventUpdate) (domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateRegistration(ctx context.Context, eventID, participantID uuid.UUID) (domain.EventRegistration, error)
	FindRegistrations(ctx context.Context, eventID uuid.UUID) ([]domain.EventRegistration, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

// Upcoming returns events dated today or later, soonest first.
// A non-positive limit falls back to 10.
func (s *EventService) Upcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultUpcomingN
	}

	events, err := s.repo.FindUpcoming(ctx, time.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindUpcoming -> %w", err)
	}

	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	event.Location = strings.TrimSpace(event.Location)
	if event.Title == "" || event.Location == "" || event.EventDate.IsZero() {
		return domain.Event{}, ErrEventFieldsRequired
	}

	if event.Status == "" {
		event.Status = domain.EventStatusPreparation
	}
	if !domain.IsValidEventStatus(event.Status) {
		return domain.Event{}, ErrInvalidEventStatus
	}
	if event.MaxParticipants != nil && *event.MaxParticipants <= 0 {
		return domain.Event{}, ErrInvalidMaxEntrants
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update changes only the supplied fields. Status and RegistrationOpen stay
// independent of each other; updating one never touches the other.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, update domain.EventUpdate) (domain.Event, error) {
	if update.Status != nil && !domain.IsValidEventStatus(*update.Status) {
		return domain.Event{}, ErrInvalidEventStatus
	}
	if update.MaxParticipants != nil && *update.MaxParticipants <= 0 {
		return domain.Event{}, ErrInvalidMaxEntrants
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Register books a participant onto an event. The second registration of the
// same pair reports a conflict; the uniqueness itself is enforced by the
// storage layer so racing calls cannot double-book.
func (s *EventService) Register(ctx context.Context, eventID, participantID uuid.UUID) (domain.EventRegistration, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	registration, err := s.repo.CreateRegistration(ctx, eventID, participantID)
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.repo.CreateRegistration -> %w", err)
	}

	return registration, nil
}

func (s *EventService) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]domain.EventRegistration, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	registrations, err := s.repo.FindRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRegistrations -> %w", err)
	}

	return registrations, nil
}
