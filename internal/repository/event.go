package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/repository/dao"
)

var (
	ErrEventNotFound     = dao.ErrEventNotFound
	ErrAlreadyRegistered = dao.ErrAlreadyRegistered
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]dao.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Event, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (dao.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.EventRegistration) (dao.EventRegistration, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]dao.EventRegistration, error)
}

type EventRepository struct {
	events        EventDAO
	registrations RegistrationDAO
}

func NewEventRepository(events EventDAO, registrations RegistrationDAO) *EventRepository {
	return &EventRepository{
		events:        events,
		registrations: registrations,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.events.Insert(ctx, dao.Event{
		Title:            event.Title,
		Description:      event.Description,
		EventDate:        event.EventDate,
		EventTime:        event.EventTime,
		Location:         event.Location,
		Status:           event.Status,
		RegistrationOpen: event.RegistrationOpen,
		MaxParticipants:  event.MaxParticipants,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.events.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.events.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	found, err := r.events.FindUpcoming(ctx, from, limit)
	if err != nil {
		return nil, fmt.Errorf("r.events.FindUpcoming -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	found, err := r.events.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.events.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, update domain.EventUpdate) (domain.Event, error) {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.EventDate != nil {
		fields["event_date"] = *update.EventDate
	}
	if update.EventTime != nil {
		fields["event_time"] = *update.EventTime
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.RegistrationOpen != nil {
		fields["registration_open"] = *update.RegistrationOpen
	}
	if update.MaxParticipants != nil {
		fields["max_participants"] = *update.MaxParticipants
	}

	updated, err := r.events.Update(ctx, id, fields)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.events.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.events.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateRegistration(ctx context.Context, eventID, participantID uuid.UUID) (domain.EventRegistration, error) {
	created, err := r.registrations.Insert(ctx, dao.EventRegistration{
		EventID:       eventID,
		ParticipantID: participantID,
		Status:        "registered",
	})
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("r.registrations.Insert -> %w", err)
	}

	return r.registrationDaoToDomain(created), nil
}

func (r *EventRepository) FindRegistrations(ctx context.Context, eventID uuid.UUID) ([]domain.EventRegistration, error) {
	found, err := r.registrations.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.registrations.FindByEvent -> %w", err)
	}

	registrations := make([]domain.EventRegistration, 0, len(found))
	for _, reg := range found {
		registrations = append(registrations, r.registrationDaoToDomain(reg))
	}

	return registrations, nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		EventDate:        e.EventDate,
		EventTime:        e.EventTime,
		Location:         e.Location,
		Status:           e.Status,
		RegistrationOpen: e.RegistrationOpen,
		MaxParticipants:  e.MaxParticipants,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (r *EventRepository) registrationDaoToDomain(reg dao.EventRegistration) domain.EventRegistration {
	registration := domain.EventRegistration{
		ID:            reg.ID,
		EventID:       reg.EventID,
		ParticipantID: reg.ParticipantID,
		Status:        reg.Status,
		CreatedAt:     reg.CreatedAt,
	}

	if reg.Participant.ID != uuid.Nil {
		participant := domain.Participant{
			ID:        reg.Participant.ID,
			Username:  reg.Participant.Username,
			Avatar:    reg.Participant.Avatar,
			Rating:    reg.Participant.Rating,
			Wins:      reg.Participant.Wins,
			Losses:    reg.Participant.Losses,
			Draws:     reg.Participant.Draws,
			CreatedAt: reg.Participant.CreatedAt,
			UpdatedAt: reg.Participant.UpdatedAt,
		}
		registration.Participant = &participant
	}

	return registration
}
