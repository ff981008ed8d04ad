package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrUsernameExists      = dao.ErrUsernameExists
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindAll(ctx context.Context) ([]dao.Participant, error)
	FindTop(ctx context.Context, limit int) ([]dao.Participant, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Participant, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (dao.Participant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, dao.Participant{
		Username: participant.Username,
		Avatar:   participant.Avatar,
		Rating:   participant.Rating,
		Wins:     participant.Wins,
		Losses:   participant.Losses,
		Draws:    participant.Draws,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]domain.Participant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, r.daoToDomain(p))
	}

	return participants, nil
}

func (r *ParticipantRepository) FindTop(ctx context.Context, limit int) ([]domain.Participant, error) {
	found, err := r.dao.FindTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTop -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, r.daoToDomain(p))
	}

	return participants, nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) Update(ctx context.Context, id uuid.UUID, update domain.ParticipantUpdate) (domain.Participant, error) {
	fields := map[string]interface{}{}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.Avatar != nil {
		fields["avatar"] = *update.Avatar
	}
	if update.Rating != nil {
		fields["rating"] = *update.Rating
	}
	if update.Wins != nil {
		fields["wins"] = *update.Wins
	}
	if update.Losses != nil {
		fields["losses"] = *update.Losses
	}
	if update.Draws != nil {
		fields["draws"] = *update.Draws
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:        p.ID,
		Username:  p.Username,
		Avatar:    p.Avatar,
		Rating:    p.Rating,
		Wins:      p.Wins,
		Losses:    p.Losses,
		Draws:     p.Draws,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
