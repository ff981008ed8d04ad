package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/repository"
)

const (
	defaultAvatar = "🚁"
	defaultRating = 1000
	defaultTopN   = 10
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrUsernameExists      = repository.ErrUsernameExists
	ErrUsernameRequired    = fmt.Errorf("username is required")
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindAll(ctx context.Context) ([]domain.Participant, error)
	FindTop(ctx context.Context, limit int) ([]domain.Participant, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ParticipantUpdate) (domain.Participant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParticipantService struct {
	repo ParticipantRepository
}

func NewParticipantService(repo ParticipantRepository) *ParticipantService {
	return &ParticipantService{
		repo: repo,
	}
}

func (s *ParticipantService) List(ctx context.Context) ([]domain.Participant, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

// Top returns the limit highest-rated participants with a rank injected.
// The rank is the 1-based position inside the returned page: asking for 3
// always yields ranks 1..3 no matter where those participants sit globally.
// A non-positive limit falls back to 10.
func (s *ParticipantService) Top(ctx context.Context, limit int) ([]domain.RankedParticipant, error) {
	if limit <= 0 {
		limit = defaultTopN
	}

	participants, err := s.repo.FindTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTop -> %w", err)
	}

	ranked := make([]domain.RankedParticipant, 0, len(participants))
	for i, p := range participants {
		ranked = append(ranked, domain.RankedParticipant{
			Participant: p,
			Rank:        i + 1,
		})
	}

	return ranked, nil
}

func (s *ParticipantService) Get(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

// Create persists a new participant. Unset fields take their defaults: the
// placeholder avatar and a starting rating of 1000.
func (s *ParticipantService) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	participant.Username = strings.TrimSpace(participant.Username)
	if participant.Username == "" {
		return domain.Participant{}, ErrUsernameRequired
	}

	if participant.Avatar == "" {
		participant.Avatar = defaultAvatar
	}
	if participant.Rating == 0 {
		participant.Rating = defaultRating
	}

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) Update(ctx context.Context, id uuid.UUID, update domain.ParticipantUpdate) (domain.Participant, error) {
	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if trimmed == "" {
			return domain.Participant{}, ErrUsernameRequired
		}
		update.Username = &trimmed
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ParticipantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
