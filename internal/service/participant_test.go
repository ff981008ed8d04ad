package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/repository"
)

type fakeParticipantRepo struct {
	participants map[uuid.UUID]domain.Participant
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{
		participants: make(map[uuid.UUID]domain.Participant),
	}
}

func (f *fakeParticipantRepo) Create(_ context.Context, participant domain.Participant) (domain.Participant, error) {
	for _, existing := range f.participants {
		if existing.Username == participant.Username {
			return domain.Participant{}, repository.ErrUsernameExists
		}
	}

	participant.ID = uuid.New()
	f.participants[participant.ID] = participant

	return participant, nil
}

func (f *fakeParticipantRepo) FindAll(_ context.Context) ([]domain.Participant, error) {
	return f.sorted(), nil
}

func (f *fakeParticipantRepo) FindTop(_ context.Context, limit int) ([]domain.Participant, error) {
	all := f.sorted()
	if limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (f *fakeParticipantRepo) FindByID(_ context.Context, id uuid.UUID) (domain.Participant, error) {
	participant, ok := f.participants[id]
	if !ok {
		return domain.Participant{}, repository.ErrParticipantNotFound
	}

	return participant, nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, id uuid.UUID, update domain.ParticipantUpdate) (domain.Participant, error) {
	participant, ok := f.participants[id]
	if !ok {
		return domain.Participant{}, repository.ErrParticipantNotFound
	}

	if update.Username != nil {
		participant.Username = *update.Username
	}
	if update.Avatar != nil {
		participant.Avatar = *update.Avatar
	}
	if update.Rating != nil {
		participant.Rating = *update.Rating
	}
	if update.Wins != nil {
		participant.Wins = *update.Wins
	}
	if update.Losses != nil {
		participant.Losses = *update.Losses
	}
	if update.Draws != nil {
		participant.Draws = *update.Draws
	}
	f.participants[id] = participant

	return participant, nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.participants[id]; !ok {
		return repository.ErrParticipantNotFound
	}
	delete(f.participants, id)

	return nil
}

func (f *fakeParticipantRepo) sorted() []domain.Participant {
	all := make([]domain.Participant, 0, len(f.participants))
	for _, p := range f.participants {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Rating != all[j].Rating {
			return all[i].Rating > all[j].Rating
		}

		return all[i].Username < all[j].Username
	})

	return all
}

func TestParticipantService_Create_Defaults(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	created, err := svc.Create(context.Background(), domain.Participant{Username: "  pilot-one  "})
	require.NoError(t, err)

	assert.Equal(t, "pilot-one", created.Username)
	assert.Equal(t, "🚁", created.Avatar)
	assert.Equal(t, 1000, created.Rating)
	assert.Zero(t, created.Wins)
}

func TestParticipantService_Create_KeepsExplicitFields(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	created, err := svc.Create(context.Background(), domain.Participant{
		Username: "pilot-two",
		Avatar:   "🦅",
		Rating:   1450,
		Wins:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, "🦅", created.Avatar)
	assert.Equal(t, 1450, created.Rating)
	assert.Equal(t, 3, created.Wins)
}

func TestParticipantService_Create_UsernameRequired(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	_, err := svc.Create(context.Background(), domain.Participant{Username: "   "})
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestParticipantService_Create_DuplicateUsername(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	_, err := svc.Create(context.Background(), domain.Participant{Username: "pilot-one"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.Participant{Username: "pilot-one"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestParticipantService_Top_RanksWithinPage(t *testing.T) {
	repo := newFakeParticipantRepo()
	svc := NewParticipantService(repo)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), domain.Participant{
			Username: fmt.Sprintf("pilot-%d", i),
			Rating:   1100 + i*50,
		})
		require.NoError(t, err)
	}

	ranked, err := svc.Top(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "pilot-4", ranked[0].Username)
	assert.Equal(t, 1300, ranked[0].Rating)
	assert.True(t, ranked[0].Rating >= ranked[1].Rating)
	assert.True(t, ranked[1].Rating >= ranked[2].Rating)
}

func TestParticipantService_Top_DefaultLimit(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	for i := 0; i < 12; i++ {
		_, err := svc.Create(context.Background(), domain.Participant{
			Username: fmt.Sprintf("pilot-%02d", i),
			Rating:   1000 + i,
		})
		require.NoError(t, err)
	}

	for _, limit := range []int{0, -5} {
		ranked, err := svc.Top(context.Background(), limit)
		require.NoError(t, err)
		assert.Len(t, ranked, 10)
	}
}

func TestParticipantService_Top_TieBrokenByUsername(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	for _, username := range []string{"zulu", "alpha", "mike"} {
		_, err := svc.Create(context.Background(), domain.Participant{Username: username, Rating: 1200})
		require.NoError(t, err)
	}

	ranked, err := svc.Top(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "alpha", ranked[0].Username)
	assert.Equal(t, "mike", ranked[1].Username)
	assert.Equal(t, "zulu", ranked[2].Username)
}

func TestParticipantService_Update(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	created, err := svc.Create(context.Background(), domain.Participant{Username: "pilot-one"})
	require.NoError(t, err)

	rating := 1337
	updated, err := svc.Update(context.Background(), created.ID, domain.ParticipantUpdate{Rating: &rating})
	require.NoError(t, err)

	assert.Equal(t, 1337, updated.Rating)
	assert.Equal(t, "pilot-one", updated.Username)
	assert.Equal(t, "🚁", updated.Avatar)
}

func TestParticipantService_Update_EmptyUsername(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	created, err := svc.Create(context.Background(), domain.Participant{Username: "pilot-one"})
	require.NoError(t, err)

	empty := "  "
	_, err = svc.Update(context.Background(), created.ID, domain.ParticipantUpdate{Username: &empty})
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

func TestParticipantService_Update_NotFound(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	username := "ghost"
	_, err := svc.Update(context.Background(), uuid.New(), domain.ParticipantUpdate{Username: &username})
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantService_Delete_Twice(t *testing.T) {
	svc := NewParticipantService(newFakeParticipantRepo())

	created, err := svc.Create(context.Background(), domain.Participant{Username: "pilot-one"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrParticipantNotFound)
}
