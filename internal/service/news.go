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

const (
	defaultLatestN   = 10
	excerptRuneLimit = 200
)

var (
	ErrNewsNotFound       = repository.ErrNewsNotFound
	ErrNewsFieldsRequired = errors.New("title and content are required")
)

type NewsRepository interface {
	Create(ctx context.Context, news domain.News) (domain.News, error)
	FindPublished(ctx context.Context) ([]domain.News, error)
	FindLatest(ctx context.Context, limit int) ([]domain.News, error)
	FindAll(ctx context.Context) ([]domain.News, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.News, error)
	FindPublishedByID(ctx context.Context, id uuid.UUID) (domain.News, error)
	Update(ctx context.Context, id uuid.UUID, update domain.NewsUpdate) (domain.News, error)
	Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) (domain.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewsService struct {
	repo NewsRepository
}

func NewNewsService(repo NewsRepository) *NewsService {
	return &NewsService{
		repo: repo,
	}
}

// ListPublished is the public listing: published items only, newest
// publication first.
func (s *NewsService) ListPublished(ctx context.Context) ([]domain.News, error) {
	news, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPublished -> %w", err)
	}

	return news, nil
}

// ListAll is the administrative listing: drafts included, newest creation
// first. Callers must have passed the admin gate before selecting this mode.
func (s *NewsService) ListAll(ctx context.Context) ([]domain.News, error) {
	news, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return news, nil
}

// Latest returns the most recently published items. A non-positive limit
// falls back to 10.
func (s *NewsService) Latest(ctx context.Context, limit int) ([]domain.News, error) {
	if limit <= 0 {
		limit = defaultLatestN
	}

	news, err := s.repo.FindLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindLatest -> %w", err)
	}

	return news, nil
}

func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (domain.News, error) {
	news, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return news, nil
}

// GetPublished fetches one item for the public site; drafts read as absent.
func (s *NewsService) GetPublished(ctx context.Context, id uuid.UUID) (domain.News, error) {
	news, err := s.repo.FindPublishedByID(ctx, id)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.FindPublishedByID -> %w", err)
	}

	return news, nil
}

// Create persists a draft. A missing excerpt defaults to the first 200
// characters of the content.
func (s *NewsService) Create(ctx context.Context, news domain.News) (domain.News, error) {
	news.Title = strings.TrimSpace(news.Title)
	if news.Title == "" || strings.TrimSpace(news.Content) == "" {
		return domain.News{}, ErrNewsFieldsRequired
	}

	if news.Excerpt == "" {
		news.Excerpt = truncateRunes(news.Content, excerptRuneLimit)
	}

	created, err := s.repo.Create(ctx, news)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *NewsService) Update(ctx context.Context, id uuid.UUID, update domain.NewsUpdate) (domain.News, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return domain.News{}, ErrNewsFieldsRequired
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return domain.News{}, ErrNewsFieldsRequired
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Publish marks the item published and stamps published_at with the current
// time. Publishing an already-published item refreshes the timestamp.
func (s *NewsService) Publish(ctx context.Context, id uuid.UUID) (domain.News, error) {
	published, err := s.repo.Publish(ctx, id, time.Now())
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.Publish -> %w", err)
	}

	return published, nil
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
