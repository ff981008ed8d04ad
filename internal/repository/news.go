package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/repository/dao"
)

var ErrNewsNotFound = dao.ErrNewsNotFound

type NewsDAO interface {
	Insert(ctx context.Context, news dao.News) (dao.News, error)
	FindPublished(ctx context.Context) ([]dao.News, error)
	FindLatest(ctx context.Context, limit int) ([]dao.News, error)
	FindAll(ctx context.Context) ([]dao.News, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.News, error)
	FindPublishedByID(ctx context.Context, id uuid.UUID) (dao.News, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (dao.News, error)
	Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) (dao.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewsRepository struct {
	dao NewsDAO
}

func NewNewsRepository(dao NewsDAO) *NewsRepository {
	return &NewsRepository{
		dao: dao,
	}
}

func (r *NewsRepository) Create(ctx context.Context, news domain.News) (domain.News, error) {
	created, err := r.dao.Insert(ctx, dao.News{
		Title:     news.Title,
		Content:   news.Content,
		Excerpt:   news.Excerpt,
		ImageURL:  news.ImageURL,
		Author:    news.Author,
		Published: news.Published,
	})
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NewsRepository) FindPublished(ctx context.Context) ([]domain.News, error) {
	found, err := r.dao.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPublished -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *NewsRepository) FindLatest(ctx context.Context, limit int) ([]domain.News, error) {
	found, err := r.dao.FindLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLatest -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *NewsRepository) FindAll(ctx context.Context) ([]domain.News, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.News, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *NewsRepository) FindPublishedByID(ctx context.Context, id uuid.UUID) (domain.News, error) {
	found, err := r.dao.FindPublishedByID(ctx, id)
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.FindPublishedByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *NewsRepository) Update(ctx context.Context, id uuid.UUID, update domain.NewsUpdate) (domain.News, error) {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Excerpt != nil {
		fields["excerpt"] = *update.Excerpt
	}
	if update.ImageURL != nil {
		fields["image_url"] = *update.ImageURL
	}
	if update.Author != nil {
		fields["author"] = *update.Author
	}
	if update.Published != nil {
		fields["published"] = *update.Published
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *NewsRepository) Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) (domain.News, error) {
	published, err := r.dao.Publish(ctx, id, publishedAt)
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.Publish -> %w", err)
	}

	return r.daoToDomain(published), nil
}

func (r *NewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *NewsRepository) daoToDomain(n dao.News) domain.News {
	return domain.News{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Excerpt:     n.Excerpt,
		ImageURL:    n.ImageURL,
		Author:      n.Author,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (r *NewsRepository) daoToDomainSlice(found []dao.News) []domain.News {
	news := make([]domain.News, 0, len(found))
	for _, n := range found {
		news = append(news, r.daoToDomain(n))
	}

	return news
}
