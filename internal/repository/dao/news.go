package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news not found")

type News struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	Title    string `gorm:"not null"`
	Content  string `gorm:"type:text;not null"`
	Excerpt  string
	ImageURL string
	Author   string

	Published   bool `gorm:"not null;default:false"`
	PublishedAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type NewsDAO struct {
	db *gorm.DB
}

func NewNewsDAO(db *gorm.DB) *NewsDAO {
	return &NewsDAO{
		db: db,
	}
}

func (d *NewsDAO) Insert(ctx context.Context, news News) (News, error) {
	result := d.db.WithContext(ctx).Create(&news)
	if result.Error != nil {
		return News{}, result.Error
	}

	return news, nil
}

func (d *NewsDAO) FindPublished(ctx context.Context) ([]News, error) {
	var news []News

	result := d.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&news)
	if result.Error != nil {
		return nil, result.Error
	}

	return news, nil
}

func (d *NewsDAO) FindLatest(ctx context.Context, limit int) ([]News, error) {
	var news []News

	result := d.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Limit(limit).
		Find(&news)
	if result.Error != nil {
		return nil, result.Error
	}

	return news, nil
}

// FindAll includes unpublished drafts. Reserved for the admin console.
func (d *NewsDAO) FindAll(ctx context.Context) ([]News, error) {
	var news []News

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&news)
	if result.Error != nil {
		return nil, result.Error
	}

	return news, nil
}

func (d *NewsDAO) FindByID(ctx context.Context, id uuid.UUID) (News, error) {
	var news News

	result := d.db.WithContext(ctx).First(&news, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return News{}, ErrNewsNotFound
		}

		return News{}, result.Error
	}

	return news, nil
}

func (d *NewsDAO) FindPublishedByID(ctx context.Context, id uuid.UUID) (News, error) {
	var news News

	result := d.db.WithContext(ctx).First(&news, "id = ? AND published = ?", id, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return News{}, ErrNewsNotFound
		}

		return News{}, result.Error
	}

	return news, nil
}

func (d *NewsDAO) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (News, error) {
	var news News

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&news, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNewsNotFound
			}

			return err
		}

		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&news).Updates(fields).Error; err != nil {
			return err
		}

		return tx.First(&news, "id = ?", id).Error
	})
	if err != nil {
		return News{}, err
	}

	return news, nil
}

// Publish marks the item published and stamps published_at with now. Calling
// it again refreshes the timestamp; there is no guard against that.
func (d *NewsDAO) Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) (News, error) {
	return d.Update(ctx, id, map[string]interface{}{
		"published":    true,
		"published_at": publishedAt,
	})
}

func (d *NewsDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&News{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}

	return nil
}
