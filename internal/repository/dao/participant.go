package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUsernameExists      = errors.New("username already exists")
)

type Participant struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	Username string `gorm:"unique;not null"`
	Avatar   string `gorm:"not null"`
	Rating   int    `gorm:"not null;default:1000"`
	Wins     int    `gorm:"not null;default:0"`
	Losses   int    `gorm:"not null;default:0"`
	Draws    int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		if isUsernameViolation(result.Error) {
			return Participant{}, ErrUsernameExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Order("rating DESC").
		Order("username ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// FindTop returns the limit highest-rated participants. Ties are broken by
// username so pages are reproducible.
func (d *ParticipantDAO) FindTop(ctx context.Context, limit int) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Order("rating DESC").
		Order("username ASC").
		Limit(limit).
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uuid.UUID) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

// Update applies the given columns to one row. Absent rows are reported as
// not-found rather than a silent zero-row update.
func (d *ParticipantDAO) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (Participant, error) {
	var participant Participant

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&participant, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParticipantNotFound
			}

			return err
		}

		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&participant).Updates(fields).Error; err != nil {
			if isUsernameViolation(err) {
				return ErrUsernameExists
			}

			return err
		}

		return tx.First(&participant, "id = ?", id).Error
	})
	if err != nil {
		return Participant{}, err
	}

	return participant, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func isUsernameViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_participants_username"`)
}
