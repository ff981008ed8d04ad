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

var ErrAlreadyRegistered = errors.New("participant already registered for this event")

type EventRegistration struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	EventID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_registrations_pair"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_registrations_pair"`
	Status        string    `gorm:"not null;default:'registered'"`

	Event       Event       `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Participant Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// Insert creates a registration row. The (event, participant) uniqueness is
// enforced by the index, not by application locking, so two racing inserts
// still yield exactly one row.
func (d *RegistrationDAO) Insert(ctx context.Context, registration EventRegistration) (EventRegistration, error) {
	result := d.db.WithContext(ctx).
		Omit("Event", "Participant").
		Create(&registration)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) {
			if pgErr.Code == pgerrcode.UniqueViolation &&
				strings.Contains(pgErr.Message, `"idx_event_registrations_pair"`) {
				return EventRegistration{}, ErrAlreadyRegistered
			}
			if pgErr.Code == pgerrcode.ForeignKeyViolation {
				return EventRegistration{}, ErrParticipantNotFound
			}
		}

		return EventRegistration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]EventRegistration, error) {
	var registrations []EventRegistration

	result := d.db.WithContext(ctx).
		Preload("Participant").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}
