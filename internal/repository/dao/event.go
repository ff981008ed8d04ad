package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	Title       string `gorm:"not null"`
	Description string

	EventDate time.Time `gorm:"type:date;not null"`
	// Stored as "HH:MM" text. The source kept date and time-of-day apart.
	EventTime string `gorm:"size:8"`

	Location         string `gorm:"not null"`
	Status           string `gorm:"not null;default:'preparation'"`
	RegistrationOpen bool   `gorm:"not null;default:false"`
	MaxParticipants  *int

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("event_date ASC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// FindUpcoming returns events happening today or later, soonest first.
func (d *EventDAO) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("event_date >= ?", from.Format("2006-01-02")).
		Order("event_date ASC").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uuid.UUID) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (Event, error) {
	var event Event

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&event).Updates(fields).Error; err != nil {
			return err
		}

		return tx.First(&event, "id = ?", id).Error
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
