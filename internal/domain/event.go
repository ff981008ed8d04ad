package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventStatusPreparation      = "preparation"
	EventStatusRegistrationOpen = "registration_open"
	EventStatusOngoing          = "ongoing"
	EventStatusCompleted        = "completed"
	EventStatusCancelled        = "cancelled"
)

// EventStatuses lists every status an event may hold.
var EventStatuses = []string{
	EventStatusPreparation,
	EventStatusRegistrationOpen,
	EventStatusOngoing,
	EventStatusCompleted,
	EventStatusCancelled,
}

// IsValidEventStatus reports whether s is one of EventStatuses.
func IsValidEventStatus(s string) bool {
	for _, known := range EventStatuses {
		if s == known {
			return true
		}
	}

	return false
}

type Event struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	EventDate        time.Time `json:"event_date"`
	EventTime        string    `json:"event_time,omitempty"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	RegistrationOpen bool      `json:"registration_open"`
	MaxParticipants  *int      `json:"max_participants,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EventUpdate is a partial update. Nil fields are left untouched.
// Status and RegistrationOpen are independent fields; nothing keeps them
// consistent with each other.
type EventUpdate struct {
	Title            *string
	Description      *string
	EventDate        *time.Time
	EventTime        *string
	Location         *string
	Status           *string
	RegistrationOpen *bool
	MaxParticipants  *int
}
