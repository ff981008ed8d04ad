package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventRegistration joins one participant to one event. At most one
// registration may exist per (event, participant) pair.
type EventRegistration struct {
	ID            uuid.UUID    `json:"id"`
	EventID       uuid.UUID    `json:"event_id"`
	ParticipantID uuid.UUID    `json:"participant_id"`
	Status        string       `json:"status"`
	Participant   *Participant `json:"participant,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
