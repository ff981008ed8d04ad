package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/sakha-fpv/federation-api/internal/domain"
)

// DateLayout is the calendar-date wire format for event_date.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func eventStatuses() []interface{} {
	statuses := make([]interface{}, 0, len(domain.EventStatuses))
	for _, s := range domain.EventStatuses {
		statuses = append(statuses, s)
	}

	return statuses
}

type CreateEventRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	EventDate        string `json:"event_date"`
	EventTime        string `json:"event_time,omitempty"`
	Location         string `json:"location"`
	Status           string `json:"status,omitempty"`
	RegistrationOpen *bool  `json:"registration_open,omitempty"`
	MaxParticipants  *int   `json:"max_participants,omitempty"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.EventDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.EventTime, validation.Date(TimeLayout)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Status, validation.In(eventStatuses()...)),
		validation.Field(&req.MaxParticipants, validation.Min(1)),
	)
}

type UpdateEventRequest struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	EventDate        *string `json:"event_date,omitempty"`
	EventTime        *string `json:"event_time,omitempty"`
	Location         *string `json:"location,omitempty"`
	Status           *string `json:"status,omitempty"`
	RegistrationOpen *bool   `json:"registration_open,omitempty"`
	MaxParticipants  *int    `json:"max_participants,omitempty"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.EventDate, validation.Date(DateLayout)),
		validation.Field(&req.EventTime, validation.Date(TimeLayout)),
		validation.Field(&req.Location, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&req.Status, validation.In(eventStatuses()...)),
		validation.Field(&req.MaxParticipants, validation.Min(1)),
	)
}

type RegisterParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

func (req *RegisterParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantID, validation.Required, is.UUID),
	)
}
