package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateParticipantRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Rating   *int   `json:"rating,omitempty"`
	Wins     *int   `json:"wins,omitempty"`
	Losses   *int   `json:"losses,omitempty"`
	Draws    *int   `json:"draws,omitempty"`
}

func (req *CreateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Avatar, validation.Length(0, 16)),
		validation.Field(&req.Rating, validation.Min(0)),
		validation.Field(&req.Wins, validation.Min(0)),
		validation.Field(&req.Losses, validation.Min(0)),
		validation.Field(&req.Draws, validation.Min(0)),
	)
}

type UpdateParticipantRequest struct {
	Username *string `json:"username,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Wins     *int    `json:"wins,omitempty"`
	Losses   *int    `json:"losses,omitempty"`
	Draws    *int    `json:"draws,omitempty"`
}

func (req *UpdateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&req.Avatar, validation.Length(0, 16)),
		validation.Field(&req.Rating, validation.Min(0)),
		validation.Field(&req.Wins, validation.Min(0)),
		validation.Field(&req.Losses, validation.Min(0)),
		validation.Field(&req.Draws, validation.Min(0)),
	)
}
