package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateNewsRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Author    string `json:"author,omitempty"`
	Published *bool  `json:"published,omitempty"`
}

func (req *CreateNewsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.ImageURL, is.URL),
	)
}

type UpdateNewsRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	Author    *string `json:"author,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func (req *UpdateNewsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&req.Content, validation.NilOrNotEmpty),
		validation.Field(&req.ImageURL, is.URL),
	)
}
