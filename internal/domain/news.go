package domain

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Author      string     `json:"author,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewsUpdate is a partial update. Nil fields are left untouched.
// Setting Published here does not stamp PublishedAt; only the publish
// operation does that.
type NewsUpdate struct {
	Title     *string
	Content   *string
	Excerpt   *string
	ImageURL  *string
	Author    *string
	Published *bool
}
