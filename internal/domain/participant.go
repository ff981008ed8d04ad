package domain

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Rating    int       `json:"rating"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Draws     int       `json:"draws"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RankedParticipant carries the 1-based position of a participant within one
// size-limited leaderboard page. The rank is relative to the returned page,
// not to the full table.
type RankedParticipant struct {
	Participant
	Rank int `json:"rank"`
}

// ParticipantUpdate is a partial update. Nil fields are left untouched.
type ParticipantUpdate struct {
	Username *string
	Avatar   *string
	Rating   *int
	Wins     *int
	Losses   *int
	Draws    *int
}
