package models

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is an advisory pushed to a user outside the query flow
// (deadline reminders, curator notices). The process endpoint returns the
// most recent ones alongside the query response.
type Recommendation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"recommendation_text"`
	CreatedAt time.Time `json:"timestamp"`
}
