package models

import (
	"time"

	"github.com/google/uuid"
)

// Query status constants
const (
	StatusProcessed = "processed"
)

// Query outcome constants, used for per-subject metrics.
const (
	OutcomeAnswered   = "answered"
	OutcomeUnanswered = "unanswered"
)

// Query is the audit record of a single processed student query.
// Rows are written once during request handling and never mutated.
type Query struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"query_text"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Response is the advisory text persisted for a query. A row exists only
// when the recommendation matcher produced a non-null result.
type Response struct {
	ID        uuid.UUID `json:"id"`
	QueryID   uuid.UUID `json:"query_id"`
	Text      string    `json:"response_text"`
	CreatedAt time.Time `json:"created_at"`
}

// QueryStat is a per-(subject, outcome) hit count backing the metrics export.
type QueryStat struct {
	Subject    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
