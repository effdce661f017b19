package models

import (
	"time"

	"github.com/google/uuid"
)

// Literature URL health status constants
const (
	URLHealthy   = "healthy"
	URLUnhealthy = "unhealthy"
	URLUnknown   = "unknown"
)

// Literature is a catalog record from the university library. The query
// pipeline only reads these rows; the catalog is maintained elsewhere.
type Literature struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Subject         string     `json:"subject"`
	Faculty         string     `json:"faculty"`
	Keywords        string     `json:"keywords"` // Comma-separated search terms
	PublicationYear int        `json:"publication_year"`
	URL             string     `json:"url"`
	URLStatus       string     `json:"url_status"`
	URLCheckedAt    *time.Time `json:"url_checked_at"`
	URLError        *string    `json:"url_error"`
	CreatedAt       time.Time  `json:"created_at"`
}
