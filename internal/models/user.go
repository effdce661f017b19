package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role constants
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// User represents a student known to the advisory service. Users are created
// lazily on first contact, keyed by the identifier the client supplies.
type User struct {
	ID        uuid.UUID `json:"id"`
	ExtID     string    `json:"ext_id"` // Externally supplied identifier (e.g. LMS account id)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // student, staff, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultName returns the placeholder name for a lazily created user.
func DefaultName(extID string) string {
	return fmt.Sprintf("User %s", extID)
}

// DefaultEmail returns the placeholder email for a lazily created user.
func DefaultEmail(extID string) string {
	return fmt.Sprintf("user%s@example.com", extID)
}

// IsStaff returns true if the user is staff or admin.
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}
