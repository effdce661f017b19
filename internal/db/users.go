package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"uniassist/internal/models"
)

// EnsureUser creates a default-named user record for the external
// identifier if one does not exist yet. Idempotent: calling it again with
// the same identifier is a no-op.
func (d *DB) EnsureUser(ctx context.Context, extID string) error {
	query := `
		INSERT INTO users (ext_id, name, email, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ext_id) DO NOTHING
	`

	_, err := d.Pool.Exec(ctx, query,
		extID,
		models.DefaultName(extID),
		models.DefaultEmail(extID),
		models.RoleStudent,
	)
	return err
}

// GetUserByExtID retrieves a user by the externally supplied identifier.
func (d *DB) GetUserByExtID(ctx context.Context, extID string) (*models.User, error) {
	query := `
		SELECT id, ext_id, name, email, role, created_at, updated_at
		FROM users WHERE ext_id = $1
	`

	var user models.User
	err := d.Pool.QueryRow(ctx, query, extID).Scan(
		&user.ID,
		&user.ExtID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserCount returns the total number of users.
func (d *DB) GetUserCount(ctx context.Context) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
