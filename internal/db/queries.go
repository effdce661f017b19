package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"uniassist/internal/models"
)

// InsertQuery records a processed query for the user identified by extID
// and returns the new query id.
func (d *DB) InsertQuery(ctx context.Context, extID, text string) (uuid.UUID, error) {
	query := `
		INSERT INTO queries (user_id, query_text, status)
		SELECT id, $2, $3 FROM users WHERE ext_id = $1
		RETURNING id
	`

	var id uuid.UUID
	err := d.Pool.QueryRow(ctx, query, extID, text, models.StatusProcessed).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrUserNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetQueryByID retrieves a single query row.
func (d *DB) GetQueryByID(ctx context.Context, id uuid.UUID) (*models.Query, error) {
	query := `
		SELECT id, user_id, query_text, status, created_at
		FROM queries WHERE id = $1
	`

	var q models.Query
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.UserID,
		&q.Text,
		&q.Status,
		&q.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQueryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &q, nil
}

// GetQueryCountByUser returns how many queries the user has submitted.
func (d *DB) GetQueryCountByUser(ctx context.Context, extID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM queries q
		JOIN users u ON q.user_id = u.id
		WHERE u.ext_id = $1
	`

	var count int
	err := d.Pool.QueryRow(ctx, query, extID).Scan(&count)
	return count, err
}
