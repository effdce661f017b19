package db

import (
	"context"

	"github.com/google/uuid"

	"uniassist/internal/models"
)

// InsertResponse records the advisory text produced for a query.
func (d *DB) InsertResponse(ctx context.Context, queryID uuid.UUID, text string) error {
	query := `
		INSERT INTO responses (query_id, response_text)
		VALUES ($1, $2)
	`

	_, err := d.Pool.Exec(ctx, query, queryID, text)
	return err
}

// GetRecentResponses returns the latest advisory responses produced for the
// user's queries, newest first.
func (d *DB) GetRecentResponses(ctx context.Context, extID string, limit int) ([]models.Response, error) {
	query := `
		SELECT r.id, r.query_id, r.response_text, r.created_at
		FROM responses r
		JOIN queries q ON r.query_id = q.id
		JOIN users u ON q.user_id = u.id
		WHERE u.ext_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2
	`

	rows, err := d.Pool.Query(ctx, query, extID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []models.Response
	for rows.Next() {
		var r models.Response
		if err := rows.Scan(&r.ID, &r.QueryID, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}

	return responses, rows.Err()
}
