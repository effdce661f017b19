package db

import (
	"context"

	"uniassist/internal/models"
)

// InsertRecommendation pushes an advisory to a user outside the query flow.
func (d *DB) InsertRecommendation(ctx context.Context, extID, text string) error {
	query := `
		INSERT INTO recommendations (user_id, recommendation_text)
		SELECT id, $2 FROM users WHERE ext_id = $1
	`

	_, err := d.Pool.Exec(ctx, query, extID, text)
	return err
}

// GetRecentRecommendations returns the latest pushed recommendations for a
// user, newest first.
func (d *DB) GetRecentRecommendations(ctx context.Context, extID string, limit int) ([]models.Recommendation, error) {
	query := `
		SELECT r.id, r.user_id, r.recommendation_text, r.created_at
		FROM recommendations r
		JOIN users u ON r.user_id = u.id
		WHERE u.ext_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2
	`

	rows, err := d.Pool.Query(ctx, query, extID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []models.Recommendation
	for rows.Next() {
		var r models.Recommendation
		if err := rows.Scan(&r.ID, &r.UserID, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}

	return recs, rows.Err()
}
