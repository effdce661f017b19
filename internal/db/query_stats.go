package db

import (
	"context"

	"uniassist/internal/models"
)

// IncrementQueryStat upserts a per-subject query count by outcome.
func (d *DB) IncrementQueryStat(ctx context.Context, subject, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO query_stats (subject, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (subject, outcome) DO UPDATE
		SET count = query_stats.count + 1, last_seen_at = NOW()
	`, subject, outcome)
	return err
}

// GetAllQueryStats returns all query stat rows for metrics export.
func (d *DB) GetAllQueryStats(ctx context.Context) ([]models.QueryStat, error) {
	rows, err := d.Pool.Query(ctx, `SELECT subject, outcome, count, last_seen_at FROM query_stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.QueryStat
	for rows.Next() {
		var s models.QueryStat
		if err := rows.Scan(&s.Subject, &s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
