package db

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"uniassist/internal/models"
)

// literatureColumns is the standard column list for literature queries.
const literatureColumns = `id, title, author, subject, faculty, keywords, publication_year, url,
	url_status, url_checked_at, url_error, created_at`

// scanLiterature scans a row into a Literature struct.
func scanLiterature(row pgx.Row) (*models.Literature, error) {
	var item models.Literature
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Author,
		&item.Subject,
		&item.Faculty,
		&item.Keywords,
		&item.PublicationYear,
		&item.URL,
		&item.URLStatus,
		&item.URLCheckedAt,
		&item.URLError,
		&item.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLiteratureNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// scanLiteratureRows scans multiple rows into a slice of Literature.
func scanLiteratureRows(rows pgx.Rows) ([]models.Literature, error) {
	defer rows.Close()

	var items []models.Literature
	for rows.Next() {
		var item models.Literature
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Author,
			&item.Subject,
			&item.Faculty,
			&item.Keywords,
			&item.PublicationYear,
			&item.URL,
			&item.URLStatus,
			&item.URLCheckedAt,
			&item.URLError,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CreateLiterature inserts a catalog record.
func (d *DB) CreateLiterature(ctx context.Context, item *models.Literature) error {
	query := `
		INSERT INTO literature (title, author, subject, faculty, keywords, publication_year, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, url_status, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		item.Title,
		item.Author,
		item.Subject,
		item.Faculty,
		item.Keywords,
		item.PublicationYear,
		item.URL,
	).Scan(&item.ID, &item.URLStatus, &item.CreatedAt)
}

// GetLiteratureByID retrieves a single catalog record.
func (d *DB) GetLiteratureByID(ctx context.Context, id uuid.UUID) (*models.Literature, error) {
	query := `SELECT ` + literatureColumns + ` FROM literature WHERE id = $1`
	return scanLiterature(d.Pool.QueryRow(ctx, query, id))
}

// SearchLiterature finds catalog records within one faculty whose keywords
// column contains any of the given keywords, or whose subject column
// contains any of the given related subjects (case-insensitive substring
// match). With no keywords and no subjects it returns nothing without
// touching the table. Rows come back in the table's natural order.
func (d *DB) SearchLiterature(ctx context.Context, faculty string, keywords, subjects []string) ([]models.Literature, error) {
	if len(keywords) == 0 && len(subjects) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + literatureColumns + ` FROM literature WHERE faculty = $1 AND (`)

	args := []any{faculty}
	var conditions []string
	for _, kw := range keywords {
		args = append(args, kw)
		conditions = append(conditions, "keywords ILIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}
	for _, subj := range subjects {
		args = append(args, subj)
		conditions = append(conditions, "subject ILIKE '%' || $"+strconv.Itoa(len(args))+" || '%'")
	}
	sb.WriteString(strings.Join(conditions, " OR "))
	sb.WriteString(")")

	rows, err := d.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}

	return scanLiteratureRows(rows)
}

// GetLiteratureNeedingURLCheck returns records whose URL has not been
// checked within maxAge, oldest first.
func (d *DB) GetLiteratureNeedingURLCheck(ctx context.Context, maxAge time.Duration, limit int) ([]models.Literature, error) {
	query := `
		SELECT ` + literatureColumns + `
		FROM literature
		WHERE url != '' AND (url_checked_at IS NULL OR url_checked_at < NOW() - make_interval(secs => $1))
		ORDER BY url_checked_at ASC NULLS FIRST
		LIMIT $2
	`

	rows, err := d.Pool.Query(ctx, query, maxAge.Seconds(), limit)
	if err != nil {
		return nil, err
	}

	return scanLiteratureRows(rows)
}

// UpdateLiteratureURLStatus records the outcome of a URL health check.
func (d *DB) UpdateLiteratureURLStatus(ctx context.Context, id uuid.UUID, status string, urlError *string) error {
	query := `
		UPDATE literature
		SET url_status = $1, url_checked_at = NOW(), url_error = $2
		WHERE id = $3
	`
	_, err := d.Pool.Exec(ctx, query, status, urlError, id)
	return err
}
