package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"uniassist/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevLiterature inserts catalog records for development. Skips titles
// that already exist.
func (d *DB) SeedDevLiterature(ctx context.Context, faculty string) error {
	items := []struct {
		title   string
		author  string
		subject string
		keyword string
		year    int
		url     string
	}{
		{"Линейная алгебра и аналитическая геометрия", "Д. В. Беклемишев", "Линейная алгебра", "алгебра, матрица, вектор", 2008, "https://example.edu/lib/beklemishev"},
		{"Курс математического анализа", "Л. Д. Кудрявцев", "Математический анализ", "анализ, предел, производная", 2003, "https://example.edu/lib/kudryavtsev"},
		{"Информатика. Базовый курс", "С. В. Симонович", "Информатика", "информатика, компьютер, алгоритм", 2011, "https://example.edu/lib/simonovich"},
		{"Язык программирования Си", "Б. Керниган, Д. Ритчи", "Программирование", "программирование, си, язык", 2015, "https://example.edu/lib/kr"},
		{"Курс общей физики", "И. В. Савельев", "Физика", "физика, механика, термодинамика", 2005, "https://example.edu/lib/saveliev"},
		{"Дискретная математика для программистов", "Ф. А. Новиков", "Дискретная математика", "дискретная, граф, логика", 2009, "https://example.edu/lib/novikov"},
	}

	query := `
		INSERT INTO literature (title, author, subject, faculty, keywords, publication_year, url)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (SELECT 1 FROM literature WHERE title = $1)
	`

	for _, item := range items {
		if _, err := d.Pool.Exec(ctx, query,
			item.title, item.author, item.subject, faculty, item.keyword, item.year, item.url,
		); err != nil {
			return fmt.Errorf("failed to seed literature %q: %w", item.title, err)
		}
	}

	return nil
}
