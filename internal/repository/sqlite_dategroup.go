package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sunghoyun/vulnview/internal/domain"
)

// SQLiteDateGroupRepo implements DateGroupRepo using a SQLite database.
type SQLiteDateGroupRepo struct {
	db *sql.DB
}

// NewSQLiteDateGroupRepo creates a new SQLiteDateGroupRepo.
func NewSQLiteDateGroupRepo(db *sql.DB) *SQLiteDateGroupRepo {
	return &SQLiteDateGroupRepo{db: db}
}

func (r *SQLiteDateGroupRepo) Ensure(ctx context.Context, date string) (*domain.DateGroup, error) {
	// Appends at the end of the insertion order; a lost race on the same
	// date is harmless because of INSERT OR IGNORE.
	query := `INSERT OR IGNORE INTO date_groups (date, position, created_at)
		SELECT ?, COALESCE(MAX(position), 0) + 1, ? FROM date_groups`
	if _, err := r.db.ExecContext(ctx, query, date, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("ensuring date group %s: %w", date, err)
	}
	return r.Get(ctx, date)
}

func (r *SQLiteDateGroupRepo) Get(ctx context.Context, date string) (*domain.DateGroup, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT date, position, created_at FROM date_groups WHERE date = ?`, date)
	return scanDateGroup(row.Scan)
}

func (r *SQLiteDateGroupRepo) List(ctx context.Context) ([]*domain.DateGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, position, created_at FROM date_groups ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing date groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.DateGroup
	for rows.Next() {
		g, err := scanDateGroup(rows.Scan)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating date groups: %w", err)
	}
	return groups, nil
}

func scanDateGroup(scan func(...any) error) (*domain.DateGroup, error) {
	var g domain.DateGroup
	var createdAtStr string
	if err := scan(&g.Date, &g.Position, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning date group: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	g.CreatedAt = createdAt
	return &g, nil
}
