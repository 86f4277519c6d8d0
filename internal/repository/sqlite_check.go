package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sunghoyun/vulnview/internal/domain"
)

// SQLiteCheckRepo implements CheckRepo over the seeded vuln_checks table.
type SQLiteCheckRepo struct {
	db *sql.DB
}

// NewSQLiteCheckRepo creates a new SQLiteCheckRepo.
func NewSQLiteCheckRepo(db *sql.DB) *SQLiteCheckRepo {
	return &SQLiteCheckRepo{db: db}
}

func (r *SQLiteCheckRepo) List(ctx context.Context) ([]*domain.VulnCheck, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code, name, status, result, order_index FROM vuln_checks ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("listing vulnerability checks: %w", err)
	}
	defer rows.Close()

	var checks []*domain.VulnCheck
	for rows.Next() {
		var c domain.VulnCheck
		var status string
		if err := rows.Scan(&c.Code, &c.Name, &status, &c.Result, &c.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning vulnerability check: %w", err)
		}
		c.Status = domain.CheckStatus(status)
		checks = append(checks, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vulnerability checks: %w", err)
	}
	return checks, nil
}
