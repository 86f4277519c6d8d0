package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sunghoyun/vulnview/internal/domain"
)

// SQLiteActionRepo implements ActionRepo using a SQLite database.
type SQLiteActionRepo struct {
	db *sql.DB
}

// NewSQLiteActionRepo creates a new SQLiteActionRepo.
func NewSQLiteActionRepo(db *sql.DB) *SQLiteActionRepo {
	return &SQLiteActionRepo{db: db}
}

const actionColumns = `id, diagnosis_id, seq, name, title, summary, table_rows, created_at`

func (r *SQLiteActionRepo) Create(ctx context.Context, a *domain.ActionRecord) error {
	table, err := encodeTable(a.Table)
	if err != nil {
		return err
	}
	query := `INSERT INTO action_records (` + actionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.DiagnosisID, a.Seq, a.Name, a.Title, a.Summary, table,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting action record: %w", err)
	}
	return nil
}

func (r *SQLiteActionRepo) GetByID(ctx context.Context, id string) (*domain.ActionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+actionColumns+` FROM action_records WHERE id = ?`, id)
	return scanAction(row.Scan)
}

func (r *SQLiteActionRepo) GetBySeq(ctx context.Context, diagnosisID string, seq int) (*domain.ActionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+actionColumns+` FROM action_records WHERE diagnosis_id = ? AND seq = ?`, diagnosisID, seq)
	return scanAction(row.Scan)
}

func (r *SQLiteActionRepo) ListByDiagnosis(ctx context.Context, diagnosisID string) ([]*domain.ActionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+actionColumns+` FROM action_records WHERE diagnosis_id = ? ORDER BY seq`, diagnosisID)
	if err != nil {
		return nil, fmt.Errorf("listing actions for diagnosis %s: %w", diagnosisID, err)
	}
	defer rows.Close()

	var records []*domain.ActionRecord
	for rows.Next() {
		a, err := scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actions: %w", err)
	}
	return records, nil
}

func scanAction(scan func(...any) error) (*domain.ActionRecord, error) {
	var a domain.ActionRecord
	var tableStr, createdAtStr string
	if err := scan(&a.ID, &a.DiagnosisID, &a.Seq, &a.Name, &a.Title, &a.Summary, &tableStr, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning action record: %w", err)
	}

	table, err := decodeTable(tableStr)
	if err != nil {
		return nil, err
	}
	a.Table = table

	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
