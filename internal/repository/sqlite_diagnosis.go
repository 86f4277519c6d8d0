package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sunghoyun/vulnview/internal/domain"
)

// SQLiteDiagnosisRepo implements DiagnosisRepo using a SQLite database.
type SQLiteDiagnosisRepo struct {
	db *sql.DB
}

// NewSQLiteDiagnosisRepo creates a new SQLiteDiagnosisRepo.
func NewSQLiteDiagnosisRepo(db *sql.DB) *SQLiteDiagnosisRepo {
	return &SQLiteDiagnosisRepo{db: db}
}

const diagnosisColumns = `id, date, seq, name, title, summary, table_rows, created_at`

func (r *SQLiteDiagnosisRepo) Create(ctx context.Context, d *domain.DiagnosisRecord) error {
	table, err := encodeTable(d.Table)
	if err != nil {
		return err
	}
	query := `INSERT INTO diagnosis_records (` + diagnosisColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID, d.Date, d.Seq, d.Name, d.Title, d.Summary, table,
		d.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting diagnosis record: %w", err)
	}
	return nil
}

func (r *SQLiteDiagnosisRepo) GetByID(ctx context.Context, id string) (*domain.DiagnosisRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+diagnosisColumns+` FROM diagnosis_records WHERE id = ?`, id)
	return scanDiagnosis(row.Scan)
}

func (r *SQLiteDiagnosisRepo) GetBySeq(ctx context.Context, date string, seq int) (*domain.DiagnosisRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+diagnosisColumns+` FROM diagnosis_records WHERE date = ? AND seq = ?`, date, seq)
	return scanDiagnosis(row.Scan)
}

func (r *SQLiteDiagnosisRepo) ListByDate(ctx context.Context, date string) ([]*domain.DiagnosisRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+diagnosisColumns+` FROM diagnosis_records WHERE date = ? ORDER BY seq`, date)
	if err != nil {
		return nil, fmt.Errorf("listing diagnoses for %s: %w", date, err)
	}
	defer rows.Close()

	var records []*domain.DiagnosisRecord
	for rows.Next() {
		d, err := scanDiagnosis(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diagnoses: %w", err)
	}
	return records, nil
}

func scanDiagnosis(scan func(...any) error) (*domain.DiagnosisRecord, error) {
	var d domain.DiagnosisRecord
	var tableStr, createdAtStr string
	if err := scan(&d.ID, &d.Date, &d.Seq, &d.Name, &d.Title, &d.Summary, &tableStr, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning diagnosis record: %w", err)
	}

	table, err := decodeTable(tableStr)
	if err != nil {
		return nil, err
	}
	d.Table = table

	d.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &d, nil
}
