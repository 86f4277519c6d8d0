package repository

import (
	"context"
	"fmt"

	"github.com/sunghoyun/vulnview/internal/db"
)

// Sequence scope kinds stored in record_sequences.
const (
	scopeDate      = "date"
	scopeDiagnosis = "diagnosis"
)

// SQLiteRecordSequenceRepo allocates per-scope record sequence numbers
// using the record_sequences table. Allocation is atomic, so numbers are
// strictly increasing and never reused even across interleaved callers.
type SQLiteRecordSequenceRepo struct {
	db db.DBTX
}

// NewSQLiteRecordSequenceRepo creates a new SQLiteRecordSequenceRepo.
func NewSQLiteRecordSequenceRepo(conn db.DBTX) *SQLiteRecordSequenceRepo {
	return &SQLiteRecordSequenceRepo{db: conn}
}

// NextDiagnosisSeq returns the next diagnosis number for a date, starting at 1.
func (r *SQLiteRecordSequenceRepo) NextDiagnosisSeq(ctx context.Context, date string) (int, error) {
	seedQuery := `INSERT OR IGNORE INTO record_sequences (scope_kind, scope_id, next_seq)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1
		FROM diagnosis_records WHERE date = ?`
	if _, err := r.db.ExecContext(ctx, seedQuery, scopeDate, date, date); err != nil {
		return 0, fmt.Errorf("seeding diagnosis sequence for %s: %w", date, err)
	}
	return r.allocate(ctx, scopeDate, date)
}

// NextActionSeq returns the next action number for a diagnosis, starting at 1.
func (r *SQLiteRecordSequenceRepo) NextActionSeq(ctx context.Context, diagnosisID string) (int, error) {
	seedQuery := `INSERT OR IGNORE INTO record_sequences (scope_kind, scope_id, next_seq)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1
		FROM action_records WHERE diagnosis_id = ?`
	if _, err := r.db.ExecContext(ctx, seedQuery, scopeDiagnosis, diagnosisID, diagnosisID); err != nil {
		return 0, fmt.Errorf("seeding action sequence for diagnosis %s: %w", diagnosisID, err)
	}
	return r.allocate(ctx, scopeDiagnosis, diagnosisID)
}

func (r *SQLiteRecordSequenceRepo) allocate(ctx context.Context, kind, id string) (int, error) {
	var next int
	allocQuery := `UPDATE record_sequences
		SET next_seq = next_seq + 1
		WHERE scope_kind = ? AND scope_id = ?
		RETURNING next_seq - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, kind, id).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating %s sequence for %s: %w", kind, id, err)
	}
	return next, nil
}
