package repository

import (
	"context"

	"github.com/sunghoyun/vulnview/internal/domain"
)

// DateGroupRepo manages the top level of the record tree.
type DateGroupRepo interface {
	// Ensure returns the group for date, creating it at the end of the
	// insertion order if it does not exist yet.
	Ensure(ctx context.Context, date string) (*domain.DateGroup, error)
	Get(ctx context.Context, date string) (*domain.DateGroup, error)
	// List returns all groups in first-seen insertion order.
	List(ctx context.Context) ([]*domain.DateGroup, error)
}

// DiagnosisRepo stores diagnosis records. Records are append-only.
type DiagnosisRepo interface {
	Create(ctx context.Context, d *domain.DiagnosisRecord) error
	GetByID(ctx context.Context, id string) (*domain.DiagnosisRecord, error)
	GetBySeq(ctx context.Context, date string, seq int) (*domain.DiagnosisRecord, error)
	// ListByDate returns the diagnoses of a date in creation order (seq ascending).
	ListByDate(ctx context.Context, date string) ([]*domain.DiagnosisRecord, error)
}

// ActionRepo stores action records. Records are append-only.
type ActionRepo interface {
	Create(ctx context.Context, a *domain.ActionRecord) error
	GetByID(ctx context.Context, id string) (*domain.ActionRecord, error)
	GetBySeq(ctx context.Context, diagnosisID string, seq int) (*domain.ActionRecord, error)
	// ListByDiagnosis returns a diagnosis's actions in creation order.
	ListByDiagnosis(ctx context.Context, diagnosisID string) ([]*domain.ActionRecord, error)
}

// RecordSequenceRepo allocates per-scope sequence numbers. Numbers start at 1,
// are strictly increasing within their scope and are never reused.
type RecordSequenceRepo interface {
	NextDiagnosisSeq(ctx context.Context, date string) (int, error)
	NextActionSeq(ctx context.Context, diagnosisID string) (int, error)
}

// CheckRepo lists the vulnerability check items seeded by migration.
type CheckRepo interface {
	List(ctx context.Context) ([]*domain.VulnCheck, error)
}
