package service

import (
	"context"
	"time"

	"github.com/sunghoyun/vulnview/internal/contract"
	"github.com/sunghoyun/vulnview/internal/domain"
)

// RecordService owns the inspection record tree: date groups, diagnosis runs
// and their remediation actions, with per-scope sequence numbering.
type RecordService interface {
	// EnsureDateGroup returns the group for date, creating it lazily.
	EnsureDateGroup(ctx context.Context, date string) (*domain.DateGroup, error)

	// CreateDiagnosis starts a new diagnosis run at now and appends it as the
	// newest child of now's date group. The returned record should become the
	// caller's current selection.
	CreateDiagnosis(ctx context.Context, now time.Time) (*domain.DiagnosisRecord, error)

	// CreateAction appends a new action run under the given diagnosis.
	// An empty diagnosisID yields ErrNoSelection; a dangling one yields
	// ErrPayloadMissing.
	CreateAction(ctx context.Context, diagnosisID string, now time.Time) (*domain.ActionRecord, error)

	// ResolveDiagnosisScope maps a tree selection to the diagnosis it targets:
	// a diagnosis resolves to itself, an action to its parent, anything else
	// to ErrNoSelection.
	ResolveDiagnosisScope(ctx context.Context, sel domain.Selection) (*domain.DiagnosisRecord, error)

	GetDiagnosis(ctx context.Context, id string) (*domain.DiagnosisRecord, error)
	GetAction(ctx context.Context, id string) (*domain.ActionRecord, error)

	ListDateGroups(ctx context.Context) ([]*domain.DateGroup, error)
	ListDiagnosesByDate(ctx context.Context, date string) ([]*domain.DiagnosisRecord, error)
	ListActionsByDiagnosis(ctx context.Context, diagnosisID string) ([]*domain.ActionRecord, error)
}

// CheckService exposes the vulnerability check table.
type CheckService interface {
	List(ctx context.Context) ([]*domain.VulnCheck, error)
}

// ReportService projects records into report payloads and exports them.
type ReportService interface {
	// BuildPayload projects the selected record's stored attributes.
	// None/date selections yield ErrNoSelection; a selection pointing at a
	// record that no longer resolves yields ErrPayloadMissing.
	BuildPayload(ctx context.Context, sel domain.Selection) (*contract.ReportPayload, error)

	// RenderText renders the payload into the canonical multi-line report
	// layout. Identical payloads produce byte-identical output.
	RenderText(p *contract.ReportPayload) string

	// Export writes the rendered report as UTF-8 text to path.
	// I/O failures wrap ErrExportIO.
	Export(p *contract.ReportPayload, path string) error
}
