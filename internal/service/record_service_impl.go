package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunghoyun/vulnview/internal/domain"
	"github.com/sunghoyun/vulnview/internal/generation"
	"github.com/sunghoyun/vulnview/internal/repository"
)

const (
	dateLayout = "2006-01-02"
)

type recordService struct {
	groups    repository.DateGroupRepo
	diagnoses repository.DiagnosisRepo
	actions   repository.ActionRepo
	sequences repository.RecordSequenceRepo
}

// NewRecordService wires a RecordService over the given repositories.
func NewRecordService(
	groups repository.DateGroupRepo,
	diagnoses repository.DiagnosisRepo,
	actions repository.ActionRepo,
	sequences repository.RecordSequenceRepo,
) RecordService {
	return &recordService{
		groups:    groups,
		diagnoses: diagnoses,
		actions:   actions,
		sequences: sequences,
	}
}

func (s *recordService) EnsureDateGroup(ctx context.Context, date string) (*domain.DateGroup, error) {
	return s.groups.Ensure(ctx, date)
}

func (s *recordService) CreateDiagnosis(ctx context.Context, now time.Time) (*domain.DiagnosisRecord, error) {
	date := now.Format(dateLayout)
	if _, err := s.groups.Ensure(ctx, date); err != nil {
		return nil, err
	}

	seq, err := s.sequences.NextDiagnosisSeq(ctx, date)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("진단%d", seq)
	content := generation.DiagnosisContent(name)
	d := &domain.DiagnosisRecord{
		ID:        uuid.New().String(),
		Date:      date,
		Seq:       seq,
		Name:      name,
		Title:     fmt.Sprintf("%s %s 리포트", date, name),
		Summary:   content.Summary,
		Table:     content.Table,
		CreatedAt: now,
	}
	if err := s.diagnoses.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *recordService) CreateAction(ctx context.Context, diagnosisID string, now time.Time) (*domain.ActionRecord, error) {
	if diagnosisID == "" {
		return nil, ErrNoSelection
	}
	parent, err := s.diagnoses.GetByID(ctx, diagnosisID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPayloadMissing
		}
		return nil, err
	}

	seq, err := s.sequences.NextActionSeq(ctx, parent.ID)
	if err != nil {
		return nil, err
	}

	// The action title captures the parent's display name as it is now;
	// it does not track later changes.
	name := fmt.Sprintf("조치%d", seq)
	content := generation.ActionContent(parent.Name, name)
	a := &domain.ActionRecord{
		ID:          uuid.New().String(),
		DiagnosisID: parent.ID,
		Seq:         seq,
		Name:        name,
		Title:       fmt.Sprintf("%s %s - %s 리포트", now.Format(dateLayout), parent.Name, name),
		Summary:     content.Summary,
		Table:       content.Table,
		CreatedAt:   now,
	}
	if err := s.actions.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *recordService) ResolveDiagnosisScope(ctx context.Context, sel domain.Selection) (*domain.DiagnosisRecord, error) {
	switch sel.Kind {
	case domain.SelectDiagnosis:
		return s.getDiagnosisStrict(ctx, sel.DiagnosisID)
	case domain.SelectAction:
		a, err := s.actions.GetByID(ctx, sel.ActionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrPayloadMissing
			}
			return nil, err
		}
		return s.getDiagnosisStrict(ctx, a.DiagnosisID)
	case domain.SelectNone, domain.SelectDate:
		return nil, ErrNoSelection
	default:
		return nil, ErrNoSelection
	}
}

func (s *recordService) getDiagnosisStrict(ctx context.Context, id string) (*domain.DiagnosisRecord, error) {
	d, err := s.diagnoses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPayloadMissing
		}
		return nil, err
	}
	return d, nil
}

func (s *recordService) GetDiagnosis(ctx context.Context, id string) (*domain.DiagnosisRecord, error) {
	return s.diagnoses.GetByID(ctx, id)
}

func (s *recordService) GetAction(ctx context.Context, id string) (*domain.ActionRecord, error) {
	return s.actions.GetByID(ctx, id)
}

func (s *recordService) ListDateGroups(ctx context.Context) ([]*domain.DateGroup, error) {
	return s.groups.List(ctx)
}

func (s *recordService) ListDiagnosesByDate(ctx context.Context, date string) ([]*domain.DiagnosisRecord, error) {
	return s.diagnoses.ListByDate(ctx, date)
}

func (s *recordService) ListActionsByDiagnosis(ctx context.Context, diagnosisID string) ([]*domain.ActionRecord, error) {
	return s.actions.ListByDiagnosis(ctx, diagnosisID)
}
