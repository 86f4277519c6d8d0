package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sunghoyun/vulnview/internal/contract"
	"github.com/sunghoyun/vulnview/internal/domain"
	"github.com/sunghoyun/vulnview/internal/repository"
)

const fullLayout = "2006-01-02 15:04:05"

// reportTableColumns is the fixed column count of the report table layout.
const reportTableColumns = 3

type reportService struct {
	diagnoses repository.DiagnosisRepo
	actions   repository.ActionRepo
}

// NewReportService wires a ReportService over the record repositories.
func NewReportService(diagnoses repository.DiagnosisRepo, actions repository.ActionRepo) ReportService {
	return &reportService{diagnoses: diagnoses, actions: actions}
}

func (s *reportService) BuildPayload(ctx context.Context, sel domain.Selection) (*contract.ReportPayload, error) {
	switch sel.Kind {
	case domain.SelectDiagnosis:
		d, err := s.diagnoses.GetByID(ctx, sel.DiagnosisID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrPayloadMissing
			}
			return nil, err
		}
		return &contract.ReportPayload{
			Title:         d.Title,
			Kind:          d.Kind(),
			CreatedAtFull: d.CreatedAt.Format(fullLayout),
			Text:          d.Summary,
			Table:         d.Table,
		}, nil

	case domain.SelectAction:
		a, err := s.actions.GetByID(ctx, sel.ActionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrPayloadMissing
			}
			return nil, err
		}
		return &contract.ReportPayload{
			Title:         a.Title,
			Kind:          a.Kind(),
			CreatedAtFull: a.CreatedAt.Format(fullLayout),
			Text:          a.Summary,
			Table:         a.Table,
		}, nil

	case domain.SelectNone, domain.SelectDate:
		return nil, ErrNoSelection
	default:
		return nil, ErrNoSelection
	}
}

func (s *reportService) RenderText(p *contract.ReportPayload) string {
	lines := []string{
		"제목: " + p.Title,
		"종류: " + string(p.Kind),
		"생성시각: " + p.CreatedAtFull,
		"",
		"[요약]",
		p.Text,
		"",
		"[표 데이터]",
	}
	for _, row := range p.Table {
		cells := NormalizeTableRow(row)
		lines = append(lines, fmt.Sprintf("- %s | %s | %s", cells[0], cells[1], cells[2]))
	}
	return strings.Join(lines, "\n")
}

func (s *reportService) Export(p *contract.ReportPayload, path string) error {
	if err := os.WriteFile(path, []byte(s.RenderText(p)), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrExportIO, err)
	}
	return nil
}

// NormalizeTableRow pads short rows with empty cells and truncates long rows
// so every rendered row has exactly three columns.
func NormalizeTableRow(row []string) []string {
	cells := make([]string, reportTableColumns)
	copy(cells, row)
	return cells
}
