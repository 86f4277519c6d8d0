package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sunghoyun/vulnview/internal/domain"
)

// At parses a "2006-01-02 15:04:05" timestamp for deterministic record clocks.
// Panics on malformed input; fixtures are compile-time constants in tests.
func At(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTestDiagnosis builds a minimal diagnosis record for repository tests.
// Service-level tests should create records through the service instead.
func NewTestDiagnosis(date string, seq int) *domain.DiagnosisRecord {
	name := fmt.Sprintf("진단%d", seq)
	return &domain.DiagnosisRecord{
		ID:        uuid.New().String(),
		Date:      date,
		Seq:       seq,
		Name:      name,
		Title:     fmt.Sprintf("%s %s 리포트", date, name),
		Summary:   name + " 테스트 요약",
		Table:     [][]string{{"대상", "서버-A", "더미"}},
		CreatedAt: At(date + " 09:00:00"),
	}
}

// NewTestAction builds a minimal action record under the given diagnosis.
func NewTestAction(d *domain.DiagnosisRecord, seq int) *domain.ActionRecord {
	name := fmt.Sprintf("조치%d", seq)
	return &domain.ActionRecord{
		ID:          uuid.New().String(),
		DiagnosisID: d.ID,
		Seq:         seq,
		Name:        name,
		Title:       fmt.Sprintf("%s %s - %s 리포트", d.Date, d.Name, name),
		Summary:     fmt.Sprintf("%s에 대한 %s 테스트 요약", d.Name, name),
		Table:       [][]string{{"조치대상", d.Name, "더미"}},
		CreatedAt:   d.CreatedAt.Add(time.Duration(seq) * time.Minute),
	}
}
