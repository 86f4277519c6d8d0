package contract

import (
	"strings"

	"github.com/sunghoyun/vulnview/internal/domain"
)

// ReportPayload is the flat projection of a diagnosis or action record that
// the report view and the text exporter consume. It carries no behavior
// beyond filename derivation; building one never computes anything.
type ReportPayload struct {
	Title         string
	Kind          domain.RecordKind
	CreatedAtFull string // "2006-01-02 15:04:05"
	Text          string
	Table         [][]string
}

// DefaultFileName returns the export filename derived from the title:
// spaces become underscores and a .txt extension is appended.
func (p *ReportPayload) DefaultFileName() string {
	return strings.ReplaceAll(p.Title, " ", "_") + ".txt"
}
