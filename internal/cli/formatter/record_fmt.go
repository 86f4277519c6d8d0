package formatter

import (
	"fmt"
	"time"

	"github.com/sunghoyun/vulnview/internal/domain"
)

const logTimeLayout = "2006-01-02 15:04:05"

// FormatRecordLog formats a record's log panel entry: a bracketed
// creation timestamp on the first line and the record text below it.
func FormatRecordLog(createdAt time.Time, text string) string {
	return fmt.Sprintf("[%s]\n%s", createdAt.Format(logTimeLayout), text)
}

// FormatChecks formats the vulnerability check list as a styled table.
func FormatChecks(checks []*domain.VulnCheck) string {
	headers := []string{"코드", "취약점명", "상태", "결과"}
	rows := make([][]string, 0, len(checks))
	for _, c := range checks {
		rows = append(rows, []string{
			Bold(c.Code),
			StyleFg.Render(c.Name),
			CheckStatusStyle(c.Status).Render(string(c.Status)),
			StyleFg.Render(c.Result),
		})
	}
	return RenderTable(headers, rows)
}

// BuildRecordTree flattens date groups with their diagnoses and actions
// into tree items. Date groups sit at level 0, diagnoses at level 1,
// actions at level 2.
func BuildRecordTree(groups []*domain.DateGroup, diagnoses map[string][]*domain.DiagnosisRecord, actions map[string][]*domain.ActionRecord) []TreeItem {
	var items []TreeItem
	for _, g := range groups {
		items = append(items, TreeItem{Title: g.Date, Level: 0})
		ds := diagnoses[g.Date]
		for di, d := range ds {
			lastDiag := di == len(ds)-1
			items = append(items, TreeItem{
				Title:  d.Name,
				Seq:    d.Seq,
				Level:  1,
				IsLast: lastDiag,
				Badge:  KindBadge(domain.KindDiagnosis),
			})
			as := actions[d.ID]
			for ai, a := range as {
				items = append(items, TreeItem{
					Title:  a.Name,
					Seq:    a.Seq,
					Level:  2,
					IsLast: ai == len(as)-1,
					Badge:  KindBadge(domain.KindAction),
				})
			}
		}
	}
	return items
}
