package domain

import "time"

// DateGroup is a top-level node in the record tree, grouping every diagnosis
// run started on one calendar date. Groups are created lazily on the first
// diagnosis of their date and ordered by first appearance.
type DateGroup struct {
	Date      string // YYYY-MM-DD
	Position  int    // first-seen insertion order among groups
	CreatedAt time.Time
}

// DiagnosisRecord is one inspection run. It is immutable after creation;
// only the per-diagnosis action sequence counter (kept by the store)
// advances as child actions are added.
type DiagnosisRecord struct {
	ID        string
	Date      string // owning DateGroup
	Seq       int    // 1-based, strictly increasing per date, never reused
	Name      string // display name, e.g. "진단1"
	Title     string // report title, e.g. "2024-01-01 진단1 리포트"
	Summary   string
	Table     [][]string
	CreatedAt time.Time
}

func (d *DiagnosisRecord) Kind() RecordKind { return KindDiagnosis }

// ActionRecord is one remediation action run nested under a diagnosis.
// The tree depth is fixed: actions have no children.
type ActionRecord struct {
	ID          string
	DiagnosisID string
	Seq         int    // 1-based per parent diagnosis
	Name        string // e.g. "조치1"
	Title       string // frozen at creation, uses the parent's display name
	Summary     string
	Table       [][]string
	CreatedAt   time.Time
}

func (a *ActionRecord) Kind() RecordKind { return KindAction }

// Selection identifies the tree node the user currently has focused.
// It is a tagged variant: exactly the fields implied by Kind are set.
type Selection struct {
	Kind        SelectionKind
	Date        string // SelectDate
	DiagnosisID string // SelectDiagnosis
	ActionID    string // SelectAction
}

// NoSelection is the zero Selection, meaning nothing is focused.
var NoSelection = Selection{Kind: SelectNone}

// DateSelection selects a bare date group node.
func DateSelection(date string) Selection {
	return Selection{Kind: SelectDate, Date: date}
}

// DiagnosisSelection selects a diagnosis record node.
func DiagnosisSelection(id string) Selection {
	return Selection{Kind: SelectDiagnosis, DiagnosisID: id}
}

// ActionSelection selects an action record node.
func ActionSelection(id string) Selection {
	return Selection{Kind: SelectAction, ActionID: id}
}
