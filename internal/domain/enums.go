package domain

// RecordKind distinguishes the two record types that carry a report payload.
type RecordKind string

const (
	KindDiagnosis RecordKind = "diagnosis"
	KindAction    RecordKind = "action"
)

// SelectionKind tags the variant held by a Selection.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectDate
	SelectDiagnosis
	SelectAction
)

// CheckStatus is the display status of a vulnerability check item.
type CheckStatus string

const (
	CheckPending CheckStatus = "대기"
	CheckDone    CheckStatus = "점검완료"
)
