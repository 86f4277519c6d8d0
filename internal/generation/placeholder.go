// Package generation builds the placeholder report content attached to new
// diagnosis and action records. Real inspection output will replace these
// builders once the scanning backend exists; everything here is fixed text.
package generation

import "fmt"

// RecordContent is the display payload generated for a new record.
type RecordContent struct {
	Summary string
	Table   [][]string
}

// DiagnosisContent returns the placeholder result payload for a diagnosis run.
func DiagnosisContent(name string) RecordContent {
	return RecordContent{
		Summary: fmt.Sprintf("%s 더미 점검 결과입니다.\n추후 실제 점검 로그/판정 결과가 표시됩니다.", name),
		Table: [][]string{
			{"대상", "서버-A", "더미"},
			{"상태", "점검완료", "placeholder"},
			{"요약", "취약점 점검 3건", "예시"},
		},
	}
}

// ActionContent returns the placeholder result payload for an action run
// under the named diagnosis.
func ActionContent(diagnosisName, actionName string) RecordContent {
	return RecordContent{
		Summary: fmt.Sprintf("%s에 대한 %s 더미 실행 결과입니다.", diagnosisName, actionName),
		Table: [][]string{
			{"조치대상", diagnosisName, "더미"},
			{"조치결과", "성공", "placeholder"},
			{"비고", actionName, "예시"},
		},
	}
}
