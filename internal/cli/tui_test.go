package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunghoyun/vulnview/internal/domain"
)

func TestTUI_StartsOnInspectView(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	assert.Equal(t, ViewInspect, d.ActiveViewID())
	assert.Equal(t, 1, d.StackDepth())

	view := d.View()
	assert.Contains(t, view, "취약점 항목 리스트")
	assert.Contains(t, view, "V-001")
	assert.Contains(t, view, "불필요한 서비스 비활성화")
	assert.Contains(t, view, "점검 실행 기록")
	assert.Contains(t, view, "기록이 없습니다")
}

func TestTUI_StartDiagnosisCreatesSequencedRecords(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	view := d.View()
	assert.Contains(t, view, "진단1")
	assert.Equal(t, domain.SelectDiagnosis, d.State().Selection.Kind)

	d.PressKey('s')
	view = d.View()
	assert.Contains(t, view, "진단1")
	assert.Contains(t, view, "진단2")

	// Today's date group appears exactly once.
	today := time.Now().Format("2006-01-02")
	assert.Contains(t, view, today)
}

func TestTUI_StartDiagnosisShowsLogEntry(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	view := d.View()
	assert.Contains(t, view, "진단1 더미 점검 결과입니다.")
}

func TestTUI_RunActionWithoutSelectionWarns(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('a')
	assert.True(t, d.NoticeActive())
	assert.Contains(t, d.Notice(), "트리에서 진단 또는 해당 진단 하위 조치를 먼저 선택하세요.")

	// The tree is unchanged and usable.
	d.PressKey('s')
	assert.Contains(t, d.View(), "진단1")
}

func TestTUI_RunActionUnderSelectedDiagnosis(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressKey('a')

	view := d.View()
	assert.Contains(t, view, "조치1")
	assert.Equal(t, domain.SelectAction, d.State().Selection.Kind)
	assert.Contains(t, view, "진단1에 대한 조치1 더미 실행 결과입니다.")
}

func TestTUI_RunActionFromSelectedActionUsesParentScope(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressKey('a')
	// Selection is now the action; its parent diagnosis is the scope.
	d.PressKey('a')

	view := d.View()
	assert.Contains(t, view, "조치1")
	assert.Contains(t, view, "조치2")
}

func TestTUI_DateNodeShowsHintInLogPanel(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressUp() // move from the diagnosis to its date group

	assert.Equal(t, domain.SelectDate, d.State().Selection.Kind)
	assert.Contains(t, d.View(), "날짜 노드입니다. 하위 진단/조치 항목을 선택하세요.")
}

func TestTUI_OpenReportOnDiagnosis(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressEnter()

	require.Equal(t, ViewReport, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "그래프 영역 (placeholder)")
	assert.Contains(t, view, "제목:")
	assert.Contains(t, view, "진단1 리포트")
	assert.Contains(t, view, "서버-A")

	d.PressEsc()
	assert.Equal(t, ViewInspect, d.ActiveViewID())
}

func TestTUI_OpenReportWithoutRecordsWarns(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressEnter()
	assert.Equal(t, ViewInspect, d.ActiveViewID())
	assert.True(t, d.NoticeActive())
	assert.Contains(t, d.Notice(), "리포트로 볼 진단/조치 항목을 선택하세요.")
}

func TestTUI_OpenReportOnDateNodeWarns(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressUp()
	d.PressEnter()

	assert.Equal(t, ViewInspect, d.ActiveViewID())
	assert.True(t, d.NoticeActive())
	assert.Contains(t, d.Notice(), "날짜 노드는 리포트를 표시하지 않습니다.")
}

func TestTUI_SaveReportExportsTextFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressEnter()
	require.Equal(t, ViewReport, d.ActiveViewID())

	d.PressKey('s')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.View(), "리포트 저장")

	// Accept the pre-filled default filename.
	d.PressEnter()

	// The wizard pops back to the report view with a confirmation notice.
	assert.Equal(t, ViewReport, d.ActiveViewID())
	assert.Contains(t, d.Notice(), "저장 완료")

	today := time.Now().Format("2006-01-02")
	path := filepath.Join(dir, today+"_진단1_리포트.txt")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	lines := strings.Split(content, "\n")
	assert.Equal(t, "제목: "+today+" 진단1 리포트", lines[0])
	assert.Equal(t, "종류: diagnosis", lines[1])
	assert.Contains(t, content, "[요약]")
	assert.Contains(t, content, "[표 데이터]")
	assert.Contains(t, content, "- 대상 | 서버-A | 더미")
}

func TestTUI_SaveWizardEscCancels(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('s')
	d.PressEnter()
	d.PressKey('s')
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewReport, d.ActiveViewID())
	assert.Contains(t, d.Notice(), "취소했습니다.")
}

func TestTUI_TabSwitchesPaneFocus(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	v, ok := d.appModel().activeView().(*inspectView)
	require.True(t, ok)
	assert.Equal(t, focusTree, v.focus)

	d.PressTab()
	v = d.appModel().activeView().(*inspectView)
	assert.Equal(t, focusChecks, v.focus)

	d.PressTab()
	v = d.appModel().activeView().(*inspectView)
	assert.Equal(t, focusTree, v.focus)
}

func TestTUI_QuitKeys(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d2 := NewTestDriver(t, newTestApp(t))
	d2.PressCtrlC()
	assert.True(t, d2.Quitting)
}

func TestTUI_NoticeDismissedByNextKey(t *testing.T) {
	d := NewTestDriver(t, newTestApp(t))

	d.PressKey('a')
	require.True(t, d.NoticeActive())

	d.PressKey('s')
	assert.False(t, d.NoticeActive())
	assert.Contains(t, d.View(), "진단1")
}
