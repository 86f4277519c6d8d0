package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sunghoyun/vulnview/internal/cli/formatter"
	"github.com/sunghoyun/vulnview/internal/contract"
	"github.com/sunghoyun/vulnview/internal/service"
)

const graphPlaceholder = "그래프 영역 (placeholder)"

// reportView shows a record's report: a graph placeholder, the summary
// metadata and text, and the flat display table. 's' saves it as a text file.
type reportView struct {
	state   *SharedState
	payload *contract.ReportPayload
	vp      viewport.Model
	ready   bool
}

func newReportView(state *SharedState, payload *contract.ReportPayload) *reportView {
	return &reportView{state: state, payload: payload}
}

func (v *reportView) ID() ViewID    { return ViewReport }
func (v *reportView) Title() string { return v.payload.Title }

func (v *reportView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "저장")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "닫기")),
	}
}

func (v *reportView) Init() tea.Cmd {
	v.vp = viewport.New(v.state.Width, v.state.ContentHeight())
	v.vp.SetContent(v.renderReport())
	v.ready = true
	return nil
}

func (v *reportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if v.ready {
			v.vp.Width = msg.Width
			v.vp.Height = v.state.ContentHeight()
			v.vp.SetContent(v.renderReport())
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return v, startSaveWizard(v.state, v.payload)
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *reportView) View() string {
	if !v.ready {
		return ""
	}
	return v.vp.View()
}

// renderReport lays out the full report body. The export text layout is the
// service's concern; this rendering is for the screen only.
func (v *reportView) renderReport() string {
	p := v.payload

	graph := formatter.RenderBox("", formatter.Dim(graphPlaceholder))

	meta := strings.Join([]string{
		formatter.Bold("제목: ") + p.Title,
		formatter.Bold("종류: ") + formatter.KindBadge(p.Kind),
		formatter.Bold("생성시각: ") + p.CreatedAtFull,
	}, "\n")

	summary := formatter.Header("요약") + "\n" + p.Text

	rows := make([][]string, 0, len(p.Table))
	for _, row := range p.Table {
		rows = append(rows, service.NormalizeTableRow(row))
	}
	tableSection := formatter.Header("표 데이터") + "\n" +
		formatter.RenderTable([]string{"항목", "값", "비고"}, rows)

	return lipgloss.JoinVertical(lipgloss.Left,
		graph,
		"",
		meta,
		"",
		summary,
		"",
		tableSection,
	)
}

// startSaveWizard pushes a filename form and exports the report on completion.
func startSaveWizard(state *SharedState, payload *contract.ReportPayload) tea.Cmd {
	var path string
	form := wizardInputFileName(payload.DefaultFileName(), &path)
	return pushView(newWizardView(state, "리포트 저장", form, func() tea.Cmd {
		return func() tea.Msg {
			if err := state.App.Reports.Export(payload, path); err != nil {
				return wizardCompleteOutput("\n  " +
					formatter.StyleRed.Render("저장 실패: " + err.Error()))
			}
			return wizardCompleteOutput("\n  " +
				formatter.StyleGreen.Render("✔ 저장 완료") + "\n  " +
				formatter.Dim("리포트를 저장했습니다. "+path))
		}
	}))
}
