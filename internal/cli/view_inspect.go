package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sunghoyun/vulnview/internal/cli/formatter"
	"github.com/sunghoyun/vulnview/internal/domain"
)

const (
	logPlaceholder  = "항목을 선택하면 로그/결과가 표시됩니다."
	logDateNodeHint = "날짜 노드입니다. 하위 진단/조치 항목을 선택하세요."

	warnSelectDiagnosis = "트리에서 진단 또는 해당 진단 하위 조치를 먼저 선택하세요."
	warnSelectForReport = "리포트로 볼 진단/조치 항목을 선택하세요."
	warnDateNodeReport  = "날짜 노드는 리포트를 표시하지 않습니다."
)

// inspectFocus identifies which pane of the inspection screen has key focus.
type inspectFocus int

const (
	focusChecks inspectFocus = iota
	focusTree
)

// recordRow is a flattened row in the record tree pane.
type recordRow struct {
	sel       domain.Selection
	title     string
	seq       int
	level     int
	isLast    bool
	createdAt time.Time
	logText   string
}

// inspectLoadedMsg signals that check and record data has been loaded.
// focus, when non-zero, names the row the cursor should move to.
type inspectLoadedMsg struct {
	checks []*domain.VulnCheck
	rows   []recordRow
	focus  domain.Selection
	err    error
}

// inspectView is the home screen: vulnerability checks on the left,
// the record tree and log panel on the right.
type inspectView struct {
	state      *SharedState
	checks     table.Model
	checkCount int
	rows       []recordRow
	cursor     int
	focus      inspectFocus
	loading    bool
	err        error
}

func newInspectView(state *SharedState) *inspectView {
	cols := []table.Column{
		{Title: "코드", Width: 7},
		{Title: "취약점명", Width: 26},
		{Title: "상태", Width: 8},
		{Title: "결과", Width: 6},
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(false),
		table.WithHeight(8),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Foreground(formatter.ColorHeader).Bold(true)
	st.Selected = st.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorDim)
	t.SetStyles(st)

	return &inspectView{
		state:   state,
		checks:  t,
		focus:   focusTree,
		loading: true,
	}
}

func (v *inspectView) ID() ViewID    { return ViewInspect }
func (v *inspectView) Title() string { return "점검" }

func (v *inspectView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "점검 시작")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "조치 실행")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "리포트 보기")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane")),
	}
}

func (v *inspectView) Init() tea.Cmd {
	return v.load(domain.NoSelection)
}

// load reloads checks and the record tree. focus names the row the cursor
// should land on after the reload (the freshly created record).
func (v *inspectView) load(focus domain.Selection) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		checks, err := app.Checks.List(ctx)
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		rows, err := buildRecordRows(ctx, app)
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		return inspectLoadedMsg{checks: checks, rows: rows, focus: focus}
	}
}

// buildRecordRows flattens the record tree into navigable rows: date groups
// at level 0, diagnoses at level 1, actions at level 2, insertion order
// throughout.
func buildRecordRows(ctx context.Context, app *App) ([]recordRow, error) {
	groups, err := app.Records.ListDateGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing date groups: %w", err)
	}

	var rows []recordRow
	for _, g := range groups {
		rows = append(rows, recordRow{
			sel:     domain.DateSelection(g.Date),
			title:   g.Date,
			level:   0,
			logText: logDateNodeHint,
		})

		diags, err := app.Records.ListDiagnosesByDate(ctx, g.Date)
		if err != nil {
			return nil, fmt.Errorf("listing diagnoses for %s: %w", g.Date, err)
		}
		for di, d := range diags {
			rows = append(rows, recordRow{
				sel:       domain.DiagnosisSelection(d.ID),
				title:     d.Name,
				seq:       d.Seq,
				level:     1,
				isLast:    di == len(diags)-1,
				createdAt: d.CreatedAt,
				logText:   d.Summary,
			})

			actions, err := app.Records.ListActionsByDiagnosis(ctx, d.ID)
			if err != nil {
				return nil, fmt.Errorf("listing actions for %s: %w", d.Name, err)
			}
			for ai, a := range actions {
				rows = append(rows, recordRow{
					sel:       domain.ActionSelection(a.ID),
					title:     a.Name,
					seq:       a.Seq,
					level:     2,
					isLast:    ai == len(actions)-1,
					createdAt: a.CreatedAt,
					logText:   a.Summary,
				})
			}
		}
	}
	return rows, nil
}

func (v *inspectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inspectLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.rows = msg.rows
		v.checkCount = len(msg.checks)

		tableRows := make([]table.Row, 0, len(msg.checks))
		for _, c := range msg.checks {
			tableRows = append(tableRows, table.Row{c.Code, c.Name, string(c.Status), c.Result})
		}
		v.checks.SetRows(tableRows)

		// Move the cursor to the requested row, or clamp it.
		if msg.focus.Kind != domain.SelectNone {
			for i, r := range v.rows {
				if r.sel == msg.focus {
					v.cursor = i
					v.focus = focusTree
					break
				}
			}
		}
		if v.cursor >= len(v.rows) {
			v.cursor = len(v.rows) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		v.syncSelection()
		return v, nil

	case refreshViewMsg:
		return v, v.load(v.state.Selection)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if v.focus == focusTree {
				v.focus = focusChecks
				v.checks.Focus()
			} else {
				v.focus = focusTree
				v.checks.Blur()
			}
			return v, nil

		case "up", "k", "down", "j":
			if v.focus == focusChecks {
				var cmd tea.Cmd
				v.checks, cmd = v.checks.Update(msg)
				return v, cmd
			}
			if msg.String() == "up" || msg.String() == "k" {
				if v.cursor > 0 {
					v.cursor--
				}
			} else if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
			v.syncSelection()
			return v, nil

		case "s":
			return v, v.startDiagnosis()

		case "a":
			return v, v.runAction()

		case "enter", "r":
			return v, v.openReport()
		}

		if v.focus == focusChecks {
			var cmd tea.Cmd
			v.checks, cmd = v.checks.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

// syncSelection mirrors the tree cursor into the shared selection.
func (v *inspectView) syncSelection() {
	if v.cursor >= 0 && v.cursor < len(v.rows) {
		v.state.Selection = v.rows[v.cursor].sel
	} else {
		v.state.ClearSelection()
	}
}

// startDiagnosis creates a new diagnosis run and selects it.
func (v *inspectView) startDiagnosis() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		d, err := app.Records.CreateDiagnosis(ctx, time.Now())
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		checks, err := app.Checks.List(ctx)
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		rows, err := buildRecordRows(ctx, app)
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		return inspectLoadedMsg{checks: checks, rows: rows, focus: domain.DiagnosisSelection(d.ID)}
	}
}

// runAction creates a new action run under the selected diagnosis (or the
// parent of the selected action) and selects it.
func (v *inspectView) runAction() tea.Cmd {
	app := v.state.App
	sel := v.state.Selection
	return func() tea.Msg {
		ctx := context.Background()
		parent, err := app.Records.ResolveDiagnosisScope(ctx, sel)
		if err != nil {
			return noticeMsg{text: warningText(warnSelectDiagnosis)}
		}
		a, err := app.Records.CreateAction(ctx, parent.ID, time.Now())
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		checks, err := app.Checks.List(ctx)
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		rows, err := buildRecordRows(ctx, app)
		if err != nil {
			return inspectLoadedMsg{err: err}
		}
		return inspectLoadedMsg{checks: checks, rows: rows, focus: domain.ActionSelection(a.ID)}
	}
}

// openReport builds the report payload for the current selection and pushes
// the report view. Date-group and empty selections surface a warning instead.
func (v *inspectView) openReport() tea.Cmd {
	app := v.state.App
	sel := v.state.Selection
	return func() tea.Msg {
		switch sel.Kind {
		case domain.SelectNone:
			return noticeMsg{text: infoText(warnSelectForReport)}
		case domain.SelectDate:
			return noticeMsg{text: infoText(warnDateNodeReport)}
		}

		p, err := app.Reports.BuildPayload(context.Background(), sel)
		if err != nil {
			return noticeMsg{text: errorText(err)}
		}
		return pushViewMsg{view: newReportView(v.state, p)}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *inspectView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("불러오는 중...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("오류: "+v.err.Error())
	}

	left := v.renderChecksPane()
	right := lipgloss.JoinVertical(lipgloss.Left, v.renderTreePane(), v.renderLogPane())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (v *inspectView) paneStyle(focused bool) lipgloss.Style {
	border := formatter.ColorDim
	if focused {
		border = formatter.ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func (v *inspectView) renderChecksPane() string {
	title := formatter.StyleHeader.Render(fmt.Sprintf("취약점 항목 리스트 (%d)", v.checkCount))
	body := title + "\n" + v.checks.View()
	return v.paneStyle(v.focus == focusChecks).Render(body)
}

func (v *inspectView) renderTreePane() string {
	title := formatter.StyleHeader.Render("점검 실행 기록")

	var body string
	if len(v.rows) == 0 {
		body = formatter.Dim("기록이 없습니다. s 키로 점검을 시작하세요.")
	} else {
		items := make([]formatter.TreeItem, 0, len(v.rows))
		for i, r := range v.rows {
			item := formatter.TreeItem{
				Title:    r.title,
				Seq:      r.seq,
				Level:    r.level,
				IsLast:   r.isLast,
				Selected: i == v.cursor,
			}
			switch r.sel.Kind {
			case domain.SelectDiagnosis:
				item.Badge = formatter.KindBadge(domain.KindDiagnosis)
			case domain.SelectAction:
				item.Badge = formatter.KindBadge(domain.KindAction)
			}
			items = append(items, item)
		}
		body = strings.TrimRight(formatter.RenderTree(items), "\n")
	}

	return v.paneStyle(v.focus == focusTree).Render(title + "\n" + body)
}

func (v *inspectView) renderLogPane() string {
	title := formatter.StyleHeader.Render("로그")

	body := formatter.Dim(logPlaceholder)
	if v.cursor >= 0 && v.cursor < len(v.rows) {
		r := v.rows[v.cursor]
		switch r.sel.Kind {
		case domain.SelectDate:
			body = formatter.Dim(logDateNodeHint)
		case domain.SelectDiagnosis, domain.SelectAction:
			body = formatter.FormatRecordLog(r.createdAt, r.logText)
		}
	}

	return v.paneStyle(false).Render(title + "\n" + body)
}
