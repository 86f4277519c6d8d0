package cli

import (
	"testing"

	"github.com/sunghoyun/vulnview/internal/repository"
	"github.com/sunghoyun/vulnview/internal/service"
	"github.com/sunghoyun/vulnview/internal/teatest"
	"github.com/sunghoyun/vulnview/internal/testutil"
)

// TestDriver wraps teatest.Driver with appModel-specific inspection methods
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// newTestApp builds the full service stack over a fresh in-memory database.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	groups := repository.NewSQLiteDateGroupRepo(database)
	diagnoses := repository.NewSQLiteDiagnosisRepo(database)
	actions := repository.NewSQLiteActionRepo(database)
	sequences := repository.NewSQLiteRecordSequenceRepo(database)
	checks := repository.NewSQLiteCheckRepo(database)

	return &App{
		Records: service.NewRecordService(groups, diagnoses, actions, sequences),
		Checks:  service.NewCheckService(checks),
		Reports: service.NewReportService(diagnoses, actions),
	}
}

// NewTestDriver constructs the appModel over a test App, sets terminal size,
// and drains Init() (which loads inspection data synchronously via in-memory
// SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() *appModel {
	m := d.Model.(appModel)
	return &m
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// StackDepth returns the number of views on the navigation stack.
func (d *TestDriver) StackDepth() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state pointer.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// NoticeActive reports whether a transient notice is being displayed.
func (d *TestDriver) NoticeActive() bool {
	return d.appModel().noticeActive
}

// Notice returns the current transient notice text.
func (d *TestDriver) Notice() string {
	return d.appModel().lastNotice
}
