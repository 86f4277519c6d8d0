package service

import (
	"testing"

	"github.com/sunghoyun/vulnview/internal/repository"
	"github.com/sunghoyun/vulnview/internal/testutil"
)

// newTestServices builds the full service stack over a fresh in-memory database.
func newTestServices(t *testing.T) (RecordService, ReportService, CheckService) {
	t.Helper()
	database := testutil.NewTestDB(t)

	groups := repository.NewSQLiteDateGroupRepo(database)
	diagnoses := repository.NewSQLiteDiagnosisRepo(database)
	actions := repository.NewSQLiteActionRepo(database)
	sequences := repository.NewSQLiteRecordSequenceRepo(database)
	checks := repository.NewSQLiteCheckRepo(database)

	return NewRecordService(groups, diagnoses, actions, sequences),
		NewReportService(diagnoses, actions),
		NewCheckService(checks)
}
