package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunghoyun/vulnview/internal/testutil"
)

func TestDiagnosisRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	groups := NewSQLiteDateGroupRepo(database)
	repo := NewSQLiteDiagnosisRepo(database)

	_, err := groups.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)

	d := testutil.NewTestDiagnosis("2024-01-01", 1)
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Title, got.Title)
	assert.Equal(t, d.Seq, got.Seq)
	assert.Equal(t, d.Table, got.Table)
	assert.True(t, d.CreatedAt.Equal(got.CreatedAt))

	bySeq, err := repo.GetBySeq(ctx, "2024-01-01", 1)
	require.NoError(t, err)
	assert.Equal(t, d.ID, bySeq.ID)
}

func TestDiagnosisRepo_ListByDateOrderedBySeq(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	groups := NewSQLiteDateGroupRepo(database)
	repo := NewSQLiteDiagnosisRepo(database)

	_, err := groups.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)
	_, err = groups.Ensure(ctx, "2024-01-02")
	require.NoError(t, err)

	// Insert out of order; listing must come back seq-ascending.
	for _, seq := range []int{2, 1, 3} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestDiagnosis("2024-01-01", seq)))
	}
	require.NoError(t, repo.Create(ctx, testutil.NewTestDiagnosis("2024-01-02", 1)))

	records, err := repo.ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, d := range records {
		assert.Equal(t, i+1, d.Seq)
	}
}

func TestActionRepo_CreateAndListUnderDiagnosis(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	groups := NewSQLiteDateGroupRepo(database)
	diags := NewSQLiteDiagnosisRepo(database)
	repo := NewSQLiteActionRepo(database)

	_, err := groups.Ensure(ctx, "2024-01-01")
	require.NoError(t, err)

	d1 := testutil.NewTestDiagnosis("2024-01-01", 1)
	d2 := testutil.NewTestDiagnosis("2024-01-01", 2)
	require.NoError(t, diags.Create(ctx, d1))
	require.NoError(t, diags.Create(ctx, d2))

	a1 := testutil.NewTestAction(d1, 1)
	a2 := testutil.NewTestAction(d1, 2)
	other := testutil.NewTestAction(d2, 1)
	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))
	require.NoError(t, repo.Create(ctx, other))

	actions, err := repo.ListByDiagnosis(ctx, d1.ID)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, a1.ID, actions[0].ID)
	assert.Equal(t, a2.ID, actions[1].ID)
	assert.Equal(t, "2024-01-01 진단1 - 조치1 리포트", actions[0].Title)

	got, err := repo.GetBySeq(ctx, d1.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, a2.ID, got.ID)
}

func TestActionRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteActionRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckRepo_ListsSeededChecksInOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCheckRepo(database)

	checks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, checks, 3)

	assert.Equal(t, "V-001", checks[0].Code)
	assert.Equal(t, "불필요한 서비스 비활성화", checks[0].Name)
	assert.Equal(t, "V-002", checks[1].Code)
	assert.Equal(t, "V-003", checks[2].Code)
	for _, c := range checks {
		assert.EqualValues(t, "대기", c.Status)
		assert.Equal(t, "-", c.Result)
	}
}
