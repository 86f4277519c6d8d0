package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunghoyun/vulnview/internal/domain"
	"github.com/sunghoyun/vulnview/internal/testutil"
)

func TestRecordService_CreateDiagnosis_TitleAndSequence(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	d1, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:00:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, d1.Seq)
	assert.Equal(t, "진단1", d1.Name)
	assert.Equal(t, "2024-01-01 진단1 리포트", d1.Title)

	d2, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:05:00"))
	require.NoError(t, err)
	assert.Equal(t, 2, d2.Seq)
	assert.Equal(t, "2024-01-01 진단2 리포트", d2.Title)
}

func TestRecordService_CreateDiagnosis_SequencesAreExactlyOneToN(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	const n = 7
	for i := 1; i <= n; i++ {
		d, err := records.CreateDiagnosis(ctx, testutil.At(fmt.Sprintf("2024-02-01 09:%02d:00", i)))
		require.NoError(t, err)
		assert.Equal(t, i, d.Seq)
	}

	listed, err := records.ListDiagnosesByDate(ctx, "2024-02-01")
	require.NoError(t, err)
	require.Len(t, listed, n)
	for i, d := range listed {
		assert.Equal(t, i+1, d.Seq)
	}
}

func TestRecordService_CreateDiagnosis_CountersScopedPerDate(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:00:00"))
	require.NoError(t, err)

	other, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-02 10:00:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, other.Seq, "a new date starts at 진단1 again")
	assert.Equal(t, "2024-01-02 진단1 리포트", other.Title)
}

func TestRecordService_DateGroupsKeepFirstSeenOrder(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	// A later calendar date seen first stays first.
	_, err := records.CreateDiagnosis(ctx, testutil.At("2024-05-01 10:00:00"))
	require.NoError(t, err)
	_, err = records.CreateDiagnosis(ctx, testutil.At("2024-04-01 10:00:00"))
	require.NoError(t, err)

	groups, err := records.ListDateGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "2024-05-01", groups[0].Date)
	assert.Equal(t, "2024-04-01", groups[1].Date)
}

func TestRecordService_CreateAction_TitleUsesParentDisplayName(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	d1, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:00:00"))
	require.NoError(t, err)
	_, err = records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:01:00"))
	require.NoError(t, err)

	a, err := records.CreateAction(ctx, d1.ID, testutil.At("2024-01-01 11:00:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Seq)
	assert.Equal(t, "조치1", a.Name)
	// Display name of the parent, not its full report title.
	assert.Equal(t, "2024-01-01 진단1 - 조치1 리포트", a.Title)
	assert.Equal(t, d1.ID, a.DiagnosisID)
}

func TestRecordService_CreateAction_CountersIndependentPerDiagnosis(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	d1, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:00:00"))
	require.NoError(t, err)
	d2, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:01:00"))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		a, err := records.CreateAction(ctx, d1.ID, testutil.At(fmt.Sprintf("2024-01-01 11:%02d:00", i)))
		require.NoError(t, err)
		assert.Equal(t, i, a.Seq)
	}

	a, err := records.CreateAction(ctx, d2.ID, testutil.At("2024-01-01 12:00:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Seq, "sibling diagnosis counters do not interfere")

	actions, err := records.ListActionsByDiagnosis(ctx, d1.ID)
	require.NoError(t, err)
	assert.Len(t, actions, 3)
}

func TestRecordService_CreateAction_NoSelectionLeavesTreeUnchanged(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := records.CreateAction(ctx, "", testutil.At("2024-01-01 10:00:00"))
	assert.ErrorIs(t, err, ErrNoSelection)

	groups, err := records.ListDateGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestRecordService_CreateAction_DanglingDiagnosisIsPayloadMissing(t *testing.T) {
	records, _, _ := newTestServices(t)

	_, err := records.CreateAction(context.Background(), "no-such-id", testutil.At("2024-01-01 10:00:00"))
	assert.ErrorIs(t, err, ErrPayloadMissing)
}

func TestRecordService_ResolveDiagnosisScope(t *testing.T) {
	records, _, _ := newTestServices(t)
	ctx := context.Background()

	d, err := records.CreateDiagnosis(ctx, testutil.At("2024-01-01 10:00:00"))
	require.NoError(t, err)
	a, err := records.CreateAction(ctx, d.ID, testutil.At("2024-01-01 11:00:00"))
	require.NoError(t, err)

	t.Run("diagnosis resolves to itself", func(t *testing.T) {
		got, err := records.ResolveDiagnosisScope(ctx, domain.DiagnosisSelection(d.ID))
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
	})

	t.Run("action resolves to its exact parent", func(t *testing.T) {
		got, err := records.ResolveDiagnosisScope(ctx, domain.ActionSelection(a.ID))
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
	})

	t.Run("no selection", func(t *testing.T) {
		_, err := records.ResolveDiagnosisScope(ctx, domain.NoSelection)
		assert.ErrorIs(t, err, ErrNoSelection)
	})

	t.Run("date group", func(t *testing.T) {
		_, err := records.ResolveDiagnosisScope(ctx, domain.DateSelection("2024-01-01"))
		assert.ErrorIs(t, err, ErrNoSelection)
	})
}

func TestRecordService_DiagnosisPlaceholderContent(t *testing.T) {
	records, _, _ := newTestServices(t)

	d, err := records.CreateDiagnosis(context.Background(), testutil.At("2024-01-01 10:00:00"))
	require.NoError(t, err)

	assert.Equal(t, "진단1 더미 점검 결과입니다.\n추후 실제 점검 로그/판정 결과가 표시됩니다.", d.Summary)
	assert.Equal(t, [][]string{
		{"대상", "서버-A", "더미"},
		{"상태", "점검완료", "placeholder"},
		{"요약", "취약점 점검 3건", "예시"},
	}, d.Table)
}
