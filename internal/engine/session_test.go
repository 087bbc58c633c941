package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/export"
	"github.com/sbdc-tools/wonflow/internal/model"
	"github.com/sbdc-tools/wonflow/internal/report"
	"github.com/sbdc-tools/wonflow/internal/storage"
)

func testInput(branch string, withPayees bool) model.RecordInput {
	in := model.RecordInput{
		Branch:      branch,
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Category:    "소상공인 역량강화",
		BudgetCode:  "소상공인 교육",
		GrossAmount: decimal.NewFromInt(1000000),
		Description: "강사비",
	}
	if withPayees {
		in.WithholdingApplicable = true
		in.Payees = []model.Payee{
			{Name: "홍길동", Withheld: decimal.NewFromInt(50000)},
		}
	}
	return in
}

func wideCriteria() model.FilterCriteria {
	return model.FilterCriteria{
		Branch:   model.AllBranches,
		Category: model.AllCategories,
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func submit(t *testing.T, session *Session, in model.RecordInput) *model.ExpenseRecord {
	t.Helper()
	ctx := context.Background()

	_, err := session.PrepareSubmission(ctx, in)
	require.NoError(t, err)
	record, err := session.Confirm(ctx, DecisionConfirm)
	require.NoError(t, err)
	return record
}

func TestSession_PrepareAndConfirm(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	pending, err := session.PrepareSubmission(ctx, testInput("강남지점", true))
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.True(t, pending.Record.NetAmount.Equal(decimal.NewFromInt(912000)))
	assert.NotNil(t, session.Pending())

	record, err := session.Confirm(ctx, DecisionConfirm)
	require.NoError(t, err)
	require.NotEmpty(t, record.Key)
	assert.Nil(t, session.Pending(), "confirmation clears the pending state")

	stored, err := store.Get(ctx, record.Key)
	require.NoError(t, err)
	assert.Equal(t, "강남지점", stored.Branch)
}

func TestSession_PrepareRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	session := NewSession(storage.NewMemoryStore(), nil)

	in := testInput("강남지점", true)
	in.Date = time.Time{}

	_, err := session.PrepareSubmission(ctx, in)
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
	assert.Nil(t, session.Pending(), "nothing is held pending on validation failure")
}

func TestSession_DoublePrepare(t *testing.T) {
	ctx := context.Background()
	session := NewSession(storage.NewMemoryStore(), nil)

	_, err := session.PrepareSubmission(ctx, testInput("강남지점", true))
	require.NoError(t, err)

	_, err = session.PrepareSubmission(ctx, testInput("강동지점", false))
	assert.ErrorIs(t, err, common.ErrSubmissionPending)
}

func TestSession_Cancel(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	_, err := session.PrepareSubmission(ctx, testInput("강남지점", true))
	require.NoError(t, err)

	_, err = session.Confirm(ctx, DecisionCancel)
	assert.ErrorIs(t, err, common.ErrCancelled)
	assert.Nil(t, session.Pending())

	records, err := store.ScanAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "nothing was written")
}

func TestSession_ConfirmWithoutPending(t *testing.T) {
	session := NewSession(storage.NewMemoryStore(), nil)

	_, err := session.Confirm(context.Background(), DecisionConfirm)
	assert.ErrorIs(t, err, common.ErrNoPendingSubmission)
}

func TestSession_StoreFailureResetsPending(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	_, err := session.PrepareSubmission(ctx, testInput("강남지점", true))
	require.NoError(t, err)

	store.FailNext = true
	_, err = session.Confirm(ctx, DecisionConfirm)
	require.Error(t, err)
	assert.Nil(t, session.Pending(), "store failure resets the confirmation state")
}

func TestSession_Search(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	submit(t, session, testInput("강남지점", true))
	submit(t, session, testInput("강동지점", false))

	criteria := wideCriteria()
	criteria.Branch = "강남지점"

	records, err := session.Search(ctx, criteria)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "강남지점", records[0].Branch)
	assert.Len(t, session.LastResults(), 1, "last result set is cached on the session")
}

func TestSession_SearchNoResults(t *testing.T) {
	ctx := context.Background()
	session := NewSession(storage.NewMemoryStore(), nil)

	_, err := session.Search(ctx, wideCriteria())
	assert.ErrorIs(t, err, common.ErrNoResults)
}

func TestSession_SearchInvalidCriteria(t *testing.T) {
	ctx := context.Background()
	session := NewSession(storage.NewMemoryStore(), nil)

	criteria := wideCriteria()
	criteria.Start, criteria.End = criteria.End, criteria.Start

	_, err := session.Search(ctx, criteria)
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
}

func TestSession_WithholdingStatement(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	submit(t, session, testInput("강남지점", true))
	submit(t, session, testInput("강동지점", false)) // no payees, drops out

	sink := export.NewMockSink()
	_, err := session.WithholdingStatement(ctx, wideCriteria(), sink)
	require.NoError(t, err)

	assert.Equal(t, 1, sink.WriteCallCount)
	assert.Equal(t, report.WithholdingHeader, sink.LastHeader)
	require.Len(t, sink.LastRows, 1, "only the payee row is exported")
	assert.Equal(t, "홍길동", sink.LastRows[0][4])
	assert.Equal(t, "50000", sink.LastRows[0][5])
}

func TestSession_WithholdingStatementNoPayees(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	submit(t, session, testInput("강동지점", false))

	sink := export.NewMockSink()
	_, err := session.WithholdingStatement(ctx, wideCriteria(), sink)
	assert.ErrorIs(t, err, common.ErrNoResults)
	assert.Zero(t, sink.WriteCallCount, "the sink is never invoked without rows")
}

func TestSession_ExportSearchIncludesPayeelessRecords(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	submit(t, session, testInput("강남지점", true))
	submit(t, session, testInput("강동지점", false))

	sink := export.NewMockSink()
	_, err := session.ExportSearch(ctx, wideCriteria(), sink)
	require.NoError(t, err)

	assert.Equal(t, report.RecordHeader, sink.LastHeader)
	assert.Len(t, sink.LastRows, 2, "the general download keeps payee-less records")
}

func TestSession_CategoryTotals(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	submit(t, session, testInput("강남지점", true))

	in := testInput("강동지점", false)
	in.Category = "자영업 클리닉 지원"
	in.BudgetCode = "자영업클리닉 컨설팅"
	in.GrossAmount = decimal.NewFromInt(50000)
	submit(t, session, in)

	totals, err := session.CategoryTotals(ctx, wideCriteria())
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byName := make(map[string]model.CategoryTotal)
	for _, tot := range totals {
		byName[tot.Category] = tot
	}
	assert.True(t, byName["소상공인 역량강화"].Total.Equal(decimal.NewFromInt(912000)))
	assert.True(t, byName["자영업 클리닉 지원"].Total.Equal(decimal.NewFromInt(50000)))
}

func TestSession_ScanFailureSurfacesStoreError(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	session := NewSession(store, nil)

	store.FailNext = true
	_, err := session.Search(ctx, wideCriteria())
	require.Error(t, err)

	var storeErr *common.StoreError
	assert.ErrorAs(t, err, &storeErr)
}
