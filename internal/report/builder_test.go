package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbdc-tools/wonflow/internal/model"
)

func expenseRecord(branch, category string, net int64, payees ...model.Payee) model.ExpenseRecord {
	return model.ExpenseRecord{
		Branch:                branch,
		Date:                  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Category:              category,
		NetAmount:             decimal.NewFromInt(net),
		WithholdingApplicable: len(payees) > 0,
		Payees:                payees,
	}
}

func TestAggregateByCategory_Empty(t *testing.T) {
	totals := AggregateByCategory(nil)
	require.NotNil(t, totals)
	assert.Empty(t, totals)
}

func TestAggregateByCategory_SumsNetAmounts(t *testing.T) {
	records := []model.ExpenseRecord{
		expenseRecord("강남지점", "소상공인 역량강화", 912000),
		expenseRecord("강동지점", "소상공인 역량강화", 100000),
		expenseRecord("강남지점", "자영업 클리닉 지원", 50000),
	}

	totals := AggregateByCategory(records)
	require.Len(t, totals, 2)

	byName := make(map[string]model.CategoryTotal, len(totals))
	for _, tot := range totals {
		byName[tot.Category] = tot
	}

	require.Contains(t, byName, "소상공인 역량강화")
	assert.True(t, byName["소상공인 역량강화"].Total.Equal(decimal.NewFromInt(1012000)))
	assert.Equal(t, 2, byName["소상공인 역량강화"].Count)

	require.Contains(t, byName, "자영업 클리닉 지원")
	assert.True(t, byName["자영업 클리닉 지원"].Total.Equal(decimal.NewFromInt(50000)))
}

func TestAggregateByCategory_DisplayOrder(t *testing.T) {
	records := []model.ExpenseRecord{
		expenseRecord("강남지점", "위탁관리수수료", 1),
		expenseRecord("강남지점", "자영업지원센터 운영", 1),
	}

	totals := AggregateByCategory(records)
	require.Len(t, totals, 2)
	// 자영업지원센터 운영 precedes 위탁관리수수료 in display order.
	assert.Equal(t, "자영업지원센터 운영", totals[0].Category)
	assert.Equal(t, "위탁관리수수료", totals[1].Category)
}

func TestFlattenForExport_DropsPayeelessRecords(t *testing.T) {
	records := []model.ExpenseRecord{
		expenseRecord("강남지점", "소상공인 역량강화", 912000),
	}

	rows := FlattenForExport(records)
	assert.Empty(t, rows, "records without payees contribute no rows")
}

func TestFlattenForExport_OneRowPerPayee(t *testing.T) {
	records := []model.ExpenseRecord{
		expenseRecord("강남지점", "소상공인 역량강화", 912000,
			model.Payee{Name: "홍길동", Withheld: decimal.NewFromInt(50000)},
			model.Payee{Name: "임꺽정", Withheld: decimal.NewFromInt(30000)},
		),
		expenseRecord("강동지점", "자영업 클리닉 지원", 100000),
	}

	rows := FlattenForExport(records)
	require.Len(t, rows, 2, "exactly one row per payee; payee-less record drops out")

	assert.Equal(t, "강남지점", rows[0].Branch)
	assert.Equal(t, "소상공인 역량강화", rows[0].Category)
	assert.True(t, rows[0].NetAmount.Equal(decimal.NewFromInt(912000)))
	assert.Equal(t, "홍길동", rows[0].PayeeName)
	assert.True(t, rows[0].Withheld.Equal(decimal.NewFromInt(50000)))

	assert.Equal(t, "임꺽정", rows[1].PayeeName)
}

func TestWithholdingRows_MatchesHeader(t *testing.T) {
	rows := FlattenForExport([]model.ExpenseRecord{
		expenseRecord("강남지점", "소상공인 역량강화", 912000,
			model.Payee{Name: "홍길동", Withheld: decimal.NewFromInt(50000)},
		),
	})

	shaped := WithholdingRows(rows)
	require.Len(t, shaped, 1)
	require.Len(t, shaped[0], len(WithholdingHeader))

	assert.Equal(t, "강남지점", shaped[0][0])
	assert.Equal(t, "2024-03-15", shaped[0][1])
	assert.Equal(t, "소상공인 역량강화", shaped[0][2])
	assert.Equal(t, "912000", shaped[0][3])
	assert.Equal(t, "홍길동", shaped[0][4])
	assert.Equal(t, "50000", shaped[0][5])
}

func TestRecordRows_IncludesPayeelessRecords(t *testing.T) {
	records := []model.ExpenseRecord{
		expenseRecord("강남지점", "소상공인 역량강화", 912000,
			model.Payee{Name: "홍길동", Withheld: decimal.NewFromInt(50000)},
		),
		expenseRecord("강동지점", "자영업 클리닉 지원", 100000),
	}

	shaped := RecordRows(records)
	require.Len(t, shaped, 2, "the general download keeps payee-less records")
	require.Len(t, shaped[0], len(RecordHeader))

	assert.Equal(t, "홍길동 50000", shaped[0][7])
	assert.Equal(t, "", shaped[1][7])
}
