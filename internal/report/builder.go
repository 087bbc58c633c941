// Package report turns filtered records into aggregates and export rows.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/sbdc-tools/wonflow/internal/model"
)

// Export column headers. The Korean labels are the user-facing report
// vocabulary carried over from the paper forms.
var (
	// WithholdingHeader is the column set for the withholding statement.
	WithholdingHeader = []string{
		"지점명", "지출일자", "계정과목", "총출금액(원천세 제외)",
		"원천징수 대상자 이름", "원천징수 금액",
	}

	// RecordHeader is the column set for the general record download.
	RecordHeader = []string{
		"지점명", "지출일자", "계정과목", "예산귀속코드",
		"총출금액(원천세 제외)", "기타소득세", "기타지방소득세",
		"원천징수 대상자", "상세설명",
	}
)

// AggregateByCategory groups records by account category and sums net
// amounts per group. Categories appear in fixed display order; categories
// with no records are omitted. Empty input yields an empty slice, which
// callers must distinguish from a zero total.
func AggregateByCategory(records []model.ExpenseRecord) []model.CategoryTotal {
	totals := make(map[string]*model.CategoryTotal)
	for _, r := range records {
		t, ok := totals[r.Category]
		if !ok {
			t = &model.CategoryTotal{Category: r.Category, Total: decimal.Zero}
			totals[r.Category] = t
		}
		t.Total = t.Total.Add(r.NetAmount)
		t.Count++
	}

	out := make([]model.CategoryTotal, 0, len(totals))
	for _, category := range model.Categories() {
		if t, ok := totals[category]; ok {
			out = append(out, *t)
		}
	}
	return out
}

// FlattenForExport emits one row per (record, payee) pair. A record with no
// payees contributes no row at all: this is a withholding statement, and
// records without payees have nothing to state. The general download path
// (RecordRows) includes them.
func FlattenForExport(records []model.ExpenseRecord) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(records))
	for _, r := range records {
		for _, p := range r.Payees {
			rows = append(rows, model.ReportRow{
				Branch:    r.Branch,
				Date:      r.Date,
				Category:  r.Category,
				NetAmount: r.NetAmount,
				PayeeName: p.Name,
				Withheld:  p.Withheld,
			})
		}
	}
	return rows
}

// WithholdingRows shapes flattened report rows for the export sink, matching
// WithholdingHeader column for column.
func WithholdingRows(rows []model.ReportRow) [][]any {
	out := make([][]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, []any{
			row.Branch,
			row.Date.Format("2006-01-02"),
			row.Category,
			row.NetAmount.String(),
			row.PayeeName,
			row.Withheld.String(),
		})
	}
	return out
}

// RecordRows shapes full records for the general download, one row per
// record, matching RecordHeader. Payees collapse into one summary column.
func RecordRows(records []model.ExpenseRecord) [][]any {
	out := make([][]any, 0, len(records))
	for _, r := range records {
		out = append(out, []any{
			r.Branch,
			r.DateString(),
			r.Category,
			r.BudgetCode,
			r.NetAmount.String(),
			r.IncomeTax.String(),
			r.LocalTax.String(),
			payeeSummary(r.Payees),
			r.Description,
		})
	}
	return out
}

func payeeSummary(payees []model.Payee) string {
	s := ""
	for i, p := range payees {
		if i > 0 {
			s += ", "
		}
		s += p.Name + " " + p.Withheld.String()
	}
	return s
}
