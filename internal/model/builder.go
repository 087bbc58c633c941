package model

import (
	"time"

	"github.com/sbdc-tools/wonflow/internal/tax"
)

// NewRecord validates the input, derives the withholding fields and returns
// a record ready for persistence. Construction is pure; the caller hands the
// record to the store gateway.
func NewRecord(in RecordInput) (*ExpenseRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	taxes, err := tax.Compute(in.GrossAmount, in.WithholdingApplicable)
	if err != nil {
		return nil, err
	}

	payees := in.Payees
	if payees == nil {
		payees = []Payee{}
	}

	return &ExpenseRecord{
		Branch:                in.Branch,
		Date:                  normalizeDate(in.Date),
		Category:              in.Category,
		BudgetCode:            in.BudgetCode,
		GrossAmount:           in.GrossAmount,
		WithholdingApplicable: in.WithholdingApplicable,
		Payees:                payees,
		IncomeTax:             taxes.IncomeTax,
		LocalTax:              taxes.LocalTax,
		NetAmount:             taxes.NetAmount,
		Description:           in.Description,
	}, nil
}

// normalizeDate strips any time-of-day component.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
