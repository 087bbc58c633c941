// Package tax derives withholding amounts for expense submissions.
//
// The regime is fixed: income tax is 8% of the gross amount and local income
// tax is a one-tenth surtax on it (0.8% of gross). Both taxes are rounded
// half-up to the whole won before the net payout is derived, so
// net + income + local always reproduces the gross amount exactly.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/sbdc-tools/wonflow/internal/common"
)

var (
	incomeTaxRate = decimal.NewFromFloat(0.08)
	localTaxRate  = decimal.NewFromFloat(0.008)
)

// Result holds the derived withholding fields for one gross amount.
type Result struct {
	IncomeTax decimal.Decimal
	LocalTax  decimal.Decimal
	NetAmount decimal.Decimal
}

// Compute derives the withholding taxes and net payout for a gross amount.
// When withholding is not applicable both taxes are zero and the net payout
// equals the gross amount.
func Compute(gross decimal.Decimal, applicable bool) (Result, error) {
	if gross.IsNegative() {
		return Result{}, common.NewValidationError("gross_amount", "negative amount")
	}

	if !applicable {
		return Result{
			IncomeTax: decimal.Zero,
			LocalTax:  decimal.Zero,
			NetAmount: gross,
		}, nil
	}

	income := gross.Mul(incomeTaxRate).Round(0)
	local := gross.Mul(localTaxRate).Round(0)

	return Result{
		IncomeTax: income,
		LocalTax:  local,
		NetAmount: gross.Sub(income).Sub(local),
	}, nil
}
