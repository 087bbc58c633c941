package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbdc-tools/wonflow/internal/common"
)

// dateLayout is the ISO-8601 calendar-date form used for persistence.
const dateLayout = "2006-01-02"

// Payee is a single withholding target on an expense record.
type Payee struct {
	Name     string          `json:"name"`
	Withheld decimal.Decimal `json:"withheld_amount"`
}

// ExpenseRecord is one submitted expenditure. Derived tax fields are filled
// at construction time and never recomputed afterwards.
type ExpenseRecord struct {
	Key                   string
	Branch                string
	Date                  time.Time
	Category              string
	BudgetCode            string
	GrossAmount           decimal.Decimal
	WithholdingApplicable bool
	Payees                []Payee
	IncomeTax             decimal.Decimal
	LocalTax              decimal.Decimal
	NetAmount             decimal.Decimal
	Description           string
}

// recordDocument is the stored document shape. Dates travel as ISO-8601
// calendar-date strings.
type recordDocument struct {
	Key                   string          `json:"key,omitempty"`
	Branch                string          `json:"branch"`
	Date                  string          `json:"expenditure_date"`
	Category              string          `json:"account_category"`
	BudgetCode            string          `json:"budget_code"`
	GrossAmount           decimal.Decimal `json:"gross_amount"`
	WithholdingApplicable bool            `json:"withholding_applicable"`
	Payees                []Payee         `json:"withholding_payees"`
	IncomeTax             decimal.Decimal `json:"income_tax"`
	LocalTax              decimal.Decimal `json:"local_tax"`
	NetAmount             decimal.Decimal `json:"net_amount"`
	Description           string          `json:"description"`
}

// MarshalJSON implements json.Marshaler.
func (r ExpenseRecord) MarshalJSON() ([]byte, error) {
	payees := r.Payees
	if payees == nil {
		payees = []Payee{}
	}
	return json.Marshal(recordDocument{
		Key:                   r.Key,
		Branch:                r.Branch,
		Date:                  r.Date.Format(dateLayout),
		Category:              r.Category,
		BudgetCode:            r.BudgetCode,
		GrossAmount:           r.GrossAmount,
		WithholdingApplicable: r.WithholdingApplicable,
		Payees:                payees,
		IncomeTax:             r.IncomeTax,
		LocalTax:              r.LocalTax,
		NetAmount:             r.NetAmount,
		Description:           r.Description,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ExpenseRecord) UnmarshalJSON(data []byte) error {
	var doc recordDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	date, err := time.Parse(dateLayout, doc.Date)
	if err != nil {
		return fmt.Errorf("invalid expenditure_date %q: %w", doc.Date, err)
	}
	*r = ExpenseRecord{
		Key:                   doc.Key,
		Branch:                doc.Branch,
		Date:                  date,
		Category:              doc.Category,
		BudgetCode:            doc.BudgetCode,
		GrossAmount:           doc.GrossAmount,
		WithholdingApplicable: doc.WithholdingApplicable,
		Payees:                doc.Payees,
		IncomeTax:             doc.IncomeTax,
		LocalTax:              doc.LocalTax,
		NetAmount:             doc.NetAmount,
		Description:           doc.Description,
	}
	if r.Payees == nil {
		r.Payees = []Payee{}
	}
	return nil
}

// DateString returns the record's expenditure date in ISO-8601 form.
func (r *ExpenseRecord) DateString() string {
	return r.Date.Format(dateLayout)
}

// RecordInput carries the raw submission fields before validation.
type RecordInput struct {
	Branch                string
	Date                  time.Time
	Category              string
	BudgetCode            string
	GrossAmount           decimal.Decimal
	WithholdingApplicable bool
	Payees                []Payee
	Description           string
}

// Validate checks the input against the record invariants. Derived tax
// fields are not its concern.
func (in *RecordInput) Validate() error {
	if in.Date.IsZero() {
		return common.NewValidationError("expenditure_date", "missing date")
	}
	if !IsValidBranch(in.Branch) {
		return common.NewValidationError("branch", fmt.Sprintf("unknown branch %q", in.Branch))
	}
	if !IsValidCategory(in.Category) {
		return common.NewValidationError("account_category", fmt.Sprintf("unknown category %q", in.Category))
	}
	if !IsValidBudgetCode(in.Category, in.BudgetCode) {
		return common.NewValidationError("budget_code", fmt.Sprintf("invalid budget code %q for category %q", in.BudgetCode, in.Category))
	}
	if in.GrossAmount.IsNegative() {
		return common.NewValidationError("gross_amount", "negative amount")
	}
	if !in.WithholdingApplicable && len(in.Payees) > 0 {
		return common.NewValidationError("withholding_payees", "payees given but withholding not applicable")
	}
	seen := make(map[string]struct{}, len(in.Payees))
	for i, p := range in.Payees {
		if p.Name == "" {
			return common.NewValidationError("withholding_payees", fmt.Sprintf("payee %d has empty name", i))
		}
		if _, dup := seen[p.Name]; dup {
			return common.NewValidationError("withholding_payees", fmt.Sprintf("duplicate payee %q", p.Name))
		}
		seen[p.Name] = struct{}{}
		if p.Withheld.IsNegative() {
			return common.NewValidationError("withholding_payees", fmt.Sprintf("payee %q has negative withheld amount", p.Name))
		}
	}
	return nil
}
