package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is the flattened record × payee projection used by the
// withholding statement export. In-memory only.
type ReportRow struct {
	Branch    string
	Date      time.Time
	Category  string
	NetAmount decimal.Decimal
	PayeeName string
	Withheld  decimal.Decimal
}

// CategoryTotal is the per-category aggregate of net spending.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}
