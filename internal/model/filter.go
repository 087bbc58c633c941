package model

import (
	"time"

	"github.com/sbdc-tools/wonflow/internal/common"
)

// FilterCriteria narrows a record scan by branch, account category and an
// inclusive date range. Constructed per query, never persisted.
type FilterCriteria struct {
	Branch   string
	Category string
	Start    time.Time
	End      time.Time
}

// Validate checks the criteria before use.
func (c *FilterCriteria) Validate() error {
	if c.Branch != AllBranches && !IsValidBranch(c.Branch) {
		return common.NewValidationError("branch", "unknown branch")
	}
	if c.Category != AllCategories && !IsValidCategory(c.Category) {
		return common.NewValidationError("account_category", "unknown category")
	}
	if c.Start.IsZero() || c.End.IsZero() {
		return common.NewValidationError("date_range", "missing start or end date")
	}
	if c.End.Before(c.Start) {
		return common.NewValidationError("date_range", "start date after end date")
	}
	return nil
}
