// Package query filters the full record set in memory.
//
// The store gateway has no server-side query surface, so every search
// materializes one full scan and filters it here. Acceptable for the record
// volumes of a single organization.
package query

import (
	"sort"
	"time"

	"github.com/sbdc-tools/wonflow/internal/model"
)

// Filter returns the records matching the criteria. Input order is
// preserved and the input slice is never mutated. The result may be empty,
// never nil.
func Filter(records []model.ExpenseRecord, c model.FilterCriteria) []model.ExpenseRecord {
	out := make([]model.ExpenseRecord, 0, len(records))
	for _, r := range records {
		if matches(&r, &c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *model.ExpenseRecord, c *model.FilterCriteria) bool {
	if c.Branch != model.AllBranches && r.Branch != c.Branch {
		return false
	}
	if c.Category != model.AllCategories && r.Category != c.Category {
		return false
	}
	return inRange(r.Date, c.Start, c.End)
}

// inRange compares calendar dates, inclusive on both ends.
func inRange(d, start, end time.Time) bool {
	day := toDay(d)
	return !day.Before(toDay(start)) && !day.After(toDay(end))
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SortByDate orders records by expenditure date ascending, breaking ties by
// key. Scan order from the store is not stable across calls; callers that
// need deterministic output sort explicitly.
func SortByDate(records []model.ExpenseRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date.Equal(records[j].Date) {
			return records[i].Key < records[j].Key
		}
		return records[i].Date.Before(records[j].Date)
	})
}
