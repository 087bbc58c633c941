package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/sbdc-tools/wonflow/internal/config"
	"github.com/sbdc-tools/wonflow/internal/model"
	"github.com/sbdc-tools/wonflow/internal/service"
	"github.com/sbdc-tools/wonflow/internal/storage"
)

const dateLayout = "2006-01-02"

// initStore initializes the document store with proper path expansion.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("store.path")
	if dbPath == "" {
		dbPath = config.DefaultStorePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseDate parses an ISO calendar date flag value.
func parseDate(value, flagName string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", flagName, value)
	}
	return t, nil
}

// criteriaFromFlags builds filter criteria from the shared filter flags.
// Empty branch/category flags widen to the "all" sentinels; an empty range
// defaults to the last 30 days.
func criteriaFromFlags(branch, category, start, end string) (model.FilterCriteria, error) {
	criteria := model.FilterCriteria{
		Branch:   branch,
		Category: category,
	}
	if criteria.Branch == "" {
		criteria.Branch = model.AllBranches
	}
	if criteria.Category == "" {
		criteria.Category = model.AllCategories
	}

	now := time.Now()
	criteria.Start = now.AddDate(0, 0, -30)
	criteria.End = now

	if start != "" {
		t, err := parseDate(start, "start date")
		if err != nil {
			return model.FilterCriteria{}, err
		}
		criteria.Start = t
	}
	if end != "" {
		t, err := parseDate(end, "end date")
		if err != nil {
			return model.FilterCriteria{}, err
		}
		criteria.End = t
	}

	return criteria, nil
}
