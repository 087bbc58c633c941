// Package service defines the contracts between the core and its external
// collaborators.
package service

import (
	"context"

	"github.com/sbdc-tools/wonflow/internal/model"
)

// Store is the document-store gateway. Records are stored as flat documents
// under opaque string keys; keys are assigned by the store on Put.
type Store interface {
	// Put persists a new record and returns its assigned key.
	Put(ctx context.Context, record *model.ExpenseRecord) (string, error)
	// Get returns the record under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) (*model.ExpenseRecord, error)
	// Update applies a field patch to the record under key.
	Update(ctx context.Context, key string, patch map[string]any) error
	// Delete removes the record under key.
	Delete(ctx context.Context, key string) error
	// ScanAll returns every record as one consistent snapshot. Order is not
	// guaranteed stable across calls.
	ScanAll(ctx context.Context) ([]model.ExpenseRecord, error)
	Close() error
}

// ExportSink serializes uniform rows into a binary spreadsheet. Columns
// follow the given header; one spreadsheet row per input row.
type ExportSink interface {
	Write(ctx context.Context, header []string, rows [][]any) ([]byte, error)
}
