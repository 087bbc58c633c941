// Package storage provides the document-store gateway backing the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbdc-tools/wonflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptyPatch   = errors.New("patch cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord ensures a record is present and carries its required fields.
func validateRecord(record *model.ExpenseRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if record.Date.IsZero() {
		return fmt.Errorf("record missing expenditure date")
	}
	if record.Branch == "" {
		return fmt.Errorf("record missing branch")
	}
	if record.Category == "" {
		return fmt.Errorf("record missing account category")
	}
	return nil
}

// validatePatch ensures an update patch has at least one field.
func validatePatch(patch map[string]any) error {
	if patch == nil {
		return fmt.Errorf("%w: patch", ErrNilParameter)
	}
	if len(patch) == 0 {
		return ErrEmptyPatch
	}
	return nil
}
