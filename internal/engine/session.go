// Package engine orchestrates submissions, searches and exports over the
// document store. All session state lives on an explicit Session value;
// there is no package-level mutable state.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/model"
	"github.com/sbdc-tools/wonflow/internal/query"
	"github.com/sbdc-tools/wonflow/internal/report"
	"github.com/sbdc-tools/wonflow/internal/service"
)

// Decision is the user's answer to the confirmation gate.
type Decision int

const (
	// DecisionCancel abandons the pending submission.
	DecisionCancel Decision = iota
	// DecisionConfirm persists the pending submission.
	DecisionConfirm
)

// PendingSubmission is a validated record waiting for the user's
// confirmation before it is written to the store.
type PendingSubmission struct {
	Record     *model.ExpenseRecord
	PreparedAt time.Time
}

// Session carries the per-session state: the pending submission and the
// last fetched result set. One session per interactive user; sessions do
// not share state.
type Session struct {
	store       service.Store
	logger      *slog.Logger
	pending     *PendingSubmission
	lastResults []model.ExpenseRecord
}

// NewSession creates a session over the given store.
func NewSession(store service.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, logger: logger}
}

// PrepareSubmission validates the input, derives the withholding fields and
// holds the record pending confirmation. A second prepare while one is
// pending fails with ErrSubmissionPending.
func (s *Session) PrepareSubmission(_ context.Context, in model.RecordInput) (*PendingSubmission, error) {
	if s.pending != nil {
		return nil, common.ErrSubmissionPending
	}

	record, err := model.NewRecord(in)
	if err != nil {
		return nil, err
	}

	s.pending = &PendingSubmission{
		Record:     record,
		PreparedAt: time.Now(),
	}
	return s.pending, nil
}

// Pending returns the submission awaiting confirmation, if any.
func (s *Session) Pending() *PendingSubmission {
	return s.pending
}

// Confirm resolves the pending submission. Confirming persists the record
// and returns it with its store-assigned key; canceling returns
// ErrCancelled. The pending state is cleared in every case, including a
// store failure.
func (s *Session) Confirm(ctx context.Context, decision Decision) (*model.ExpenseRecord, error) {
	if s.pending == nil {
		return nil, common.ErrNoPendingSubmission
	}

	pending := s.pending
	s.pending = nil

	if decision != DecisionConfirm {
		s.logger.Info("submission canceled", "branch", pending.Record.Branch)
		return nil, common.ErrCancelled
	}

	key, err := s.store.Put(ctx, pending.Record)
	if err != nil {
		return nil, common.NewUserError("기록 저장에 실패했습니다", err)
	}

	pending.Record.Key = key
	s.logger.Info("record saved",
		"key", key,
		"branch", pending.Record.Branch,
		"category", pending.Record.Category,
		"net_amount", pending.Record.NetAmount.String())
	return pending.Record, nil
}

// Search takes one full snapshot of the store, filters it by the criteria
// and caches the result as the session's last result set. Results are
// sorted by expenditure date for stable display. Zero matches is reported
// via ErrNoResults, which is informational, not a failure.
func (s *Session) Search(ctx context.Context, criteria model.FilterCriteria) ([]model.ExpenseRecord, error) {
	records, err := s.snapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}

	s.lastResults = records
	if len(records) == 0 {
		return nil, common.ErrNoResults
	}
	return records, nil
}

// LastResults returns the session's cached result set from the most recent
// search. It may be stale relative to concurrent writers.
func (s *Session) LastResults() []model.ExpenseRecord {
	return s.lastResults
}

// ExportSearch runs the search and serializes the full records through the
// sink. Unlike the withholding statement this path includes records with no
// payees.
func (s *Session) ExportSearch(ctx context.Context, criteria model.FilterCriteria, sink service.ExportSink) ([]byte, error) {
	records, err := s.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return sink.Write(ctx, report.RecordHeader, report.RecordRows(records))
}

// WithholdingStatement flattens the matching records into one row per
// payee and serializes them through the sink. Records without payees
// contribute no rows; ErrNoResults when nothing remains.
func (s *Session) WithholdingStatement(ctx context.Context, criteria model.FilterCriteria, sink service.ExportSink) ([]byte, error) {
	records, err := s.snapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}

	rows := report.FlattenForExport(records)
	if len(rows) == 0 {
		return nil, common.ErrNoResults
	}
	return sink.Write(ctx, report.WithholdingHeader, report.WithholdingRows(rows))
}

// CategoryTotals aggregates the matching records by account category.
func (s *Session) CategoryTotals(ctx context.Context, criteria model.FilterCriteria) ([]model.CategoryTotal, error) {
	records, err := s.snapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}
	totals := report.AggregateByCategory(records)
	if len(totals) == 0 {
		return nil, common.ErrNoResults
	}
	return totals, nil
}

// snapshot reads all records once and filters them. Each call observes one
// consistent scan; no cross-call consistency is guaranteed.
func (s *Session) snapshot(ctx context.Context, criteria model.FilterCriteria) ([]model.ExpenseRecord, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	all, err := s.store.ScanAll(ctx)
	if err != nil {
		var storeErr *common.StoreError
		if !errors.As(err, &storeErr) {
			err = common.NewStoreError("scan", err)
		}
		return nil, err
	}

	records := query.Filter(all, criteria)
	query.SortByDate(records)
	return records, nil
}
