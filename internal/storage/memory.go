package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/model"
)

// MemoryStore is an in-memory service.Store used by tests and dry runs.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]model.ExpenseRecord
	keys []string

	// FailNext, when set, makes the next mutating or scanning call fail
	// with a StoreError. Used to exercise failure paths in tests.
	FailNext bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]model.ExpenseRecord)}
}

func (s *MemoryStore) failIfArmed(op string) error {
	if s.FailNext {
		s.FailNext = false
		return common.NewStoreError(op, fmt.Errorf("injected failure"))
	}
	return nil
}

// Put stores a copy of the record under a fresh key.
func (s *MemoryStore) Put(_ context.Context, record *model.ExpenseRecord) (string, error) {
	if err := validateRecord(record); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failIfArmed("put"); err != nil {
		return "", err
	}

	key := record.Key
	if key == "" {
		key = uuid.NewString()
	}
	record.Key = key
	s.docs[key] = *record
	s.keys = append(s.keys, key)
	return key, nil
}

// Get returns the record under key, or common.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) (*model.ExpenseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.docs[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &record, nil
}

// Update merges a field patch into the stored document. The record round-trips
// through its JSON document form so patches address stored field names.
func (s *MemoryStore) Update(_ context.Context, key string, patch map[string]any) error {
	if err := validatePatch(patch); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failIfArmed("update"); err != nil {
		return err
	}

	record, ok := s.docs[key]
	if !ok {
		return common.ErrNotFound
	}

	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return err
	}
	for k, v := range patch {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var updated model.ExpenseRecord
	if err := json.Unmarshal(merged, &updated); err != nil {
		return fmt.Errorf("patch produced an invalid record: %w", err)
	}
	updated.Key = key
	s.docs[key] = updated
	return nil
}

// Delete removes the record under key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failIfArmed("delete"); err != nil {
		return err
	}
	if _, ok := s.docs[key]; !ok {
		return common.ErrNotFound
	}
	delete(s.docs, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return nil
}

// ScanAll returns all records in insertion order.
func (s *MemoryStore) ScanAll(_ context.Context) ([]model.ExpenseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failIfArmed("scan"); err != nil {
		return nil, err
	}
	out := make([]model.ExpenseRecord, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.docs[k])
	}
	return out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
