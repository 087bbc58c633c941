package export

import (
	"context"
	"sync"
)

// MockSink is a mock implementation of ExportSink for testing.
type MockSink struct {
	WriteFunc      func(ctx context.Context, header []string, rows [][]any) ([]byte, error)
	LastHeader     []string
	LastRows       [][]any
	WriteCallCount int
	mu             sync.Mutex
}

// NewMockSink creates a new mock sink.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Write implements the ExportSink interface.
func (m *MockSink) Write(ctx context.Context, header []string, rows [][]any) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCallCount++
	m.LastHeader = header
	m.LastRows = rows

	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, header, rows)
	}
	return []byte("mock"), nil
}

// Reset clears all recorded calls.
func (m *MockSink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCallCount = 0
	m.LastHeader = nil
	m.LastRows = nil
}
