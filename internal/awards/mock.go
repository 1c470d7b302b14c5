package awards

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	SnapshotFunc      func(ctx context.Context) (Snapshot, error)
	ReplaceAwardsFunc func(ctx context.Context, runID string, res Result) error
	WriteLogFunc      func(ctx context.Context, text string) error

	SnapshotCalls      int
	ReplaceAwardsCalls []ReplaceAwardsCall
	WriteLogCalls      []string
}

// ReplaceAwardsCall holds the arguments for a call to ReplaceAwards.
type ReplaceAwardsCall struct {
	RunID  string
	Result Result
}

// NewMockStore creates a new mock store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Snapshot(ctx context.Context) (Snapshot, error) {
	m.mu.Lock()
	m.SnapshotCalls++
	fn := m.SnapshotFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return Snapshot{}, nil
}

func (m *MockStore) ReplaceAwards(ctx context.Context, runID string, res Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceAwardsCalls = append(m.ReplaceAwardsCalls, ReplaceAwardsCall{RunID: runID, Result: res})
	if m.ReplaceAwardsFunc != nil {
		return m.ReplaceAwardsFunc(ctx, runID, res)
	}
	return nil
}

func (m *MockStore) WriteLog(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteLogCalls = append(m.WriteLogCalls, text)
	if m.WriteLogFunc != nil {
		return m.WriteLogFunc(ctx, text)
	}
	return nil
}
