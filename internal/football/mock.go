package football

import (
	"context"
	"sync"

	"github.com/mauv0809/golden-ball/internal/awards"
)

var _ FootballStore = (*Mock)(nil)

// Mock is a mock implementation of the FootballStore interface for testing.
// Unset spies return zero values. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	AddFootballerFunc   func(vote PlayerVote) (int64, error)
	VoteClubFunc        func(vote ClubVote) error
	ListFootballersFunc func() ([]Footballer, error)
	ListClubsFunc       func() ([]Club, error)
	SnapshotFunc        func() (awards.Snapshot, error)
	ReplaceAwardsFunc   func(runID string, res awards.Result) error
	GetAwardFunc        func() (*AwardRecord, error)
	GetGoldenBallFunc   func() ([]GoldenBallRecord, error)
	SummaryFunc         func(recentLogs int) (*Summary, error)
	RecentLogsFunc      func(n int) ([]LogEntry, error)
	DeleteRecordFunc    func(kind RecordKind, id int64) error

	// Call records
	AddFootballerCalls []PlayerVote
	VoteClubCalls      []ClubVote
	ReplaceAwardsCalls []awards.Result
	WriteLogCalls      []string
	DeleteRecordCalls  []DeleteRecordCall
}

// DeleteRecordCall holds the arguments for a call to DeleteRecord.
type DeleteRecordCall struct {
	Kind RecordKind
	ID   int64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) AddFootballer(ctx context.Context, vote PlayerVote) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddFootballerCalls = append(m.AddFootballerCalls, vote)
	if m.AddFootballerFunc != nil {
		return m.AddFootballerFunc(vote)
	}
	return int64(len(m.AddFootballerCalls)), nil
}

func (m *Mock) VoteClub(ctx context.Context, vote ClubVote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VoteClubCalls = append(m.VoteClubCalls, vote)
	if m.VoteClubFunc != nil {
		return m.VoteClubFunc(vote)
	}
	return nil
}

func (m *Mock) ListFootballers(ctx context.Context) ([]Footballer, error) {
	if m.ListFootballersFunc != nil {
		return m.ListFootballersFunc()
	}
	return nil, nil
}

func (m *Mock) ListClubs(ctx context.Context) ([]Club, error) {
	if m.ListClubsFunc != nil {
		return m.ListClubsFunc()
	}
	return nil, nil
}

func (m *Mock) Snapshot(ctx context.Context) (awards.Snapshot, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return awards.Snapshot{}, nil
}

func (m *Mock) ReplaceAwards(ctx context.Context, runID string, res awards.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceAwardsCalls = append(m.ReplaceAwardsCalls, res)
	if m.ReplaceAwardsFunc != nil {
		return m.ReplaceAwardsFunc(runID, res)
	}
	return nil
}

func (m *Mock) WriteLog(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteLogCalls = append(m.WriteLogCalls, text)
	return nil
}

func (m *Mock) GetAward(ctx context.Context) (*AwardRecord, error) {
	if m.GetAwardFunc != nil {
		return m.GetAwardFunc()
	}
	return nil, nil
}

func (m *Mock) GetGoldenBall(ctx context.Context) ([]GoldenBallRecord, error) {
	if m.GetGoldenBallFunc != nil {
		return m.GetGoldenBallFunc()
	}
	return nil, nil
}

func (m *Mock) Summary(ctx context.Context, recentLogs int) (*Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(recentLogs)
	}
	return &Summary{}, nil
}

func (m *Mock) RecentLogs(ctx context.Context, n int) ([]LogEntry, error) {
	if m.RecentLogsFunc != nil {
		return m.RecentLogsFunc(n)
	}
	return nil, nil
}

func (m *Mock) DeleteRecord(ctx context.Context, kind RecordKind, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteRecordCalls = append(m.DeleteRecordCalls, DeleteRecordCall{Kind: kind, ID: id})
	if m.DeleteRecordFunc != nil {
		return m.DeleteRecordFunc(kind, id)
	}
	return nil
}
