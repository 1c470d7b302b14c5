package chatbot

import (
	"context"
	"sync"
)

var _ Store = (*MockStore)(nil)

// MockStore is an in-memory Store for tests. Setting a *Err field makes the
// matching call fail.
type MockStore struct {
	mu sync.Mutex

	sessions map[string]Session
	players  []PlayerEntry
	clubs    []ClubEntry

	LoadErr error
	SaveErr error
	AddErr  error
	ListErr error

	SaveSessionCalls int
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{sessions: map[string]Session{}}
}

func (m *MockStore) LoadSession(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	sess, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	sess.Counts = append([]int(nil), sess.Counts...)
	return &sess, nil
}

func (m *MockStore) SaveSession(ctx context.Context, userID string, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveSessionCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *sess
	cp.Counts = append([]int(nil), sess.Counts...)
	m.sessions[userID] = cp
	return nil
}

func (m *MockStore) ClearSession(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

func (m *MockStore) AddPlayer(ctx context.Context, e PlayerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddErr != nil {
		return m.AddErr
	}
	m.players = append(m.players, e)
	return nil
}

func (m *MockStore) AddClub(ctx context.Context, e ClubEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddErr != nil {
		return m.AddErr
	}
	m.clubs = append(m.clubs, e)
	return nil
}

// Players ignores ordering beyond insertion; tests add entries in date order.
func (m *MockStore) Players(ctx context.Context, date string) ([]PlayerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []PlayerEntry
	for _, p := range m.players {
		if date == "" || p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockStore) Clubs(ctx context.Context, date string) ([]ClubEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []ClubEntry
	for _, c := range m.clubs {
		if date == "" || c.Date == date {
			out = append(out, c)
		}
	}
	return out, nil
}

// Session returns a copy of the stored session for userID.
func (m *MockStore) Session(userID string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	return s, ok
}
