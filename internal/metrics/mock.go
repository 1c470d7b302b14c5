package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                       sync.Mutex
	votesRecorded            map[string]int
	awardCalculations        int
	awardCalculationFailures int
	calculationDurations     []float64
	snapshotRetries          int
	botMessages              map[string]int
	slackNotifSent           int
	slackNotifFailed         int
	startupTime              float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		votesRecorded:        make(map[string]int),
		botMessages:          make(map[string]int),
		calculationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncVotesRecorded(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.votesRecorded[kind]++
}

func (m *Mock) IncAwardCalculations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.awardCalculations++
}

func (m *Mock) IncAwardCalculationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.awardCalculationFailures++
}

func (m *Mock) ObserveCalculationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calculationDurations = append(m.calculationDurations, duration)
}

func (m *Mock) IncSnapshotRetries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotRetries++
}

func (m *Mock) IncBotMessages(command string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.botMessages[command]++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// VotesRecorded returns how often IncVotesRecorded was called for kind.
func (m *Mock) VotesRecorded(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.votesRecorded[kind]
}

// AwardCalculations returns the number of times IncAwardCalculations was called.
func (m *Mock) AwardCalculations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.awardCalculations
}

// AwardCalculationFailures returns the number of times IncAwardCalculationFailures was called.
func (m *Mock) AwardCalculationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.awardCalculationFailures
}

// CalculationDurations returns every observed calculation duration.
func (m *Mock) CalculationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.calculationDurations...)
}

// SnapshotRetries returns the number of times IncSnapshotRetries was called.
func (m *Mock) SnapshotRetries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotRetries
}

// BotMessages returns how often IncBotMessages was called for command.
func (m *Mock) BotMessages(command string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.botMessages[command]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
