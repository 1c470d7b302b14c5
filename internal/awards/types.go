package awards

import (
	"strings"
	"time"

	"github.com/mauv0809/golden-ball/internal/metrics"
	"github.com/mauv0809/golden-ball/internal/pubsub"
)

// Undetermined is reported for the top scorer and top assist when there are no stat lines.
const Undetermined = "Not determined"

// DefaultCoefficient is applied to candidates without a gentleman coefficient.
const DefaultCoefficient = 1.0

// Candidate is one fully joined footballer row considered for the Golden Ball.
type Candidate struct {
	FirstName string
	LastName  string
	Club      string

	Goals       int
	Assists     int
	CleanSheets int

	PlayerVictories int
	PlayerDraws     int
	PlayerLosses    int

	ClubVictories int
	ClubDraws     int
	ClubLosses    int

	// Coefficient is the gentleman (fair play) multiplier. Zero means absent.
	Coefficient float64
}

// FullName returns "first last".
func (c Candidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// StatLine is a personal stats row read without any join.
type StatLine struct {
	PlayerName  string
	Goals       int
	Assists     int
	CleanSheets int
}

// Snapshot is everything the engine reads, gathered at a single instant.
// Candidates and Stats are both in storage insertion order.
type Snapshot struct {
	Candidates []Candidate
	Stats      []StatLine
}

// Weights are the per-field multipliers of the Golden Ball score.
type Weights struct {
	Goals       float64
	Assists     float64
	CleanSheets float64
	Victories   float64
	Draws       float64
	Losses      float64
}

// Policy names a weight set.
type Policy string

const (
	PolicyUniform  Policy = "uniform"
	PolicyWeighted Policy = "weighted"
)

// Winner is the Golden Ball holder.
type Winner struct {
	Name  string  `json:"name" msgpack:"name"`
	Club  string  `json:"club" msgpack:"club"`
	Score float64 `json:"score" msgpack:"score"`
}

// Result is the outcome of one computation.
type Result struct {
	TopScorer string  `json:"top_scorer" msgpack:"top_scorer"`
	TopAssist string  `json:"top_assist" msgpack:"top_assist"`
	Winner    *Winner `json:"winner,omitempty" msgpack:"winner,omitempty"`
}

// Standing is one row of the leaderboard.
type Standing struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Club  string  `json:"club"`
	Score float64 `json:"score"`
}

// Calculation is a computed result together with the run that produced it.
type Calculation struct {
	RunID        string    `json:"run_id"`
	Result       Result    `json:"result"`
	DryRun       bool      `json:"dry_run"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// Event is published after a calculation has been stored.
type Event struct {
	RunID        string `msgpack:"run_id"`
	Result       Result `msgpack:"result"`
	CalculatedAt int64  `msgpack:"calculated_at"`
}

// Service gathers snapshots, runs the engine and stores the outcome.
type Service struct {
	store    Store
	pubsub   pubsub.PubSubClient
	metrics  metrics.Metrics
	weights  Weights
	attempts uint64
	backoff  time.Duration
	newRunID func() string
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)
