package awards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/golden-ball/internal/metrics"
	"github.com/mauv0809/golden-ball/internal/pubsub"
	"github.com/sethvargo/go-retry"
)

// ErrSnapshotUnavailable is returned when the snapshot could not be read
// within the configured attempts. Nothing is stored in that case.
var ErrSnapshotUnavailable = errors.New("award snapshot unavailable")

const (
	defaultAttempts = 3
	defaultBackoff  = 200 * time.Millisecond
)

// WithRetry bounds snapshot reads to attempts tries with exponential backoff
// starting at backoff.
func WithRetry(attempts uint64, backoff time.Duration) Option {
	return func(s *Service) {
		if attempts > 0 {
			s.attempts = attempts
		}
		if backoff > 0 {
			s.backoff = backoff
		}
	}
}

// WithRunIDs replaces the run id generator.
func WithRunIDs(gen func() string) Option {
	return func(s *Service) { s.newRunID = gen }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new award Service.
func NewService(store Store, weights Weights, metrics metrics.Metrics, pubsub pubsub.PubSubClient, opts ...Option) *Service {
	s := &Service{
		store:    store,
		pubsub:   pubsub,
		metrics:  metrics,
		weights:  weights,
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
		newRunID: uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the active weight set.
func (s *Service) Weights() Weights {
	return s.weights
}

// Calculate computes the awards from a fresh snapshot and, unless dryRun is
// set, replaces the stored award rows and announces the result.
func (s *Service) Calculate(ctx context.Context, dryRun bool) (*Calculation, error) {
	start := s.now()
	log.Info("Starting award calculation", "dryRun", dryRun)

	snap, err := s.snapshot(ctx)
	if err != nil {
		s.metrics.IncAwardCalculationFailures()
		return nil, err
	}

	calc := &Calculation{
		RunID:        s.newRunID(),
		Result:       Compute(snap, s.weights),
		DryRun:       dryRun,
		CalculatedAt: s.now(),
	}
	log.Info("Awards computed",
		"runID", calc.RunID,
		"candidates", len(snap.Candidates),
		"topScorer", calc.Result.TopScorer,
		"topAssist", calc.Result.TopAssist,
		"winner", calc.Result.WinnerName(),
		"score", calc.Result.WinnerScore(),
	)

	if dryRun {
		log.Info("[Dry Run] Skipping award persistence", "runID", calc.RunID)
		return calc, nil
	}

	if err := s.store.ReplaceAwards(ctx, calc.RunID, calc.Result); err != nil {
		s.metrics.IncAwardCalculationFailures()
		log.Error("Failed to store awards", "error", err, "runID", calc.RunID)
		return nil, fmt.Errorf("failed to store awards: %w", err)
	}
	s.audit(ctx, calc.Result)

	s.metrics.IncAwardCalculations()
	s.metrics.ObserveCalculationDuration(s.now().Sub(start).Seconds())

	event := Event{RunID: calc.RunID, Result: calc.Result, CalculatedAt: calc.CalculatedAt.Unix()}
	if err := s.pubsub.SendMessage(ctx, pubsub.EventAwardsCalculated, event); err != nil {
		// The awards are stored; the announcement can be retriggered.
		log.Error("Failed to publish awards event", "error", err, "runID", calc.RunID)
	}
	return calc, nil
}

// Leaderboard ranks every candidate of a fresh snapshot.
func (s *Service) Leaderboard(ctx context.Context) ([]Standing, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(snap, s.weights), nil
}

func (s *Service) snapshot(ctx context.Context) (Snapshot, error) {
	var (
		snap    Snapshot
		attempt uint64
	)
	backoff := retry.WithMaxRetries(s.attempts-1, retry.NewExponential(s.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			s.metrics.IncSnapshotRetries()
		}
		var err error
		snap, err = s.store.Snapshot(ctx)
		if err != nil {
			log.Warn("Failed to read award snapshot", "error", err, "attempt", attempt, "maxAttempts", s.attempts)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error("Giving up on award snapshot", "error", err, "attempts", attempt)
		return Snapshot{}, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}
	return snap, nil
}

func (s *Service) audit(ctx context.Context, res Result) {
	lines := []string{
		fmt.Sprintf("Awards calculated: top scorer %s, top assist %s", res.TopScorer, res.TopAssist),
	}
	if res.Winner != nil {
		lines = append(lines, fmt.Sprintf("Golden Ball winner: %s (%.2f)", res.Winner.Name, res.Winner.Score))
	} else {
		lines = append(lines, "Golden Ball winner: none")
	}
	for _, line := range lines {
		if err := s.store.WriteLog(ctx, line); err != nil {
			log.Error("Failed to write audit log", "error", err)
		}
	}
}
