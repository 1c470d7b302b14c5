package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		VotesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_votes_recorded_total",
			Help: "The total number of accepted votes, by kind.",
		}, []string{"kind"}),
		AwardCalculations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_award_calculations_total",
			Help: "The total number of stored award calculations.",
		}),
		AwardCalculationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_award_calculation_failures_total",
			Help: "The total number of award calculations that failed.",
		}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "football_award_calculation_duration_seconds",
			Help:    "The duration of an award calculation, snapshot included.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SnapshotRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_snapshot_retries_total",
			Help: "The total number of retried award snapshot reads.",
		}),
		BotMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_bot_messages_total",
			Help: "The total number of chat bot messages handled, by command.",
		}, []string{"command"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "football_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.VotesRecorded,
		s.AwardCalculations,
		s.AwardCalculationFailures,
		s.CalculationDuration,
		s.SnapshotRetries,
		s.BotMessages,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncVotesRecorded(kind string) {
	s.VotesRecorded.WithLabelValues(kind).Inc()
}

func (s *Service) IncAwardCalculations() {
	s.AwardCalculations.Inc()
}

func (s *Service) IncAwardCalculationFailures() {
	s.AwardCalculationFailures.Inc()
}

func (s *Service) ObserveCalculationDuration(duration float64) {
	s.CalculationDuration.Observe(duration)
}

func (s *Service) IncSnapshotRetries() {
	s.SnapshotRetries.Inc()
}

func (s *Service) IncBotMessages(command string) {
	s.BotMessages.WithLabelValues(command).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
