package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	VotesRecorded            *prometheus.CounterVec
	AwardCalculations        prometheus.Counter
	AwardCalculationFailures prometheus.Counter
	CalculationDuration      prometheus.Histogram
	SnapshotRetries          prometheus.Counter
	BotMessages              *prometheus.CounterVec
	SlackNotifSent           prometheus.Counter
	SlackNotifFailed         prometheus.Counter
	StartupTimeSeconds       prometheus.Gauge
}
