package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncVotesRecorded(kind string)
	IncAwardCalculations()
	IncAwardCalculationFailures()
	ObserveCalculationDuration(duration float64)
	IncSnapshotRetries()
	IncBotMessages(command string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
