package awards

import "context"

// Store defines the database operations required by the award service.
type Store interface {
	// Snapshot reads candidates and stat lines inside one transaction.
	Snapshot(ctx context.Context) (Snapshot, error)
	// ReplaceAwards drops the previous award rows and stores res under runID.
	ReplaceAwards(ctx context.Context, runID string, res Result) error
	WriteLog(ctx context.Context, text string) error
}
