package football

import (
	"context"

	"github.com/mauv0809/golden-ball/internal/awards"
)

// FootballStore defines the interface for interacting with the football data.
type FootballStore interface {
	awards.Store

	AddFootballer(ctx context.Context, vote PlayerVote) (int64, error)
	VoteClub(ctx context.Context, vote ClubVote) error
	ListFootballers(ctx context.Context) ([]Footballer, error)
	ListClubs(ctx context.Context) ([]Club, error)

	GetAward(ctx context.Context) (*AwardRecord, error)
	GetGoldenBall(ctx context.Context) ([]GoldenBallRecord, error)

	Summary(ctx context.Context, recentLogs int) (*Summary, error)
	RecentLogs(ctx context.Context, n int) ([]LogEntry, error)
	DeleteRecord(ctx context.Context, kind RecordKind, id int64) error
}
