package chatbot

import "context"

// Store persists wizard sessions and the dated player and club notes.
type Store interface {
	// LoadSession returns nil when the user has no wizard in progress.
	LoadSession(ctx context.Context, userID string) (*Session, error)
	SaveSession(ctx context.Context, userID string, sess *Session) error
	ClearSession(ctx context.Context, userID string) error
	AddPlayer(ctx context.Context, entry PlayerEntry) error
	AddClub(ctx context.Context, entry ClubEntry) error
	// Players lists entries ordered by date then insertion. An empty date
	// lists every date.
	Players(ctx context.Context, date string) ([]PlayerEntry, error)
	Clubs(ctx context.Context, date string) ([]ClubEntry, error)
}
