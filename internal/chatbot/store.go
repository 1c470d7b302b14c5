package chatbot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// NewStore creates a Store on db.
func NewStore(db *sql.DB) Store {
	return &store{db: db, now: time.Now}
}

func (s *store) LoadSession(ctx context.Context, userID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob []byte
	err := s.db.QueryRowContext(ctx, "SELECT state FROM bot_sessions WHERE user_id = ?", userID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := msgpack.Unmarshal(blob, &sess); err != nil {
		log.Warn("Discarding unreadable bot session", "user", userID, "error", err)
		return nil, nil
	}
	return &sess, nil
}

func (s *store) SaveSession(ctx context.Context, userID string, sess *Session) error {
	blob, err := msgpack.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bot_sessions (user_id, state, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		userID, blob, s.now().Unix(),
	)
	return err
}

func (s *store) ClearSession(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM bot_sessions WHERE user_id = ?", userID)
	return err
}

func (s *store) AddPlayer(ctx context.Context, e PlayerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO bot_players (date_label, name, goals, assists, clean_sheets, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.Date, e.Name, e.Goals, e.Assists, e.CleanSheets, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bot player: %w", err)
	}
	return nil
}

func (s *store) AddClub(ctx context.Context, e ClubEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO bot_clubs (date_label, name, super_cups, cups, championships, champions_leagues, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.Date, e.Name, e.SuperCups, e.Cups, e.Championships, e.ChampionsLeagues, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bot club: %w", err)
	}
	return nil
}

func (s *store) Players(ctx context.Context, date string) ([]PlayerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT date_label, name, goals, assists, clean_sheets FROM bot_players
		WHERE ? = '' OR date_label = ?
		ORDER BY date_label, id`, date, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerEntry
	for rows.Next() {
		var e PlayerEntry
		if err := rows.Scan(&e.Date, &e.Name, &e.Goals, &e.Assists, &e.CleanSheets); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *store) Clubs(ctx context.Context, date string) ([]ClubEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT date_label, name, super_cups, cups, championships, champions_leagues FROM bot_clubs
		WHERE ? = '' OR date_label = ?
		ORDER BY date_label, id`, date, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClubEntry
	for rows.Next() {
		var e ClubEntry
		if err := rows.Scan(&e.Date, &e.Name, &e.SuperCups, &e.Cups, &e.Championships, &e.ChampionsLeagues); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
