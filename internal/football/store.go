package football

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultMaxFootballers caps the roster when no limit is configured.
const DefaultMaxFootballers = 30

// New creates a new FootballStore.
func New(db *sql.DB, maxFootballers int) FootballStore {
	if maxFootballers <= 0 {
		maxFootballers = DefaultMaxFootballers
	}
	return &store{
		db:             db,
		maxFootballers: maxFootballers,
		now:            time.Now,
	}
}

// AddFootballer stores a player vote: the footballer, their stats, their
// record and optional coefficient, and adds their record to the club's.
func (s *store) AddFootballer(ctx context.Context, vote PlayerVote) (int64, error) {
	vote.Normalize()
	if err := vote.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM footballers").Scan(&count); err != nil {
		return 0, err
	}
	if count >= s.maxFootballers {
		log.Warn("Roster is full, rejecting player vote", "count", count, "max", s.maxFootballers)
		return 0, fmt.Errorf("%w (%d)", ErrRosterFull, s.maxFootballers)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO footballers (first_name, last_name, age, club, created_at) VALUES (?, ?, ?, ?, ?)",
		vote.FirstName, vote.LastName, vote.Age, vote.Club, s.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert footballer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	fullName := vote.FullName()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO personal_stats (footballer_id, player_name, goals, assists, clean_sheets) VALUES (?, ?, ?, ?, ?)",
		id, fullName, vote.Goals, vote.Assists, vote.CleanSheets,
	); err != nil {
		return 0, fmt.Errorf("failed to insert personal stats: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO player_records (footballer_id, player_name, victories, losses, draws) VALUES (?, ?, ?, ?, ?)",
		id, fullName, vote.Victories, vote.Losses, vote.Draws,
	); err != nil {
		return 0, fmt.Errorf("failed to insert player record: %w", err)
	}
	if vote.Coefficient != nil {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO gentleman_coefficients (footballer_id, footballer, coefficient) VALUES (?, ?, ?)",
			id, fullName, *vote.Coefficient,
		); err != nil {
			return 0, fmt.Errorf("failed to insert gentleman coefficient: %w", err)
		}
	}

	// The player's record counts towards their club's record.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO clubs (club_name, victories, losses, draws) VALUES (?, ?, ?, ?)
		ON CONFLICT(club_name) DO UPDATE SET
			victories = victories + excluded.victories,
			losses = losses + excluded.losses,
			draws = draws + excluded.draws;
	`, vote.Club, vote.Victories, vote.Losses, vote.Draws); err != nil {
		return 0, fmt.Errorf("failed to update club record: %w", err)
	}

	if err := s.writeLogTx(ctx, tx, fmt.Sprintf("Added footballer %s (%s)", fullName, vote.Club)); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info("Added footballer", "id", id, "name", fullName, "club", vote.Club)
	return id, nil
}

// VoteClub adds the voted trophies to the club and records one trophy row per win.
func (s *store) VoteClub(ctx context.Context, vote ClubVote) error {
	vote.Normalize()
	if err := vote.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO clubs (club_name, super_cup, champion_league, national_championship, cup) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(club_name) DO UPDATE SET
			super_cup = super_cup + excluded.super_cup,
			champion_league = champion_league + excluded.champion_league,
			national_championship = national_championship + excluded.national_championship,
			cup = cup + excluded.cup;
	`, vote.ClubName, vote.SuperCup, vote.ChampionLeague, vote.NationalChampionship, vote.Cup); err != nil {
		return fmt.Errorf("failed to upsert club: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO trophies (club_name, trophy_type) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, t := range vote.trophies() {
		for i := 0; i < t.count; i++ {
			if _, err := stmt.ExecContext(ctx, vote.ClubName, string(t.kind)); err != nil {
				return fmt.Errorf("failed to insert trophy: %w", err)
			}
		}
	}

	if err := s.writeLogTx(ctx, tx, fmt.Sprintf("Added or updated club %s", vote.ClubName)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Recorded club vote", "club", vote.ClubName)
	return nil
}

// ListFootballers returns every footballer in insertion order.
func (s *store) ListFootballers(ctx context.Context) ([]Footballer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, first_name, last_name, age, club, created_at FROM footballers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var footballers []Footballer
	for rows.Next() {
		var f Footballer
		var createdAt int64
		if err := rows.Scan(&f.ID, &f.FirstName, &f.LastName, &f.Age, &f.Club, &createdAt); err != nil {
			return nil, err
		}
		f.CreatedAt = time.Unix(createdAt, 0).UTC()
		footballers = append(footballers, f)
	}
	return footballers, rows.Err()
}

// ListClubs returns every club in name order.
func (s *store) ListClubs(ctx context.Context) ([]Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, club_name, champion_league, national_championship, cup, super_cup, victories, losses, draws
		FROM clubs ORDER BY club_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []Club
	for rows.Next() {
		var c Club
		if err := rows.Scan(&c.ID, &c.Name, &c.ChampionLeague, &c.NationalChampionship, &c.Cup, &c.SuperCup, &c.Victories, &c.Losses, &c.Draws); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

// WriteLog appends an audit log line.
func (s *store) WriteLog(ctx context.Context, text string) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO audit_logs (text, created_at) VALUES (?, ?)", text, s.now().Unix())
	if err != nil {
		log.Error("Failed to write audit log", "error", err)
	}
	return err
}

func (s *store) writeLogTx(ctx context.Context, tx *sql.Tx, text string) error {
	_, err := tx.ExecContext(ctx, "INSERT INTO audit_logs (text, created_at) VALUES (?, ?)", text, s.now().Unix())
	return err
}

// RecentLogs returns the n newest audit lines, newest first.
func (s *store) RecentLogs(ctx context.Context, n int) ([]LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recentLogs(ctx, n)
}

func (s *store) recentLogs(ctx context.Context, n int) ([]LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, text, created_at FROM audit_logs ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]LogEntry, 0, n)
	for rows.Next() {
		var e LogEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Text, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(createdAt, 0).UTC()
		logs = append(logs, e)
	}
	return logs, rows.Err()
}

// Summary counts the stored entities and returns the latest audit lines.
func (s *store) Summary(ctx context.Context, recentLogs int) (*Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := &Summary{}
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM footballers", &sum.Footballers},
		{"SELECT COUNT(*) FROM clubs", &sum.Clubs},
		{"SELECT COUNT(*) FROM trophies", &sum.Trophies},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count: %w", err)
		}
	}
	logs, err := s.recentLogs(ctx, recentLogs)
	if err != nil {
		return nil, err
	}
	sum.RecentLogs = logs
	return sum, nil
}
