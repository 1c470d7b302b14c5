package football

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/awards"
)

// candidatesQuery joins every footballer to their stats, record and club.
// Footballers missing any of the three are left out; the coefficient is optional.
const candidatesQuery = `
	SELECT f.first_name, f.last_name, f.club,
	       ps.goals, ps.assists, ps.clean_sheets,
	       pr.victories, pr.draws, pr.losses,
	       c.victories, c.draws, c.losses,
	       COALESCE(gc.coefficient, 1.0)
	FROM footballers f
	JOIN personal_stats ps ON ps.footballer_id = f.id
	JOIN player_records pr ON pr.footballer_id = f.id
	JOIN clubs c ON c.club_name = f.club
	LEFT JOIN gentleman_coefficients gc ON gc.footballer_id = f.id
	ORDER BY f.id`

const statsQuery = `SELECT player_name, goals, assists, clean_sheets FROM personal_stats ORDER BY id`

// Snapshot reads the award candidates and every stat line in one transaction.
func (s *store) Snapshot(ctx context.Context) (awards.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return awards.Snapshot{}, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	// Read-only; rollback just releases the transaction.
	defer tx.Rollback()

	var snap awards.Snapshot
	if snap.Candidates, err = readCandidates(ctx, tx); err != nil {
		return awards.Snapshot{}, fmt.Errorf("failed to read candidates: %w", err)
	}
	if snap.Stats, err = readStats(ctx, tx); err != nil {
		return awards.Snapshot{}, fmt.Errorf("failed to read stats: %w", err)
	}
	log.Debug("Read award snapshot", "candidates", len(snap.Candidates), "stats", len(snap.Stats))
	return snap, nil
}

func readCandidates(ctx context.Context, tx *sql.Tx) ([]awards.Candidate, error) {
	rows, err := tx.QueryContext(ctx, candidatesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []awards.Candidate
	for rows.Next() {
		var c awards.Candidate
		if err := rows.Scan(
			&c.FirstName, &c.LastName, &c.Club,
			&c.Goals, &c.Assists, &c.CleanSheets,
			&c.PlayerVictories, &c.PlayerDraws, &c.PlayerLosses,
			&c.ClubVictories, &c.ClubDraws, &c.ClubLosses,
			&c.Coefficient,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func readStats(ctx context.Context, tx *sql.Tx) ([]awards.StatLine, error) {
	rows, err := tx.QueryContext(ctx, statsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []awards.StatLine
	for rows.Next() {
		var st awards.StatLine
		if err := rows.Scan(&st.PlayerName, &st.Goals, &st.Assists, &st.CleanSheets); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// ReplaceAwards drops every stored award and Golden Ball row and stores res.
func (s *store) ReplaceAwards(ctx context.Context, runID string, res awards.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{"DELETE FROM awards", "DELETE FROM golden_ball"} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to clear awards: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO awards (run_id, top_scorer, top_assist, calculated_at) VALUES (?, ?, ?, ?)",
		runID, res.TopScorer, res.TopAssist, s.now().Unix(),
	); err != nil {
		return fmt.Errorf("failed to insert award: %w", err)
	}
	if res.Winner != nil {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO golden_ball (run_id, holder, club, score) VALUES (?, ?, ?, ?)",
			runID, res.Winner.Name, res.Winner.Club, res.Winner.Score,
		); err != nil {
			return fmt.Errorf("failed to insert golden ball: %w", err)
		}
	}
	return tx.Commit()
}

// GetAward returns the stored award with its Golden Ball holder, or nil if
// awards were never calculated.
func (s *store) GetAward(ctx context.Context) (*AwardRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		rec          AwardRecord
		calculatedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT run_id, top_scorer, top_assist, calculated_at FROM awards ORDER BY id DESC LIMIT 1",
	).Scan(&rec.RunID, &rec.TopScorer, &rec.TopAssist, &calculatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.CalculatedAt = time.Unix(calculatedAt, 0).UTC()

	var gb GoldenBallRecord
	err = s.db.QueryRowContext(ctx,
		"SELECT id, run_id, holder, club, score FROM golden_ball WHERE run_id = ? ORDER BY id LIMIT 1", rec.RunID,
	).Scan(&gb.ID, &gb.RunID, &gb.Holder, &gb.Club, &gb.Score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, err
	default:
		rec.GoldenBall = &gb
	}
	return &rec, nil
}

// GetGoldenBall lists the stored Golden Ball holders.
func (s *store) GetGoldenBall(ctx context.Context) ([]GoldenBallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, run_id, holder, club, score FROM golden_ball ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holders := make([]GoldenBallRecord, 0)
	for rows.Next() {
		var gb GoldenBallRecord
		if err := rows.Scan(&gb.ID, &gb.RunID, &gb.Holder, &gb.Club, &gb.Score); err != nil {
			return nil, err
		}
		holders = append(holders, gb)
	}
	return holders, rows.Err()
}
