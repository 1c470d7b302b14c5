package football

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// RecordKind names a deletable entity. The set is closed.
type RecordKind string

const (
	KindFootballer           RecordKind = "footballer"
	KindClub                 RecordKind = "club"
	KindPersonalStats        RecordKind = "personal_stats"
	KindPlayerRecord         RecordKind = "player_record"
	KindGentlemanCoefficient RecordKind = "gentleman_coefficient"
	KindTrophy               RecordKind = "trophy"
	KindAward                RecordKind = "award"
	KindGoldenBall           RecordKind = "golden_ball"
	KindAuditLog             RecordKind = "audit_log"
)

// deleteFunc removes one record of a kind inside tx. It reports whether the
// record existed.
type deleteFunc func(ctx context.Context, tx *sql.Tx, id int64) (bool, error)

var deleters = map[RecordKind]deleteFunc{
	KindFootballer:           deleteFootballer,
	KindClub:                 deleteClub,
	KindPersonalStats:        deleteByID("DELETE FROM personal_stats WHERE id = ?"),
	KindPlayerRecord:         deleteByID("DELETE FROM player_records WHERE id = ?"),
	KindGentlemanCoefficient: deleteByID("DELETE FROM gentleman_coefficients WHERE id = ?"),
	KindTrophy:               deleteByID("DELETE FROM trophies WHERE id = ?"),
	KindAward:                deleteByID("DELETE FROM awards WHERE id = ?"),
	KindGoldenBall:           deleteByID("DELETE FROM golden_ball WHERE id = ?"),
	KindAuditLog:             deleteByID("DELETE FROM audit_logs WHERE id = ?"),
}

// ParseRecordKind resolves a kind name from user input.
func ParseRecordKind(s string) (RecordKind, error) {
	k := RecordKind(s)
	if _, ok := deleters[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordKind, s)
	}
	return k, nil
}

// RecordKinds lists every deletable kind in name order.
func RecordKinds() []RecordKind {
	kinds := make([]RecordKind, 0, len(deleters))
	for k := range deleters {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// DeleteRecord removes one record and whatever depends on it.
func (s *store) DeleteRecord(ctx context.Context, kind RecordKind, id int64) error {
	del, ok := deleters[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRecordKind, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	found, err := del(ctx, tx, id)
	if err != nil {
		log.Error("Failed to delete record", "error", err, "kind", kind, "id", id)
		return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
	}
	if !found {
		return fmt.Errorf("%w: %s %d", ErrRecordNotFound, kind, id)
	}
	if err := s.writeLogTx(ctx, tx, fmt.Sprintf("Deleted %s id=%d", kind, id)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Deleted record", "kind", kind, "id", id)
	return nil
}

func deleteByID(query string) deleteFunc {
	return func(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
		res, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return false, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// deleteFootballer removes the footballer with their stats, record and coefficient.
func deleteFootballer(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	dependents := []string{
		"DELETE FROM personal_stats WHERE footballer_id = ?",
		"DELETE FROM player_records WHERE footballer_id = ?",
		"DELETE FROM gentleman_coefficients WHERE footballer_id = ?",
	}
	for _, q := range dependents {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return false, err
		}
	}
	return deleteByID("DELETE FROM footballers WHERE id = ?")(ctx, tx, id)
}

// deleteClub removes the club and its trophies and detaches its footballers.
func deleteClub(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	var name string
	err := tx.QueryRowContext(ctx, "SELECT club_name FROM clubs WHERE id = ?", id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM trophies WHERE club_name = ?", name); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE footballers SET club = '' WHERE club = ?", name); err != nil {
		return false, err
	}
	return deleteByID("DELETE FROM clubs WHERE id = ?")(ctx, tx, id)
}
