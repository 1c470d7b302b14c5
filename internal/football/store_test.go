package football_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/database"
	"github.com/mauv0809/golden-ball/internal/football"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T, maxFootballers int) (football.FootballStore, *sql.DB) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return football.New(db, maxFootballers), db
}

func coef(v float64) *float64 { return &v }

func haaland() football.PlayerVote {
	return football.PlayerVote{
		FirstName: "Erling", LastName: "Haaland", Age: 24, Club: "Manchester City",
		Victories: 1, Losses: 0, Draws: 0,
		Goals: 10, Assists: 5, CleanSheets: 2,
		Coefficient: coef(2.0),
	}
}

func TestAddFootballer(t *testing.T) {
	ctx := context.Background()
	store, db := setupTestDB(t, 0)

	id, err := store.AddFootballer(ctx, haaland())
	require.NoError(t, err)
	assert.Positive(t, id)

	footballers, err := store.ListFootballers(ctx)
	require.NoError(t, err)
	require.Len(t, footballers, 1)
	assert.Equal(t, "Erling", footballers[0].FirstName)
	assert.Equal(t, "Manchester City", footballers[0].Club)

	clubs, err := store.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Manchester City", clubs[0].Name)
	assert.Equal(t, 1, clubs[0].Victories)
	assert.Zero(t, clubs[0].SuperCup)

	var coefficient float64
	require.NoError(t, db.QueryRow("SELECT coefficient FROM gentleman_coefficients WHERE footballer_id = ?", id).Scan(&coefficient))
	assert.Equal(t, 2.0, coefficient)

	logs, err := store.RecentLogs(ctx, 5)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Text, "Erling Haaland")
}

func TestAddFootballer_AccumulatesClubRecord(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestDB(t, 0)

	first := haaland()
	first.Victories, first.Losses, first.Draws = 3, 1, 2
	second := haaland()
	second.FirstName, second.LastName = "Phil", "Foden"
	second.Victories, second.Losses, second.Draws = 2, 0, 1

	_, err := store.AddFootballer(ctx, first)
	require.NoError(t, err)
	_, err = store.AddFootballer(ctx, second)
	require.NoError(t, err)

	clubs, err := store.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, 5, clubs[0].Victories)
	assert.Equal(t, 1, clubs[0].Losses)
	assert.Equal(t, 3, clubs[0].Draws)
}

func TestAddFootballer_RosterFull(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestDB(t, 2)

	for _, last := range []string{"One", "Two"} {
		v := haaland()
		v.LastName = last
		_, err := store.AddFootballer(ctx, v)
		require.NoError(t, err)
	}

	_, err := store.AddFootballer(ctx, haaland())
	assert.ErrorIs(t, err, football.ErrRosterFull)

	footballers, err := store.ListFootballers(ctx)
	require.NoError(t, err)
	assert.Len(t, footballers, 2)
}

func TestAddFootballer_RejectsInvalidVote(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestDB(t, 0)

	v := haaland()
	v.Goals = 101
	_, err := store.AddFootballer(ctx, v)

	var verr *football.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "goals", verr.Field)

	footballers, err := store.ListFootballers(ctx)
	require.NoError(t, err)
	assert.Empty(t, footballers)
}

func TestVoteClub(t *testing.T) {
	ctx := context.Background()
	store, db := setupTestDB(t, 0)

	require.NoError(t, store.VoteClub(ctx, football.ClubVote{ClubName: "Real Madrid", ChampionLeague: 2, Cup: 1}))
	require.NoError(t, store.VoteClub(ctx, football.ClubVote{ClubName: "Real Madrid", ChampionLeague: 1, SuperCup: 2}))

	clubs, err := store.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, 3, clubs[0].ChampionLeague)
	assert.Equal(t, 1, clubs[0].Cup)
	assert.Equal(t, 2, clubs[0].SuperCup)

	var trophies int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM trophies WHERE club_name = 'Real Madrid'").Scan(&trophies))
	assert.Equal(t, 6, trophies)

	err = store.VoteClub(ctx, football.ClubVote{ClubName: "Real Madrid", Cup: 3})
	var verr *football.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cup", verr.Field)
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	store, db := setupTestDB(t, 0)

	_, err := store.AddFootballer(ctx, haaland())
	require.NoError(t, err)

	// Same last name, different first name: must not collide.
	other := haaland()
	other.FirstName = "Alf-Inge"
	other.Goals = 1
	other.Coefficient = nil
	_, err = store.AddFootballer(ctx, other)
	require.NoError(t, err)

	// A footballer whose club row is gone is excluded from candidacy but
	// still counts for the top scorer.
	clubless := haaland()
	clubless.FirstName, clubless.LastName, clubless.Club = "Kylian", "Mbappe", "Paris"
	clubless.Goals = 12
	_, err = store.AddFootballer(ctx, clubless)
	require.NoError(t, err)
	_, err = db.Exec("DELETE FROM clubs WHERE club_name = 'Paris'")
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snap.Candidates, 2)
	assert.Equal(t, "Erling", snap.Candidates[0].FirstName)
	assert.Equal(t, 10, snap.Candidates[0].Goals)
	assert.Equal(t, 2.0, snap.Candidates[0].Coefficient)
	assert.Equal(t, "Alf-Inge", snap.Candidates[1].FirstName)
	assert.Equal(t, 1, snap.Candidates[1].Goals)
	assert.Equal(t, awards.DefaultCoefficient, snap.Candidates[1].Coefficient)
	assert.Equal(t, 2, snap.Candidates[1].ClubVictories, "club record includes both players")

	require.Len(t, snap.Stats, 3)
	assert.Equal(t, "Kylian Mbappe", snap.Stats[2].PlayerName)

	res := awards.Compute(snap, awards.WeightedWeights)
	assert.Equal(t, "Kylian Mbappe", res.TopScorer)
	assert.Equal(t, "Erling Haaland", res.WinnerName())
}

func TestReplaceAwards(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestDB(t, 0)

	award, err := store.GetAward(ctx)
	require.NoError(t, err)
	assert.Nil(t, award)

	first := awards.Result{TopScorer: "A", TopAssist: "B", Winner: &awards.Winner{Name: "A", Club: "X", Score: 10}}
	require.NoError(t, store.ReplaceAwards(ctx, "run-1", first))

	second := awards.Result{TopScorer: "C", TopAssist: "D", Winner: &awards.Winner{Name: "C", Club: "Y", Score: 20}}
	require.NoError(t, store.ReplaceAwards(ctx, "run-2", second))

	award, err = store.GetAward(ctx)
	require.NoError(t, err)
	require.NotNil(t, award)
	assert.Equal(t, "run-2", award.RunID)
	assert.Equal(t, "C", award.TopScorer)
	require.NotNil(t, award.GoldenBall)
	assert.Equal(t, "C", award.GoldenBall.Holder)

	holders, err := store.GetGoldenBall(ctx)
	require.NoError(t, err)
	require.Len(t, holders, 1, "previous holders are replaced")
	assert.Equal(t, 20.0, holders[0].Score)

	// No winner clears the holder as well.
	require.NoError(t, store.ReplaceAwards(ctx, "run-3", awards.Result{TopScorer: awards.Undetermined, TopAssist: awards.Undetermined}))
	holders, err = store.GetGoldenBall(ctx)
	require.NoError(t, err)
	assert.Empty(t, holders)
	award, err = store.GetAward(ctx)
	require.NoError(t, err)
	assert.Nil(t, award.GoldenBall)
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("footballer cascades to stats, record and coefficient", func(t *testing.T) {
		store, db := setupTestDB(t, 0)
		id, err := store.AddFootballer(ctx, haaland())
		require.NoError(t, err)

		require.NoError(t, store.DeleteRecord(ctx, football.KindFootballer, id))

		for _, table := range []string{"footballers", "personal_stats", "player_records", "gentleman_coefficients"} {
			var n int
			require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
			assert.Zero(t, n, table)
		}
	})

	t.Run("club removes trophies and detaches footballers", func(t *testing.T) {
		store, db := setupTestDB(t, 0)
		_, err := store.AddFootballer(ctx, haaland())
		require.NoError(t, err)
		require.NoError(t, store.VoteClub(ctx, football.ClubVote{ClubName: "Manchester City", Cup: 2}))

		clubs, err := store.ListClubs(ctx)
		require.NoError(t, err)
		require.Len(t, clubs, 1)

		require.NoError(t, store.DeleteRecord(ctx, football.KindClub, clubs[0].ID))

		var trophies int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM trophies").Scan(&trophies))
		assert.Zero(t, trophies)
		footballers, err := store.ListFootballers(ctx)
		require.NoError(t, err)
		require.Len(t, footballers, 1)
		assert.Empty(t, footballers[0].Club)
	})

	t.Run("missing record", func(t *testing.T) {
		store, _ := setupTestDB(t, 0)
		err := store.DeleteRecord(ctx, football.KindTrophy, 42)
		assert.ErrorIs(t, err, football.ErrRecordNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		store, _ := setupTestDB(t, 0)
		err := store.DeleteRecord(ctx, football.RecordKind("users"), 1)
		assert.ErrorIs(t, err, football.ErrUnknownRecordKind)
	})
}

func TestParseRecordKind(t *testing.T) {
	k, err := football.ParseRecordKind("golden_ball")
	require.NoError(t, err)
	assert.Equal(t, football.KindGoldenBall, k)

	_, err = football.ParseRecordKind("footballers; DROP TABLE clubs")
	assert.ErrorIs(t, err, football.ErrUnknownRecordKind)

	assert.Len(t, football.RecordKinds(), 9)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestDB(t, 0)

	_, err := store.AddFootballer(ctx, haaland())
	require.NoError(t, err)
	require.NoError(t, store.VoteClub(ctx, football.ClubVote{ClubName: "Inter", NationalChampionship: 1}))
	for i := 0; i < 6; i++ {
		require.NoError(t, store.WriteLog(ctx, "entry"))
	}

	sum, err := store.Summary(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Footballers)
	assert.Equal(t, 2, sum.Clubs)
	assert.Equal(t, 1, sum.Trophies)
	assert.Len(t, sum.RecentLogs, 5)
	assert.Greater(t, sum.RecentLogs[0].ID, sum.RecentLogs[1].ID, "newest first")
}
