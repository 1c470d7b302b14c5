package awards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("weighted scenario", func(t *testing.T) {
		c := Candidate{
			Goals: 10, Assists: 5, CleanSheets: 2,
			ClubVictories: 3, PlayerVictories: 1,
			ClubLosses:  1,
			Coefficient: 2.0,
		}
		assert.InDelta(t, 82.0, Score(c, WeightedWeights), 1e-9)
	})

	t.Run("missing coefficient counts as one", func(t *testing.T) {
		with := Candidate{Goals: 3, Assists: 1, Coefficient: 1.0}
		without := Candidate{Goals: 3, Assists: 1}
		assert.Equal(t, Score(with, WeightedWeights), Score(without, WeightedWeights))
	})

	t.Run("uniform weights", func(t *testing.T) {
		c := Candidate{Goals: 2, Assists: 2, CleanSheets: 1, ClubVictories: 1, PlayerDraws: 1, PlayerLosses: 2}
		// 2+2+1+1+1-2
		assert.InDelta(t, 5.0, Score(c, UniformWeights), 1e-9)
	})

	t.Run("losses can make the score negative", func(t *testing.T) {
		c := Candidate{ClubLosses: 4}
		assert.Less(t, Score(c, WeightedWeights), 0.0)
	})
}

func TestCompute(t *testing.T) {
	t.Run("single candidate scenario", func(t *testing.T) {
		snap := Snapshot{
			Candidates: []Candidate{{
				FirstName: "Erling", LastName: "Haaland", Club: "Manchester City",
				Goals: 10, Assists: 5, CleanSheets: 2,
				ClubVictories: 3, PlayerVictories: 1, ClubLosses: 1,
				Coefficient: 2.0,
			}},
			Stats: []StatLine{{PlayerName: "Erling Haaland", Goals: 10, Assists: 5, CleanSheets: 2}},
		}

		res := Compute(snap, WeightedWeights)

		require.NotNil(t, res.Winner)
		assert.Equal(t, "Erling Haaland", res.Winner.Name)
		assert.Equal(t, "Manchester City", res.Winner.Club)
		assert.InDelta(t, 82.0, res.WinnerScore(), 1e-9)
		assert.Equal(t, "Erling Haaland", res.TopScorer)
		assert.Equal(t, "Erling Haaland", res.TopAssist)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		res := Compute(Snapshot{}, WeightedWeights)

		assert.Equal(t, Undetermined, res.TopScorer)
		assert.Equal(t, Undetermined, res.TopAssist)
		assert.Nil(t, res.Winner)
		assert.Zero(t, res.WinnerScore())
		assert.Empty(t, res.WinnerName())
	})

	t.Run("ties keep the first candidate", func(t *testing.T) {
		snap := Snapshot{Candidates: []Candidate{
			{FirstName: "Zed", LastName: "Last", Goals: 4},
			{FirstName: "Abe", LastName: "First", Goals: 4},
		}}

		res := Compute(snap, WeightedWeights)

		require.NotNil(t, res.Winner)
		assert.Equal(t, "Zed Last", res.Winner.Name)
	})

	t.Run("all zero candidate never wins", func(t *testing.T) {
		snap := Snapshot{Candidates: []Candidate{{FirstName: "Nil", LastName: "Stats", Coefficient: 1.0}}}

		res := Compute(snap, WeightedWeights)

		assert.Nil(t, res.Winner)
	})

	t.Run("only negative scores means no winner", func(t *testing.T) {
		snap := Snapshot{Candidates: []Candidate{
			{FirstName: "A", LastName: "B", PlayerLosses: 3},
			{FirstName: "C", LastName: "D", ClubLosses: 1},
		}}

		res := Compute(snap, WeightedWeights)

		assert.Nil(t, res.Winner)
	})

	t.Run("top scorer and top assist come from the unjoined stats", func(t *testing.T) {
		snap := Snapshot{
			Candidates: []Candidate{{FirstName: "Joined", LastName: "Player", Goals: 1}},
			Stats: []StatLine{
				{PlayerName: "Joined Player", Goals: 1, Assists: 1},
				{PlayerName: "No Club", Goals: 9, Assists: 0},
				{PlayerName: "Playmaker", Goals: 0, Assists: 7},
				{PlayerName: "Late Playmaker", Goals: 9, Assists: 7},
			},
		}

		res := Compute(snap, WeightedWeights)

		assert.Equal(t, "No Club", res.TopScorer, "first maximal row wins")
		assert.Equal(t, "Playmaker", res.TopAssist, "first maximal row wins")
		require.NotNil(t, res.Winner)
		assert.Equal(t, "Joined Player", res.Winner.Name)
	})

	t.Run("stats without candidates still name the leaders", func(t *testing.T) {
		snap := Snapshot{Stats: []StatLine{{PlayerName: "Solo", Goals: 0, Assists: 0}}}

		res := Compute(snap, WeightedWeights)

		assert.Equal(t, "Solo", res.TopScorer)
		assert.Equal(t, "Solo", res.TopAssist)
		assert.Nil(t, res.Winner)
	})

	t.Run("winner has the maximal score", func(t *testing.T) {
		snap := Snapshot{Candidates: []Candidate{
			{FirstName: "A", Goals: 1},
			{FirstName: "B", Goals: 5, Coefficient: 1.5},
			{FirstName: "C", CleanSheets: 3},
			{FirstName: "D", Goals: 2, ClubVictories: 2},
		}}

		res := Compute(snap, WeightedWeights)

		best := 0.0
		for _, c := range snap.Candidates {
			if s := Score(c, WeightedWeights); s > best {
				best = s
			}
		}
		require.NotNil(t, res.Winner)
		assert.Equal(t, best, res.Winner.Score)
		assert.Equal(t, "B", res.Winner.Name)
	})

	t.Run("policy changes the winner", func(t *testing.T) {
		snap := Snapshot{Candidates: []Candidate{
			{FirstName: "Striker", Goals: 4},
			{FirstName: "Keeper", CleanSheets: 3, Assists: 2},
		}}

		assert.Equal(t, "Keeper", Compute(snap, WeightedWeights).WinnerName())
		assert.Equal(t, "Keeper", Compute(snap, UniformWeights).WinnerName())

		snap.Candidates[0].Goals = 5
		assert.Equal(t, "Striker", Compute(snap, UniformWeights).WinnerName())
		assert.Equal(t, "Keeper", Compute(snap, WeightedWeights).WinnerName())
	})

	t.Run("idempotent", func(t *testing.T) {
		snap := Snapshot{
			Candidates: []Candidate{{FirstName: "A", Goals: 3}, {FirstName: "B", Assists: 8}},
			Stats:      []StatLine{{PlayerName: "A", Goals: 3}, {PlayerName: "B", Assists: 8}},
		}
		assert.Equal(t, Compute(snap, WeightedWeights), Compute(snap, WeightedWeights))
	})
}

func TestRank(t *testing.T) {
	snap := Snapshot{Candidates: []Candidate{
		{FirstName: "Low", Goals: 1},
		{FirstName: "High", Goals: 6},
		{FirstName: "TieA", Goals: 3},
		{FirstName: "TieB", Goals: 3},
	}}

	standings := Rank(snap, WeightedWeights)

	require.Len(t, standings, 4)
	names := []string{standings[0].Name, standings[1].Name, standings[2].Name, standings[3].Name}
	assert.Equal(t, []string{"High", "TieA", "TieB", "Low"}, names)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 4, standings[3].Rank)
	assert.InDelta(t, 12.0, standings[0].Score, 1e-9)
}

func TestWeightsFor(t *testing.T) {
	w, err := WeightsFor(PolicyUniform)
	require.NoError(t, err)
	assert.Equal(t, UniformWeights, w)

	w, err = WeightsFor(PolicyWeighted)
	require.NoError(t, err)
	assert.Equal(t, WeightedWeights, w)

	w, err = WeightsFor("")
	require.NoError(t, err)
	assert.Equal(t, WeightedWeights, w)

	_, err = WeightsFor("bogus")
	assert.Error(t, err)
}
