package awards

import (
	"fmt"
	"sort"
)

// UniformWeights counts every field once.
var UniformWeights = Weights{Goals: 1, Assists: 1, CleanSheets: 1, Victories: 1, Draws: 1, Losses: 1}

// WeightedWeights favours goals, clean sheets and victories.
var WeightedWeights = Weights{Goals: 2, Assists: 1.5, CleanSheets: 3, Victories: 2, Draws: 1, Losses: 0.5}

// WeightsFor resolves a policy name to its weight set.
func WeightsFor(p Policy) (Weights, error) {
	switch p {
	case PolicyUniform:
		return UniformWeights, nil
	case PolicyWeighted, "":
		return WeightedWeights, nil
	default:
		return Weights{}, fmt.Errorf("unknown award policy %q", p)
	}
}

// Score returns the Golden Ball score of a single candidate.
func Score(c Candidate, w Weights) float64 {
	coef := c.Coefficient
	if coef == 0 {
		coef = DefaultCoefficient
	}
	raw := float64(c.Goals)*w.Goals +
		float64(c.Assists)*w.Assists +
		float64(c.CleanSheets)*w.CleanSheets +
		float64(c.ClubVictories+c.PlayerVictories)*w.Victories +
		float64(c.ClubDraws+c.PlayerDraws)*w.Draws -
		float64(c.ClubLosses+c.PlayerLosses)*w.Losses
	return raw * coef
}

// Compute selects the top scorer, the top assist provider and the Golden Ball
// winner. It does no I/O and returns the same result for the same snapshot.
func Compute(snap Snapshot, w Weights) Result {
	res := Result{
		TopScorer: topBy(snap.Stats, func(s StatLine) int { return s.Goals }),
		TopAssist: topBy(snap.Stats, func(s StatLine) int { return s.Assists }),
	}

	best := 0.0
	for _, c := range snap.Candidates {
		score := Score(c, w)
		// Strict: ties keep the first candidate, and nothing at or below zero wins.
		if score > best {
			best = score
			res.Winner = &Winner{Name: c.FullName(), Club: c.Club, Score: score}
		}
	}
	return res
}

// topBy returns the name on the first row holding the maximum value.
func topBy(stats []StatLine, value func(StatLine) int) string {
	if len(stats) == 0 {
		return Undetermined
	}
	top := stats[0]
	for _, s := range stats[1:] {
		if value(s) > value(top) {
			top = s
		}
	}
	return top.PlayerName
}

// Rank scores every candidate and orders them best first. Equal scores keep
// snapshot order.
func Rank(snap Snapshot, w Weights) []Standing {
	standings := make([]Standing, 0, len(snap.Candidates))
	for _, c := range snap.Candidates {
		standings = append(standings, Standing{Name: c.FullName(), Club: c.Club, Score: Score(c, w)})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// WinnerScore returns the winner's score, or 0 when there is no winner.
func (r Result) WinnerScore() float64 {
	if r.Winner == nil {
		return 0
	}
	return r.Winner.Score
}

// WinnerName returns the winner's name, or "" when there is no winner.
func (r Result) WinnerName() string {
	if r.Winner == nil {
		return ""
	}
	return r.Winner.Name
}
