// Package state manages the per-session game record: the human's move
// history, round results, and the tallies derived from them.
package state

import (
	"github.com/samber/lo"

	"github.com/nathoo/rpsls/types"
)

// NewSession creates an empty session for the given RNG seed.
func NewSession(seed int64) *types.Session {
	return &types.Session{
		History: []types.Choice{},
		Results: []types.RoundResult{},
		Seed:    seed,
	}
}

// RecordRound appends a completed round. It is the only writer of the
// session history.
func RecordRound(s *types.Session, r types.RoundResult) {
	s.History = append(s.History, r.Human)
	s.Results = append(s.Results, r)
}

// NextRound returns the 1-based number of the round about to be played.
func NextRound(s *types.Session) int {
	return len(s.Results) + 1
}

// Tally counts outcomes over all results.
func Tally(s *types.Session) types.Stats {
	counts := lo.CountValuesBy(s.Results, func(r types.RoundResult) types.Outcome {
		return r.Outcome
	})
	return types.Stats{
		Rounds:    len(s.Results),
		Victories: counts[types.Victory],
		Defeats:   counts[types.Defeat],
		Ties:      counts[types.Tie],
	}
}

// WinRate returns victories over decided rounds, or 0 when none were decided.
func WinRate(st types.Stats) float64 {
	decided := st.Victories + st.Defeats
	if decided == 0 {
		return 0
	}
	return float64(st.Victories) / float64(decided)
}

// Streak returns the outcome of the latest round and how many consecutive
// rounds ended the same way. ok is false for an empty session.
func Streak(s *types.Session) (outcome types.Outcome, n int, ok bool) {
	if len(s.Results) == 0 {
		return 0, 0, false
	}
	outcome = s.Results[len(s.Results)-1].Outcome
	for i := len(s.Results) - 1; i >= 0 && s.Results[i].Outcome == outcome; i-- {
		n++
	}
	return outcome, n, true
}

// ChoiceCounts returns how often the human played each choice.
func ChoiceCounts(s *types.Session) map[types.Choice]int {
	return lo.CountValues(s.History)
}

// LastResults returns up to n of the most recent results, oldest first.
func LastResults(s *types.Session, n int) []types.RoundResult {
	if n >= len(s.Results) {
		return s.Results
	}
	return s.Results[len(s.Results)-n:]
}
