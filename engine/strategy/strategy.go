// Package strategy picks the computer's move for a round.
package strategy

import (
	"github.com/samber/lo"

	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/types"
)

// DefaultWindow is how many of the most recent human moves Frequency reads.
const DefaultWindow = 5

// Source supplies uniform integers in [0, n). engine.RNG satisfies it.
type Source interface {
	Intn(n int) int
}

// Strategy selects the computer's next move from the human's completed
// move history. Implementations must not mutate history.
type Strategy interface {
	Select(history []types.Choice) types.Choice
	Name() string
}

// Random ignores history and picks uniformly.
type Random struct {
	Rand Source
}

func (r *Random) Select([]types.Choice) types.Choice {
	return pick(r.Rand, types.AllChoices())
}

func (r *Random) Name() string { return "random" }

// Frequency counters the human's most frequent move over the last Window
// moves. Ties for most frequent are broken by drawing uniformly among the
// tied choices, listed in enumeration order; with a single mode no draw is
// made. The counter move is drawn uniformly from the table's defeaters of
// that mode.
type Frequency struct {
	Table  *rules.Table
	Window int
	Rand   Source
}

// NewFrequency returns a Frequency strategy with the default window.
func NewFrequency(t *rules.Table, src Source) *Frequency {
	return &Frequency{Table: t, Window: DefaultWindow, Rand: src}
}

func (f *Frequency) Name() string { return "frequency" }

func (f *Frequency) Select(history []types.Choice) types.Choice {
	if len(history) == 0 {
		return pick(f.Rand, types.AllChoices())
	}

	target := f.Predict(history)
	candidates := f.Table.DefeatersOf(target)
	if len(candidates) == 0 {
		return pick(f.Rand, types.AllChoices())
	}
	return pick(f.Rand, candidates)
}

// Predict returns the mode of the recent window, the move Select counters.
// history must be non-empty.
func (f *Frequency) Predict(history []types.Choice) types.Choice {
	recent := Recent(history, f.window())
	counts := lo.CountValues(recent)
	top := lo.Max(lo.Values(counts))
	tied := lo.Filter(types.AllChoices(), func(c types.Choice, _ int) bool {
		return counts[c] == top
	})
	if len(tied) == 1 {
		return tied[0]
	}
	return pick(f.Rand, tied)
}

func (f *Frequency) window() int {
	if f.Window <= 0 {
		return DefaultWindow
	}
	return f.Window
}

// Recent returns the last min(w, len(history)) entries without copying.
func Recent(history []types.Choice, w int) []types.Choice {
	if len(history) <= w {
		return history
	}
	return history[len(history)-w:]
}

func pick(src Source, from []types.Choice) types.Choice {
	return from[src.Intn(len(from))]
}
