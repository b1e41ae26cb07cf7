// Package engine provides the round orchestrator that wires together
// input parsing, the opponent strategy, the round evaluator and the
// session record.
package engine

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nathoo/rpsls/engine/assess"
	"github.com/nathoo/rpsls/engine/parser"
	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/engine/state"
	"github.com/nathoo/rpsls/engine/strategy"
	"github.com/nathoo/rpsls/types"
)

// Engine holds the rule table, the opponent strategy and the session.
type Engine struct {
	Table    *rules.Table
	Strategy strategy.Strategy
	RNG      *RNG
	Session  *types.Session
}

// New creates an engine using the frequency strategy with the default window.
func New(t *rules.Table, seed int64) *Engine {
	rng := NewRNG(seed)
	return &Engine{
		Table:    t,
		Strategy: strategy.NewFrequency(t, rng),
		RNG:      rng,
		Session:  state.NewSession(seed),
	}
}

// UseStrategy replaces the opponent strategy by name ("frequency" or
// "random"). window applies to frequency only; <= 0 means the default.
func (e *Engine) UseStrategy(name string, window int) error {
	switch name {
	case "", "frequency":
		f := strategy.NewFrequency(e.Table, e.RNG)
		if window > 0 {
			f.Window = window
		}
		e.Strategy = f
	case "random":
		e.Strategy = &strategy.Random{Rand: e.RNG}
	default:
		return fmt.Errorf("unknown strategy %q (want frequency or random)", name)
	}
	return nil
}

// Step parses one line of player input and plays a round if it names a
// choice.
func (e *Engine) Step(input string) types.Result {
	intent := parser.Parse(input)
	if !intent.Valid {
		return types.Result{Output: []string{InvalidSelectionMessage()}}
	}
	return e.Play(intent.Choice)
}

// InvalidSelectionMessage is shown when input names no choice.
func InvalidSelectionMessage() string {
	return fmt.Sprintf("Invalid selection. Pick a choice in range [0, %d]!", types.NumChoices-1)
}

// Play runs one round with the human's choice. The strategy sees only the
// history of completed rounds; the human's current move is recorded after
// the round is assessed.
func (e *Engine) Play(human types.Choice) types.Result {
	var result types.Result

	round := state.NextRound(e.Session)
	posBefore := e.RNG.Position()

	computer := e.Strategy.Select(e.Session.History)
	verdict := assess.Assess(e.Table, human, computer)

	rr := types.RoundResult{
		Round:    round,
		Human:    human,
		Computer: computer,
		Outcome:  verdict.Outcome,
		Reason:   verdict.Reason,
	}

	result.Output = append(result.Output, fmt.Sprintf("Computer picked %s.", computer))
	result.Output = append(result.Output, describe(rr))

	result.Trace = append(result.Trace,
		fmt.Sprintf("[trace] round %d strategy=%s window=%s", round, e.Strategy.Name(), windowString(e)),
		fmt.Sprintf("[trace] rng draws=%d position=%d", e.RNG.Position()-posBefore, e.RNG.Position()),
	)

	state.RecordRound(e.Session, rr)
	result.Round = &rr

	log.Debug().
		Int("round", round).
		Stringer("human", human).
		Stringer("computer", computer).
		Stringer("outcome", verdict.Outcome).
		Str("strategy", e.Strategy.Name()).
		Msg("round played")

	return result
}

// Stats tallies the session so far.
func (e *Engine) Stats() types.Stats {
	return state.Tally(e.Session)
}

// describe renders the outcome line for a round.
func describe(rr types.RoundResult) string {
	switch rr.Outcome {
	case types.Victory:
		return rr.Reason + ". You won!"
	case types.Defeat:
		return rr.Reason + ". You lost!"
	default:
		return fmt.Sprintf("User and computer picked %s. Draw game!", rr.Human)
	}
}

// windowString lists the history window the frequency strategy reads.
func windowString(e *Engine) string {
	w := strategy.DefaultWindow
	if f, ok := e.Strategy.(*strategy.Frequency); ok && f.Window > 0 {
		w = f.Window
	}
	recent := strategy.Recent(e.Session.History, w)
	names := make([]string, len(recent))
	for i, c := range recent {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ",") + "]"
}
