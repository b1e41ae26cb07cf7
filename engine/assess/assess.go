// Package assess classifies the outcome of a single round.
package assess

import (
	"fmt"

	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/types"
)

// Verdict is the outcome of a round from the human's perspective, with the
// justification of the winning relation (empty on a tie).
type Verdict struct {
	Outcome types.Outcome
	Reason  string
}

// Assess evaluates human against computer using t. A validated table
// always decides every distinct pair, so reaching neither direction panics.
func Assess(t *rules.Table, human, computer types.Choice) Verdict {
	if human == computer {
		return Verdict{Outcome: types.Tie}
	}
	if reason, ok := t.Beats(human, computer); ok {
		return Verdict{Outcome: types.Victory, Reason: reason}
	}
	if reason, ok := t.Beats(computer, human); ok {
		return Verdict{Outcome: types.Defeat, Reason: reason}
	}
	panic(fmt.Sprintf("assess: rule table does not decide %v vs %v", human, computer))
}
