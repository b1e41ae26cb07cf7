// Package types defines the shared data structures for the rpsls engine.
// Apart from the enum string forms and choice parsing in choice.go, this
// package holds no logic.
package types

// Choice is one of the five playable moves. The numeric values double as
// the menu indices shown to the player.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
	Lizard
	Spock
)

// NumChoices is the number of playable moves.
const NumChoices = 5

// Outcome of a round, always from the human player's perspective.
type Outcome int

const (
	Victory Outcome = iota
	Defeat
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	case Tie:
		return "Tie"
	}
	return "Outcome(?)"
}

// WinRelation states that Winner defeats Loser, with a justification.
type WinRelation struct {
	Winner Choice
	Loser  Choice
	Reason string
}

// RoundResult records one completed round.
type RoundResult struct {
	Round    int
	Human    Choice
	Computer Choice
	Outcome  Outcome
	Reason   string // empty on a tie
}

// Intent is the parsed representation of a line of player input.
type Intent struct {
	Raw    string
	Choice Choice
	Valid  bool
}

// Result is the output of a single engine step.
type Result struct {
	Round  *RoundResult // nil when no round was played
	Output []string
	Trace  []string
}

// Session is the mutable per-process game record. History holds the human's
// moves for completed rounds only.
type Session struct {
	History []Choice
	Results []RoundResult
	Seed    int64
}

// Stats summarizes a session's results.
type Stats struct {
	Rounds    int
	Victories int
	Defeats   int
	Ties      int
}
