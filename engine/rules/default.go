package rules

import "github.com/nathoo/rpsls/types"

// Canonical returns the ten standard relations of Rock-Paper-Scissors-Lizard-Spock.
func Canonical() []types.WinRelation {
	return []types.WinRelation{
		{Winner: types.Rock, Loser: types.Scissors, Reason: "Rock crushes Scissors"},
		{Winner: types.Rock, Loser: types.Lizard, Reason: "Rock crushes Lizard"},
		{Winner: types.Paper, Loser: types.Rock, Reason: "Paper covers Rock"},
		{Winner: types.Paper, Loser: types.Spock, Reason: "Paper disproves Spock"},
		{Winner: types.Scissors, Loser: types.Paper, Reason: "Scissors cuts Paper"},
		{Winner: types.Scissors, Loser: types.Lizard, Reason: "Scissors decapitates Lizard"},
		{Winner: types.Lizard, Loser: types.Spock, Reason: "Lizard poisons Spock"},
		{Winner: types.Lizard, Loser: types.Paper, Reason: "Lizard eats Paper"},
		{Winner: types.Spock, Loser: types.Rock, Reason: "Spock vaporizes Rock"},
		{Winner: types.Spock, Loser: types.Scissors, Reason: "Spock smashes Scissors"},
	}
}

// Default builds the canonical table. Callers use it as an explicit
// fallback when no rule source is available.
func Default() *Table {
	t, err := New(Canonical())
	if err != nil {
		panic("rules: canonical table invalid: " + err.Error())
	}
	return t
}
