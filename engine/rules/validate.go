package rules

import (
	"fmt"
	"strings"

	"github.com/nathoo/rpsls/types"
)

// Pair is an ordered pair of choices, printed as "Winner>Loser".
type Pair struct {
	A, B types.Choice
}

func (p Pair) String() string {
	return p.A.String() + ">" + p.B.String()
}

// IncompleteRuleSetError reports a relation set that is not a complete
// antisymmetric tournament. Missing pairs are unordered (A < B); duplicated
// pairs list each direction that was defined more than once or in both
// directions.
type IncompleteRuleSetError struct {
	Missing    []Pair
	Duplicated []Pair
	SelfPairs  []types.Choice
	Invalid    []types.WinRelation
}

func (e *IncompleteRuleSetError) Error() string {
	var parts []string
	if len(e.Invalid) > 0 {
		var s []string
		for _, r := range e.Invalid {
			s = append(s, fmt.Sprintf("%d>%d", int(r.Winner), int(r.Loser)))
		}
		parts = append(parts, "invalid choices in "+strings.Join(s, ", "))
	}
	if len(e.SelfPairs) > 0 {
		var s []string
		for _, c := range e.SelfPairs {
			s = append(s, c.String())
		}
		parts = append(parts, "self relations for "+strings.Join(s, ", "))
	}
	if len(e.Missing) > 0 {
		var s []string
		for _, p := range e.Missing {
			s = append(s, p.A.String()+"/"+p.B.String())
		}
		parts = append(parts, "missing "+strings.Join(s, ", "))
	}
	if len(e.Duplicated) > 0 {
		var s []string
		for _, p := range e.Duplicated {
			s = append(s, p.String())
		}
		parts = append(parts, "duplicated "+strings.Join(s, ", "))
	}
	return "incomplete rule set: " + strings.Join(parts, "; ")
}

// validate checks the tournament invariant and collects every violation.
func validate(relations []types.WinRelation) error {
	ie := &IncompleteRuleSetError{}
	var count [types.NumChoices][types.NumChoices]int

	for _, r := range relations {
		if !r.Winner.Valid() || !r.Loser.Valid() {
			ie.Invalid = append(ie.Invalid, r)
			continue
		}
		if r.Winner == r.Loser {
			ie.SelfPairs = append(ie.SelfPairs, r.Winner)
			continue
		}
		count[r.Winner][r.Loser]++
	}

	all := types.AllChoices()
	for i, a := range all {
		for _, b := range all[i+1:] {
			ab, ba := count[a][b], count[b][a]
			switch {
			case ab+ba == 0:
				ie.Missing = append(ie.Missing, Pair{A: a, B: b})
			case ab+ba > 1:
				if ab > 0 {
					ie.Duplicated = append(ie.Duplicated, Pair{A: a, B: b})
				}
				if ba > 0 {
					ie.Duplicated = append(ie.Duplicated, Pair{A: b, B: a})
				}
			}
		}
	}

	if len(ie.Invalid)+len(ie.SelfPairs)+len(ie.Missing)+len(ie.Duplicated) > 0 {
		return ie
	}
	return nil
}
