// Package rules holds the immutable win-relation table: for every ordered
// pair of distinct choices, whether the first defeats the second and why.
package rules

import "github.com/nathoo/rpsls/types"

// Table is a validated tournament over all choices. It is read-only after
// New returns and safe to share between readers.
type Table struct {
	reasons   [types.NumChoices][types.NumChoices]string
	beats     [types.NumChoices][types.NumChoices]bool
	defeaters [types.NumChoices][]types.Choice
}

// New validates relations and builds a Table. The relation set must cover
// every unordered pair of distinct choices exactly once; otherwise an
// *IncompleteRuleSetError is returned and no table is produced.
func New(relations []types.WinRelation) (*Table, error) {
	if err := validate(relations); err != nil {
		return nil, err
	}

	t := &Table{}
	for _, r := range relations {
		t.beats[r.Winner][r.Loser] = true
		t.reasons[r.Winner][r.Loser] = r.Reason
	}
	for _, loser := range types.AllChoices() {
		for _, winner := range types.AllChoices() {
			if t.beats[winner][loser] {
				t.defeaters[loser] = append(t.defeaters[loser], winner)
			}
		}
	}
	return t, nil
}

// Beats returns the justification if a defeats b. ok is false when b
// defeats a, when a == b, or when either choice is out of range.
func (t *Table) Beats(a, b types.Choice) (reason string, ok bool) {
	if !a.Valid() || !b.Valid() || !t.beats[a][b] {
		return "", false
	}
	return t.reasons[a][b], true
}

// DefeatersOf returns every choice that defeats c, in enumeration order.
// The returned slice is a copy.
func (t *Table) DefeatersOf(c types.Choice) []types.Choice {
	if !c.Valid() {
		return nil
	}
	out := make([]types.Choice, len(t.defeaters[c]))
	copy(out, t.defeaters[c])
	return out
}

// Relations returns all relations ordered by winner, then loser.
func (t *Table) Relations() []types.WinRelation {
	var out []types.WinRelation
	for _, w := range types.AllChoices() {
		for _, l := range types.AllChoices() {
			if t.beats[w][l] {
				out = append(out, types.WinRelation{Winner: w, Loser: l, Reason: t.reasons[w][l]})
			}
		}
	}
	return out
}
