package loader

import (
	"github.com/nathoo/rpsls/types"
)

// compile resolves choice names into relations. The first unknown name
// aborts the whole load.
func compile(records []rawRecord) ([]types.WinRelation, error) {
	relations := make([]types.WinRelation, 0, len(records))
	for _, r := range records {
		winner, err := types.ParseChoice(r.winner)
		if err != nil {
			return nil, &UnknownChoiceError{Source: r.source, Record: r.index, Name: r.winner}
		}
		loser, err := types.ParseChoice(r.loser)
		if err != nil {
			return nil, &UnknownChoiceError{Source: r.source, Record: r.index, Name: r.loser}
		}
		relations = append(relations, types.WinRelation{
			Winner: winner,
			Loser:  loser,
			Reason: r.text,
		})
	}
	return relations, nil
}
