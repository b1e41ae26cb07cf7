// Package parser converts player input into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strconv"
	"strings"

	"github.com/nathoo/rpsls/types"
)

var choiceAliases = map[string]types.Choice{
	"rock":     types.Rock,
	"r":        types.Rock,
	"stone":    types.Rock,
	"paper":    types.Paper,
	"p":        types.Paper,
	"scissors": types.Scissors,
	"scissor":  types.Scissors,
	"s":        types.Scissors,
	"lizard":   types.Lizard,
	"l":        types.Lizard,
	"spock":    types.Spock,
	"k":        types.Spock,
}

// Leading verbs that may precede a choice ("play rock", "throw spock").
var playVerbs = map[string]bool{
	"play": true, "throw": true, "pick": true, "choose": true, "use": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw input line into an Intent. Input that names no
// choice yields an Intent with Valid false.
func Parse(input string) types.Intent {
	c, err := ParseStrict(input)
	if err != nil {
		return types.Intent{Raw: strings.TrimSpace(input)}
	}
	return types.Intent{Raw: strings.TrimSpace(input), Choice: c, Valid: true}
}

// ParseStrict is Parse with the failure surfaced as *types.InvalidChoiceError.
func ParseStrict(input string) (types.Choice, error) {
	raw := strings.TrimSpace(input)
	words := strings.Fields(strings.ToLower(raw))

	if len(words) > 0 && playVerbs[words[0]] {
		words = words[1:]
	}
	words = stripArticles(words)

	if len(words) != 1 {
		return 0, &types.InvalidChoiceError{Value: raw}
	}
	word := words[0]

	if c, ok := choiceAliases[word]; ok {
		return c, nil
	}
	if n, err := strconv.Atoi(word); err == nil {
		c, err := types.ChoiceFromIndex(n)
		if err != nil {
			return 0, &types.InvalidChoiceError{Value: raw}
		}
		return c, nil
	}
	return 0, &types.InvalidChoiceError{Value: raw}
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
