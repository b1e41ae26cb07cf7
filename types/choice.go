package types

import (
	"fmt"
	"strconv"
)

var choiceNames = [NumChoices]string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}

// InvalidChoiceError is returned when a Choice is constructed from a name or
// index outside the five variants.
type InvalidChoiceError struct {
	Value string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q: pick a choice in range [0, %d]", e.Value, NumChoices-1)
}

// AllChoices returns every choice in enumeration order.
func AllChoices() []Choice {
	return []Choice{Rock, Paper, Scissors, Lizard, Spock}
}

// Valid reports whether c is one of the five variants.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Spock
}

func (c Choice) String() string {
	if !c.Valid() {
		return "Choice(" + strconv.Itoa(int(c)) + ")"
	}
	return choiceNames[c]
}

// ParseChoice matches name case-sensitively against the variant names.
func ParseChoice(name string) (Choice, error) {
	for i, n := range choiceNames {
		if n == name {
			return Choice(i), nil
		}
	}
	return 0, &InvalidChoiceError{Value: name}
}

// ChoiceFromIndex converts a menu index into a Choice.
func ChoiceFromIndex(i int) (Choice, error) {
	c := Choice(i)
	if !c.Valid() {
		return 0, &InvalidChoiceError{Value: strconv.Itoa(i)}
	}
	return c, nil
}
