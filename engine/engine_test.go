package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/engine/strategy"
	"github.com/nathoo/rpsls/types"
)

// fixedStrategy always plays the same move and records what it was shown.
type fixedStrategy struct {
	move types.Choice
	seen [][]types.Choice
}

func (f *fixedStrategy) Select(history []types.Choice) types.Choice {
	f.seen = append(f.seen, append([]types.Choice(nil), history...))
	return f.move
}

func (f *fixedStrategy) Name() string { return "fixed" }

func newFixedEngine(move types.Choice) (*Engine, *fixedStrategy) {
	e := New(rules.Default(), 1)
	fs := &fixedStrategy{move: move}
	e.Strategy = fs
	return e, fs
}

func TestPlay_Victory(t *testing.T) {
	e, _ := newFixedEngine(types.Rock)
	result := e.Play(types.Spock)

	if result.Round == nil {
		t.Fatal("expected a round result")
	}
	if result.Round.Outcome != types.Victory {
		t.Errorf("Outcome = %v, want Victory", result.Round.Outcome)
	}
	want := []string{"Computer picked Rock.", "Spock vaporizes Rock. You won!"}
	if strings.Join(result.Output, "|") != strings.Join(want, "|") {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}
}

func TestPlay_Defeat(t *testing.T) {
	e, _ := newFixedEngine(types.Spock)
	result := e.Play(types.Rock)

	if result.Round.Outcome != types.Defeat {
		t.Errorf("Outcome = %v, want Defeat", result.Round.Outcome)
	}
	if result.Output[1] != "Spock vaporizes Rock. You lost!" {
		t.Errorf("Output[1] = %q", result.Output[1])
	}
}

func TestPlay_Tie(t *testing.T) {
	e, _ := newFixedEngine(types.Lizard)
	result := e.Play(types.Lizard)

	if result.Round.Outcome != types.Tie {
		t.Errorf("Outcome = %v, want Tie", result.Round.Outcome)
	}
	if result.Output[1] != "User and computer picked Lizard. Draw game!" {
		t.Errorf("Output[1] = %q", result.Output[1])
	}
}

func TestPlay_StrategySeesOnlyCompletedRounds(t *testing.T) {
	e, fs := newFixedEngine(types.Rock)
	e.Play(types.Paper)
	e.Play(types.Spock)
	e.Play(types.Lizard)

	if len(fs.seen) != 3 {
		t.Fatalf("strategy called %d times, want 3", len(fs.seen))
	}
	if len(fs.seen[0]) != 0 {
		t.Errorf("first round should see empty history, got %v", fs.seen[0])
	}
	if len(fs.seen[2]) != 2 || fs.seen[2][1] != types.Spock {
		t.Errorf("third round saw %v, want [Paper Spock]", fs.seen[2])
	}
	if len(e.Session.History) != 3 {
		t.Errorf("history len = %d, want 3", len(e.Session.History))
	}
}

func TestPlay_RoundNumbers(t *testing.T) {
	e, _ := newFixedEngine(types.Rock)
	for i := 1; i <= 4; i++ {
		r := e.Play(types.Paper)
		if r.Round.Round != i {
			t.Errorf("round %d numbered %d", i, r.Round.Round)
		}
	}
	st := e.Stats()
	if st.Rounds != 4 || st.Victories != 4 {
		t.Errorf("Stats = %+v", st)
	}
}

func TestStep_InvalidInput(t *testing.T) {
	e, fs := newFixedEngine(types.Rock)

	for _, input := range []string{"", "7", "fire", "rock paper"} {
		result := e.Step(input)
		if result.Round != nil {
			t.Errorf("Step(%q) played a round", input)
		}
		if len(result.Output) != 1 || result.Output[0] != "Invalid selection. Pick a choice in range [0, 4]!" {
			t.Errorf("Step(%q) output = %q", input, result.Output)
		}
	}
	if len(fs.seen) != 0 {
		t.Error("strategy should not be consulted for invalid input")
	}
	if len(e.Session.Results) != 0 {
		t.Error("invalid input should not record a round")
	}
}

func TestStep_ParsesChoice(t *testing.T) {
	e, _ := newFixedEngine(types.Scissors)
	result := e.Step("3")
	if result.Round == nil || result.Round.Human != types.Lizard {
		t.Fatalf("Step(\"3\") round = %+v", result.Round)
	}
	if result.Round.Outcome != types.Defeat {
		t.Errorf("Outcome = %v, want Defeat (Scissors decapitates Lizard)", result.Round.Outcome)
	}
}

// Repeating one move lets the frequency strategy beat every round after the first.
func TestFrequency_PunishesRepetition(t *testing.T) {
	e := New(rules.Default(), 2024)

	e.Play(types.Rock)
	for i := 0; i < 20; i++ {
		r := e.Play(types.Rock)
		if r.Round.Outcome != types.Defeat {
			t.Fatalf("round %d: outcome %v vs %v, want Defeat", r.Round.Round, r.Round.Outcome, r.Round.Computer)
		}
	}
}

func TestEngine_SameSeedSameGame(t *testing.T) {
	moves := []types.Choice{types.Rock, types.Paper, types.Paper, types.Spock, types.Lizard, types.Rock, types.Scissors}

	run := func() []types.Choice {
		e := New(rules.Default(), 77)
		var out []types.Choice
		for _, m := range moves {
			out = append(out, e.Play(m).Round.Computer)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("round %d: %v vs %v from same seed", i+1, a[i], b[i])
		}
	}
}

func TestUseStrategy(t *testing.T) {
	e := New(rules.Default(), 1)

	if err := e.UseStrategy("random", 0); err != nil {
		t.Fatalf("UseStrategy(random): %v", err)
	}
	if e.Strategy.Name() != "random" {
		t.Errorf("Name = %q", e.Strategy.Name())
	}

	if err := e.UseStrategy("frequency", 3); err != nil {
		t.Fatalf("UseStrategy(frequency): %v", err)
	}
	f, ok := e.Strategy.(*strategy.Frequency)
	if !ok || f.Window != 3 {
		t.Errorf("expected frequency strategy with window 3, got %#v", e.Strategy)
	}

	if err := e.UseStrategy("psychic", 0); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestPlay_Trace(t *testing.T) {
	e := New(rules.Default(), 3)
	e.Play(types.Rock)
	r := e.Play(types.Paper)

	if len(r.Trace) != 2 {
		t.Fatalf("expected 2 trace lines, got %q", r.Trace)
	}
	if !strings.Contains(r.Trace[0], "strategy=frequency window=[Rock]") {
		t.Errorf("trace = %q", r.Trace[0])
	}
	if !strings.HasPrefix(r.Trace[1], "[trace] rng draws=") {
		t.Errorf("trace = %q", r.Trace[1])
	}
}
