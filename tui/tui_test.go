package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/rpsls/engine"
	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"Computer picked Spock.", kindComputer},
		{"Paper disproves Spock. You won!", kindVictory},
		{"Spock vaporizes Rock. You lost!", kindDefeat},
		{"User and computer picked Lizard. Draw game!", kindTie},
		{"Invalid selection. Pick a choice in range [0, 4]!", kindError},
		{"Nothing to repeat.", kindError},
		{"[3 rounds: 1 won, 1 lost, 1 tied.]", kindSystem},
		{"[trace] round 1 strategy=frequency window=[]", kindTrace},
		{"Rock, Paper, Scissors, Lizard, Spock", kindNarration},
		{"", kindNarration},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"Scissors decapitates Lizard. You won!", 20,
			"Scissors decapitates\nLizard. You won!"},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("rock")
	h.Push("paper")
	h.Push("spock")

	for _, want := range []string{"spock", "paper", "rock", "rock"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("rock")
	h.Push("paper")

	h.Prev() // "paper"
	h.Prev() // "rock"

	next, ok := h.Next()
	if !ok || next != "paper" {
		t.Errorf("expected 'paper', got %q (ok=%v)", next, ok)
	}

	if _, ok := h.Next(); ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	if len(h.entries) != 2 || h.entries[0] != "b" {
		t.Errorf("entries = %v, want [b c]", h.entries)
	}
}

func TestHistory_SkipsBlankAndRepeats(t *testing.T) {
	h := NewHistory(5)
	h.Push("rock")
	h.Push("rock")
	h.Push("   ")
	h.Push("paper")
	h.Push("rock")

	if len(h.entries) != 3 {
		t.Errorf("entries = %v, want 3", h.entries)
	}
}

type rockStrategy struct{}

func (rockStrategy) Select([]types.Choice) types.Choice { return types.Rock }
func (rockStrategy) Name() string                      { return "rock" }

func newTestModel() Model {
	eng := engine.New(rules.Default(), 1)
	eng.Strategy = rockStrategy{}
	m := New(eng)
	m, _ = step(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func step(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func submit(m Model, input string) (Model, tea.Cmd) {
	m.input.SetValue(input)
	return step(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func transcript(m Model) string {
	var lines []string
	for _, rl := range m.rawLines {
		lines = append(lines, rl.text)
	}
	return strings.Join(lines, "\n")
}

func TestEnter_PlaysRound(t *testing.T) {
	m := newTestModel()
	m, _ = submit(m, "paper")

	out := transcript(m)
	if !strings.Contains(out, "> paper") {
		t.Errorf("expected echoed input, got %q", out)
	}
	if !strings.Contains(out, "Paper covers Rock. You won!") {
		t.Errorf("expected victory line, got %q", out)
	}
	if m.engine.Stats().Victories != 1 {
		t.Errorf("stats = %+v", m.engine.Stats())
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after enter")
	}
}

func TestEnter_InvalidInput(t *testing.T) {
	m := newTestModel()
	m, _ = submit(m, "banana")

	if !strings.Contains(transcript(m), "Invalid selection") {
		t.Errorf("expected invalid selection message, got %q", transcript(m))
	}
	if m.engine.Stats().Rounds != 0 {
		t.Error("invalid input should not play a round")
	}
}

func TestEnter_Again(t *testing.T) {
	m := newTestModel()
	m, _ = submit(m, "g")
	if !strings.Contains(transcript(m), "Nothing to repeat.") {
		t.Errorf("expected nothing to repeat, got %q", transcript(m))
	}

	m, _ = submit(m, "spock")
	m, _ = submit(m, "again")
	if got := m.engine.Stats().Victories; got != 2 {
		t.Errorf("victories = %d, want 2", got)
	}
}

func TestEnter_Trace(t *testing.T) {
	m := newTestModel()
	m, _ = submit(m, "/trace")
	m, _ = submit(m, "rock")

	if !strings.Contains(transcript(m), "[trace] round 1 strategy=rock") {
		t.Errorf("expected trace lines, got %q", transcript(m))
	}
}

func TestEnter_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel()
	m, cmd := submit(m, "/quit")
	if !m.quitting {
		t.Error("expected quitting after /quit")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel()

	for _, cmd := range []string{"/quit", "/exit"} {
		if _, quit := m.handleMeta(cmd); !quit {
			t.Errorf("expected quit=true for %s", cmd)
		}
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel()

	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}
	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/quit", "/stats", "/history", "/rules", "PgUp"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_History(t *testing.T) {
	m := newTestModel()
	m, _ = submit(m, "lizard")

	output, _ := m.handleMeta("/history")
	if len(output) != 1 || output[0] != "#1 Lizard vs Rock: Defeat" {
		t.Errorf("history = %v", output)
	}

	output, _ = m.handleMeta("/history x")
	if len(output) != 1 || !strings.Contains(output[0], "Bad count") {
		t.Errorf("expected bad count, got %v", output)
	}
}

func TestHandleMeta_Rules(t *testing.T) {
	m := newTestModel()
	output, _ := m.handleMeta("/rules")
	if len(output) != 10 {
		t.Errorf("expected 10 rules, got %d", len(output))
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel()
	output, quit := m.handleMeta("/save")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command, got %v", output)
	}
}

func TestStatusBar(t *testing.T) {
	m := newTestModel()
	m, _ = submit(m, "paper")
	m, _ = submit(m, "paper")

	bar := m.renderStatusBar()
	for _, want := range []string{"Round 3", "W:2 L:0 T:0", "rock"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}
}
