package cli

import (
	"fmt"
	"strings"

	"github.com/nathoo/rpsls/engine"
	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/engine/state"
	"github.com/nathoo/rpsls/types"
)

// The report functions render meta-command output. The TUI shares them.

// ChoicePrompt lists the choices with their menu indices.
func ChoicePrompt() string {
	parts := make([]string, 0, types.NumChoices)
	for _, c := range types.AllChoices() {
		parts = append(parts, fmt.Sprintf("%s[%d]", c, int(c)))
	}
	return "Pick a choice (" + strings.Join(parts, ", ") + "): "
}

// HelpLines describes the meta-commands and input forms.
func HelpLines() []string {
	return []string{
		"System:",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /stats        — Wins, losses, ties and streak",
		"  /history [n]  — Show the last n rounds (default 10)",
		"  /rules        — List what beats what",
		"  /trace        — Toggle debug trace output",
		"",
		"Playing:",
		"  0-4                   — Pick by menu number",
		"  rock, paper, ...      — Pick by name (any case)",
		"  r, p, s, l, k         — Shortcuts (k = Spock)",
		"  again (g)             — Play your last choice again",
	}
}

// StatsLines summarizes the session.
func StatsLines(eng *engine.Engine) []string {
	st := eng.Stats()
	if st.Rounds == 0 {
		return []string{"No rounds played yet."}
	}

	lines := []string{
		fmt.Sprintf("Rounds: %d", st.Rounds),
		fmt.Sprintf("Victories: %d  Defeats: %d  Ties: %d", st.Victories, st.Defeats, st.Ties),
		fmt.Sprintf("Win rate: %.0f%%", state.WinRate(st)*100),
	}
	if outcome, n, ok := state.Streak(eng.Session); ok && n > 1 {
		lines = append(lines, fmt.Sprintf("Streak: %d × %s", n, outcome))
	}

	counts := state.ChoiceCounts(eng.Session)
	var picks []string
	for _, c := range types.AllChoices() {
		if counts[c] > 0 {
			picks = append(picks, fmt.Sprintf("%s %d", c, counts[c]))
		}
	}
	lines = append(lines, "Your picks: "+strings.Join(picks, ", "))
	return lines
}

// HistoryLines lists up to n recent rounds, oldest first.
func HistoryLines(eng *engine.Engine, n int) []string {
	results := state.LastResults(eng.Session, n)
	if len(results) == 0 {
		return []string{"No rounds played yet."}
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("#%d %s vs %s: %s", r.Round, r.Human, r.Computer, r.Outcome))
	}
	return lines
}

// RulesLines lists every relation in the table.
func RulesLines(t *rules.Table) []string {
	rels := t.Relations()
	lines := make([]string, 0, len(rels))
	for _, r := range rels {
		text := r.Reason
		if text == "" {
			text = fmt.Sprintf("%s beats %s", r.Winner, r.Loser)
		}
		lines = append(lines, text)
	}
	return lines
}
