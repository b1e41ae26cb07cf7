package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/rpsls/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing the
// round, the tallies and the opponent strategy.
func (m Model) renderStatusBar() string {
	st := m.engine.Stats()

	left := fmt.Sprintf(" Round %d | W:%d L:%d T:%d", st.Rounds+1, st.Victories, st.Defeats, st.Ties)
	right := fmt.Sprintf("%s ", m.engine.Strategy.Name())

	// Add the streak and seed when they fit.
	if outcome, n, ok := state.Streak(m.engine.Session); ok && n > 1 {
		candidate := fmt.Sprintf("%d×%s | %s ", n, outcome, m.engine.Strategy.Name())
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}
	if withSeed := fmt.Sprintf("%sseed %d ", right, m.engine.RNG.Seed()); m.trace &&
		lipgloss.Width(left)+lipgloss.Width(withSeed)+2 < m.width {
		right = withSeed
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
