package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleComputer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleDefeat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	styleTie = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindComputer
	kindVictory
	kindDefeat
	kindTie
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Computer picked"):
		return kindComputer
	case strings.HasSuffix(line, "You won!"):
		return kindVictory
	case strings.HasSuffix(line, "You lost!"):
		return kindDefeat
	case strings.HasSuffix(line, "Draw game!"):
		return kindTie
	case strings.HasPrefix(line, "Invalid selection"),
		strings.HasPrefix(line, "Nothing to repeat"):
		return kindError
	default:
		return kindNarration
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindComputer:
		return styleComputer.Render(line)
	case kindVictory:
		return styleVictory.Render(line)
	case kindDefeat:
		return styleDefeat.Render(line)
	case kindTie:
		return styleTie.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
