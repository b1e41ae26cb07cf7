// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the rpsls game engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/rpsls/engine"
	"github.com/nathoo/rpsls/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the round loop: prompt for a choice, play the round, then ask
// whether to play another. Meta-commands are accepted at the choice prompt.
func (c *CLI) Run() {
	c.printLine("Rock, Paper, Scissors, Lizard, Spock")
	c.printLine("Type /help for commands, /rules to see what beats what.")

	scanner := bufio.NewScanner(c.In)
	for {
		c.printLine("")
		input, ok := c.readLine(scanner, ChoicePrompt())
		if !ok {
			break
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last choice.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if result.Round == nil {
			continue
		}
		c.lastCmd = input

		if c.Trace {
			c.printTrace(result)
		}

		c.printLine("")
		answer, ok := c.readLine(scanner, "Another round? (y/n): ")
		if !ok || strings.ToLower(answer) != "y" {
			break
		}
	}

	c.printSummary()
}

// readLine prompts and returns the next non-empty, non-comment line.
func (c *CLI) readLine(scanner *bufio.Scanner, prompt string) (string, bool) {
	for {
		c.print(prompt)
		if !scanner.Scan() {
			c.printLine("")
			return "", false
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}
		return input, true
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSummary()
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.printLines(HelpLines())

	case "/stats":
		c.printLines(StatsLines(c.Engine))

	case "/history":
		n := 10
		if arg != "" {
			v, err := strconv.Atoi(arg)
			if err != nil || v < 1 {
				c.printSystem(fmt.Sprintf("Bad count %q.", arg))
				return false
			}
			n = v
		}
		c.printLines(HistoryLines(c.Engine, n))

	case "/rules":
		c.printLines(RulesLines(c.Engine.Table))

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) printSummary() {
	st := c.Engine.Stats()
	if st.Rounds == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("%d rounds: %d won, %d lost, %d tied.",
		st.Rounds, st.Victories, st.Defeats, st.Ties))
}

func (c *CLI) printTrace(result types.Result) {
	c.printLines(result.Trace)
}

func (c *CLI) printResult(result types.Result) {
	c.printLines(result.Output)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
