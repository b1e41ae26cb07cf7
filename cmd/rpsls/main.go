// rpsls plays Rock, Paper, Scissors, Lizard, Spock against a computer
// opponent that counters the player's most frequent recent picks.
// Usage: rpsls [--version] [--plain] [--script <file>] [--trace] [--seed <n>]
//
//	[--window <n>] [--strategy frequency|random] [--rules <path>]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/nathoo/rpsls/cli"
	"github.com/nathoo/rpsls/config"
	"github.com/nathoo/rpsls/engine"
	"github.com/nathoo/rpsls/engine/rules"
	"github.com/nathoo/rpsls/loader"
	"github.com/nathoo/rpsls/logging"
	"github.com/nathoo/rpsls/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: rpsls [--version] [--plain] [--script <file>] [--trace] [--seed <n>] " +
	"[--window <n>] [--strategy frequency|random] [--rules <path>]"

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fatalf("Error reading configuration: %v", err)
	}

	trace := false
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("rpsls %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			cfg.Plain = true
		case "--trace":
			trace = true
		case "--script":
			scriptFile = flagValue(args, &i)
		case "--rules":
			cfg.RulesPath = flagValue(args, &i)
			cfg.RulesExplicit = true
		case "--strategy":
			cfg.Strategy = flagValue(args, &i)
		case "--seed":
			v, err := strconv.ParseInt(flagValue(args, &i), 10, 64)
			if err != nil {
				fatalf("--seed requires an integer")
			}
			cfg.Seed = v
		case "--window":
			v, err := strconv.Atoi(flagValue(args, &i))
			if err != nil || v < 1 {
				fatalf("--window requires a positive integer")
			}
			cfg.Window = v
		default:
			fatalf("unknown argument %q\n%s", args[i], usage)
		}
	}

	interactive := scriptFile == "" && !cfg.Plain && isTerminal()
	logOut, closeLog := logWriter(cfg, interactive)
	defer closeLog()
	logging.Setup(cfg.LogLevel, logOut)

	table, err := loadRules(cfg)
	if err != nil {
		fatalf("Error loading rules: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = engine.NewSeed()
	}
	eng := engine.New(table, seed)
	if err := eng.UseStrategy(cfg.Strategy, cfg.Window); err != nil {
		fatalf("Error: %v", err)
	}
	log.Debug().Int64("seed", seed).Str("strategy", eng.Strategy.Name()).Msg("engine ready")

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fatalf("Error opening script: %v", err)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	if !interactive {
		c := cli.New(eng)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng, trace); err != nil {
		fatalf("Error: %v", err)
	}
}

// loadRules reads the configured rule source. A missing default source
// falls back to the built-in table; a missing explicit source is an error.
func loadRules(cfg *config.Config) (*rules.Table, error) {
	table, err := loader.Load(cfg.RulesPath)
	if err == nil {
		return table, nil
	}
	var missing *loader.MissingSourceError
	if errors.As(err, &missing) && !cfg.RulesExplicit {
		log.Warn().Str("path", missing.Path).Msg("rule source not found, using built-in rules")
		return rules.Default(), nil
	}
	return nil, err
}

// logWriter picks where log output goes. The TUI owns the terminal, so logs
// are discarded there unless a log file is configured.
func logWriter(cfg *config.Config, interactive bool) (io.Writer, func()) {
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			fatalf("Error opening log file: %v", err)
		}
		return f, func() { f.Close() }
	}
	if interactive {
		return io.Discard, func() {}
	}
	return os.Stderr, func() {}
}

func flagValue(args []string, i *int) string {
	if *i+1 >= len(args) {
		fatalf("%s requires a value", args[*i])
	}
	*i++
	return args[*i]
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
