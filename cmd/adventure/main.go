// Adventure is a room-graph text adventure driven by tab-separated or Lua
// world files.
// Usage: adventure [--version] [--plain] [--script <file>] [--trace] [--config <file>] [game]
package main

import (
	"fmt"
	"os"

	"github.com/nathoo/adventure/cli"
	"github.com/nathoo/adventure/engine"
	"github.com/nathoo/adventure/engine/world"
	"github.com/nathoo/adventure/internal/config"
	"github.com/nathoo/adventure/internal/logger"
	"github.com/nathoo/adventure/loader"
	"github.com/nathoo/adventure/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: adventure [--version] [--plain] [--script <file>] [--trace] [--config <file>] [game]\n"

func main() {
	plain := false
	trace := false
	var game, scriptFile, configFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("adventure %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a file path\n", args[i])
				os.Exit(1)
			}
			if args[i] == "--script" {
				scriptFile = args[i+1]
			} else {
				configFile = args[i+1]
			}
			i++
		case "-h", "--help":
			fmt.Print(usage)
			return
		default:
			if game == "" {
				game = args[i]
			}
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if game == "" {
		game = cfg.DefaultGame
	}

	log, closeLog, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	defs, err := loader.LoadGame(cfg.DataDir, game, cfg.SynonymsPath())
	if err != nil {
		logger.WithError(log, err).Error("loading game", "game", game)
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	w, err := world.New(defs)
	if err != nil {
		logger.WithError(log, err).Error("building world", "game", game)
		fmt.Fprintf(os.Stderr, "Error building world: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	useTUI := scriptFile == "" && !plain && isTerminal()
	if useTUI {
		log = logger.ForAltScreen(cfg, log)
	}

	eng := engine.New(w, log)

	// Script mode: read commands from a file and echo them.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	if !useTUI {
		c := cli.New(eng)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
