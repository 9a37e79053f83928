// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/mailbox-chess/internal/config"
)

var (
	// Position
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard setup")

	// Display options
	noBoard  = flag.Bool("noboard", false, "Don't print the board after each move")
	showFEN  = flag.Bool("showfen", false, "Print the position as FEN after each move")
	noPrompt = flag.Bool("noprompt", false, "Don't print a prompt before reading a move")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Log verbosity: 0=silent, 1=summary, 2=every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (no board, prompt or log)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.Game.StartFEN = *startFEN

	applyDisplayFlags(cfg)

	if *quiet {
		cfg.Verbosity = config.Silent
		cfg.Output.ShowBoard = false
		cfg.Output.Prompt = false
	}
}

// applyDisplayFlags configures what the console prints between moves.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.Prompt = !*noPrompt
}
