// Package config provides configuration for mailbox-chess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // Nothing on the log
	Summary    = 1 // Start and end of game
	Commentary = 2 // Every move and status change
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls what is written to LogFile: 0=nothing,
	// 1=game summary, 2=running commentary.
	Verbosity int

	// Grouped settings
	Output OutputConfig
	Game   GameConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// OutputConfig holds settings related to what the console loop prints.
type OutputConfig struct {
	// ShowBoard prints the board after every applied move.
	ShowBoard bool

	// ShowFEN prints the position as FEN after every applied move.
	ShowFEN bool

	// Prompt prints a prompt naming the side to move before each read.
	Prompt bool
}

// GameConfig holds settings for a new game.
type GameConfig struct {
	// StartFEN is the starting position; empty means the standard setup.
	StartFEN string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() OutputConfig {
	return OutputConfig{
		ShowBoard: true,
		Prompt:    true,
	}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if c.LogFile == nil {
		return fmt.Errorf("no log stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
