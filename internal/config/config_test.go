package config

import (
	"bytes"
	"errors"
	"os"
	"testing"

	chesserrors "github.com/lgbarn/mailbox-chess/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Output.ShowFEN {
		t.Error("ShowFEN should be false by default")
	}
	if !cfg.Output.Prompt {
		t.Error("Prompt should be true by default")
	}
	if cfg.Game.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.Game.StartFEN)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }},
		{"no output", func(c *Config) { c.OutputFile = nil }},
		{"no log", func(c *Config) { c.LogFile = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(Summary).Build()

	cfg.Logf(Summary, "game %s started\n", "abc")
	cfg.Logf(Commentary, "move %d\n", 1)

	if got := buf.String(); got != "game abc started\n" {
		t.Errorf("log = %q", got)
	}

	cfg.LogFile = nil
	cfg.Logf(Silent, "dropped") // must not panic
}

// TestConfigBuilder verifies the fluent builder API
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	fen := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"

	cfg := NewConfigBuilder().
		WithVerbosity(Commentary).
		WithOutput(&out).
		WithLog(&log).
		WithStartFEN(fen).
		WithBoardDisplay(false).
		WithFENDisplay(true).
		WithPrompt(false).
		Build()

	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile not set")
	}
	if cfg.LogFile != &log {
		t.Error("LogFile not set")
	}
	if cfg.Game.StartFEN != fen {
		t.Errorf("StartFEN = %q", cfg.Game.StartFEN)
	}
	if cfg.Output.ShowBoard || !cfg.Output.ShowFEN || cfg.Output.Prompt {
		t.Errorf("Output = %+v", cfg.Output)
	}
}
