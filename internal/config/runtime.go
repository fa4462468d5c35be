// Package config provides centralized configuration for Voxnote runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Capture configuration
	Capture CaptureConfig

	// TUI configuration
	TUI TUIConfig
}

// CaptureConfig holds speech capture configuration.
type CaptureConfig struct {
	// Transcriber is the external speech-to-text command. Each line it
	// writes to stdout replaces the current transcript.
	// Default: "voxnote-transcribe"
	Transcriber string

	// TranscriberArgs are extra arguments passed to the transcriber.
	TranscriberArgs []string

	// StopTimeout is how long to wait for the transcriber to exit after
	// a stop request before it is killed.
	// Default: 2s
	StopTimeout time.Duration
}

// TUIConfig holds terminal UI configuration.
type TUIConfig struct {
	// TickInterval is how often the clock in the header refreshes.
	// Default: 1s
	TickInterval time.Duration

	// MaxVisibleEntries caps how many entries are rendered at once.
	// Default: 50
	MaxVisibleEntries int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Capture: CaptureConfig{
			Transcriber: "voxnote-transcribe",
			StopTimeout: 2 * time.Second,
		},
		TUI: TUIConfig{
			TickInterval:      time.Second,
			MaxVisibleEntries: 50,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("VOXNOTE_TRANSCRIBER"); v != "" {
		c.Capture.Transcriber = v
	}
	if v := os.Getenv("VOXNOTE_CAPTURE_STOP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Capture.StopTimeout = d
		}
	}
	if v := os.Getenv("VOXNOTE_TUI_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TUI.TickInterval = d
		}
	}
	if v := os.Getenv("VOXNOTE_TUI_MAX_VISIBLE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TUI.MaxVisibleEntries = n
		}
	}
}

// Reload re-reads configuration from the environment. Used by tests.
func (c *RuntimeConfig) Reload() {
	*c = *DefaultRuntimeConfig()
	c.loadFromEnv()
}
