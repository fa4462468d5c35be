package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, "voxnote-transcribe", cfg.Capture.Transcriber)
	assert.Equal(t, 2*time.Second, cfg.Capture.StopTimeout)
	assert.Equal(t, time.Second, cfg.TUI.TickInterval)
	assert.Equal(t, 50, cfg.TUI.MaxVisibleEntries)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VOXNOTE_TRANSCRIBER", "/usr/local/bin/whisper-stream")
	t.Setenv("VOXNOTE_CAPTURE_STOP_TIMEOUT", "500ms")
	t.Setenv("VOXNOTE_TUI_MAX_VISIBLE", "10")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	assert.Equal(t, "/usr/local/bin/whisper-stream", cfg.Capture.Transcriber)
	assert.Equal(t, 500*time.Millisecond, cfg.Capture.StopTimeout)
	assert.Equal(t, 10, cfg.TUI.MaxVisibleEntries)
}

func TestLoadFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("VOXNOTE_CAPTURE_STOP_TIMEOUT", "not-a-duration")
	t.Setenv("VOXNOTE_TUI_MAX_VISIBLE", "-3")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	assert.Equal(t, 2*time.Second, cfg.Capture.StopTimeout)
	assert.Equal(t, 50, cfg.TUI.MaxVisibleEntries)
}
