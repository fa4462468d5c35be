package capture

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/manav03panchal/voxnote/internal/config"
	"github.com/manav03panchal/voxnote/internal/errors"
	"github.com/manav03panchal/voxnote/internal/logging"
)

// ExecBridge runs an external transcriber command and turns each line it
// writes to stdout into a PartialText event. The transcriber is expected to
// print the full transcript so far on every line.
type ExecBridge struct {
	cfg config.CaptureConfig

	mu     sync.Mutex
	cancel context.CancelFunc
	active bool

	stopRequested atomic.Bool
}

// NewExecBridge creates a bridge for the configured transcriber command.
func NewExecBridge(cfg config.CaptureConfig) *ExecBridge {
	return &ExecBridge{cfg: cfg}
}

// Start begins a capture session. It fails with ErrCaptureUnsupported when
// the transcriber command is not installed, and with ErrCaptureActive when a
// session is already running.
func (b *ExecBridge) Start(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.active {
		return nil, errors.ErrCaptureActive
	}

	path, err := exec.LookPath(b.cfg.Transcriber)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCaptureUnsupported, "transcriber %q", b.cfg.Transcriber)
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, path, b.cfg.TranscriberArgs...)

	// Ask the transcriber to finish gracefully on stop; kill after the
	// configured grace period.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = b.cfg.StopTimeout

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, errors.NewSystemError("failed to open transcriber output", err)
	}

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, errors.NewSystemError("failed to start transcriber", err)
	}

	logging.Info("capture session started", logging.KeyOperation, "capture.start", "transcriber", path)

	b.cancel = cancel
	b.active = true
	b.stopRequested.Store(false)

	events := make(chan Event, 16)
	go b.pump(cmd, stdout, events)
	return events, nil
}

// Stop requests the active session to end. Safe to call when no session is
// active or after the session already ended.
func (b *ExecBridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active || b.cancel == nil {
		return
	}

	b.stopRequested.Store(true)
	b.cancel()
}

// Active reports whether a capture session is currently running.
func (b *ExecBridge) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// pump forwards transcript lines as events and emits the terminal event
// once the transcriber exits.
func (b *ExecBridge) pump(cmd *exec.Cmd, stdout io.Reader, events chan<- Event) {
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		events <- PartialText{Text: line}
	}

	err := cmd.Wait()

	b.mu.Lock()
	b.active = false
	b.cancel = nil
	b.mu.Unlock()

	if err != nil && !b.stopRequested.Load() {
		logging.Error("capture session failed",
			logging.KeyOperation, "capture.pump",
			logging.KeyError, err.Error())
		events <- Errored{Reason: err}
	} else {
		logging.Info("capture session ended", logging.KeyOperation, "capture.pump")
		events <- Ended{}
	}
	close(events)
}
