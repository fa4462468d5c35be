// Package capture bridges Voxnote to an external speech-to-text capability.
//
// A capture session produces a stream of transcript updates followed by
// exactly one terminal event, either Ended or Errored. Each PartialText
// carries the full transcript so far and replaces, not appends to, the
// current input text.
package capture

import "context"

// Event is a capture session event delivered to the UI event loop.
type Event interface {
	captureEvent()
}

// PartialText carries the transcript so far.
type PartialText struct {
	Text string
}

// Ended signals that the capture session finished normally.
type Ended struct{}

// Errored signals that the capture session failed mid-stream.
// Reason is recorded for diagnostics only; the UI just clears its
// recording flag.
type Errored struct {
	Reason error
}

func (PartialText) captureEvent() {}
func (Ended) captureEvent()       {}
func (Errored) captureEvent()     {}

// Bridge is the speech capture capability surface.
//
// At most one session may be active per bridge. Stop is idempotent and a
// no-op when no session is active.
type Bridge interface {
	// Start begins a capture session and returns its event channel.
	// The channel is closed after the terminal event.
	Start(ctx context.Context) (<-chan Event, error)

	// Stop ends the active session, if any.
	Stop()

	// Active reports whether a session is currently running.
	Active() bool
}
