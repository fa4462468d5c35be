package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/voxnote/internal/capture"
	errs "github.com/manav03panchal/voxnote/internal/errors"
	"github.com/manav03panchal/voxnote/internal/logging"
	"github.com/manav03panchal/voxnote/internal/model"
	"github.com/manav03panchal/voxnote/internal/storage"
	"github.com/manav03panchal/voxnote/internal/view"
)

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// captureMsg wraps one event from the active capture session.
type captureMsg struct {
	event capture.Event
}

// captureClosedMsg is sent when the capture event channel drains.
type captureClosedMsg struct{}

// errMsg is sent when an operation fails.
type errMsg struct {
	err error
}

// AppModel is the bubbletea model for the note widget.
//
// All store mutations and projection recomputes happen synchronously inside
// Update; the capture bridge is the only asynchronous producer and its
// events are serialized through the bubbletea message loop.
type AppModel struct {
	// Data
	entries []*model.Entry

	// Collaborators
	repo      *storage.EntryRepo
	projector *view.Projector
	bridge    capture.Bridge

	// UI state
	input      textinput.Model
	sortOrder  model.SortOrder
	cursor     int
	recording  bool
	events     <-chan capture.Event
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	tickInterval time.Duration
	maxVisible   int
}

// AppConfig holds configuration for the note widget.
type AppConfig struct {
	Repo         *storage.EntryRepo
	Projector    *view.Projector
	Bridge       capture.Bridge
	TickInterval time.Duration
	MaxVisible   int
}

// NewAppModel creates a new app model.
func NewAppModel(config AppConfig) *AppModel {
	if config.TickInterval == 0 {
		config.TickInterval = time.Second
	}
	if config.MaxVisible == 0 {
		config.MaxVisible = 50
	}

	input := textinput.New()
	input.Placeholder = "Type a note, or ctrl+r to dictate"
	input.CharLimit = model.MaxEntryTextLength
	input.Focus()

	return &AppModel{
		repo:         config.Repo,
		projector:    config.Projector,
		bridge:       config.Bridge,
		input:        input,
		sortOrder:    model.SortNewest,
		tickInterval: config.TickInterval,
		maxVisible:   config.MaxVisible,
	}
}

// Init initializes the model.
func (m *AppModel) Init() tea.Cmd {
	m.refresh()
	return tea.Batch(m.tickCmd(), textinput.Blink)
}

// Update handles messages and updates the model.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case captureMsg:
		return m.handleCaptureEvent(msg.event)

	case captureClosedMsg:
		m.recording = false
		m.events = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	// Remaining messages (cursor blink etc.) belong to the text input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m *AppModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.bridge.Stop()
		return m, tea.Quit

	case "enter":
		m.addEntry()
		return m, nil

	case "ctrl+s":
		m.sortOrder = m.sortOrder.Next()
		m.cursor = 0
		m.refresh()
		return m, nil

	case "ctrl+f":
		m.toggleFavorite()
		return m, nil

	case "ctrl+r":
		return m, m.toggleRecording()

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	}

	// Everything else goes to the text input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addEntry stores the current input text. Blank input is silently ignored.
func (m *AppModel) addEntry() {
	entry, err := m.repo.Add(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	if entry == nil {
		// Whitespace-only input, nothing stored.
		return
	}

	m.input.Reset()
	m.cursor = 0
	m.refresh()
}

// toggleFavorite flips the flag on the entry under the cursor.
func (m *AppModel) toggleFavorite() {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return
	}

	id := m.entries[m.cursor].ID
	if _, err := m.repo.ToggleFavorite(id); err != nil {
		m.err = err
		return
	}
	m.refresh()

	// Under the favorites view the toggled entry drops out; keep the
	// cursor on the list.
	if m.cursor >= len(m.entries) && m.cursor > 0 {
		m.cursor = len(m.entries) - 1
	}
}

// toggleRecording starts or stops a capture session.
func (m *AppModel) toggleRecording() tea.Cmd {
	if m.recording {
		m.bridge.Stop()
		return nil
	}

	events, err := m.bridge.Start(context.Background())
	if err != nil {
		if errors.Is(err, errs.ErrCaptureUnsupported) {
			m.setMessage("Speech capture is not available on this system", 3*time.Second)
		} else {
			m.err = err
		}
		return nil
	}

	m.recording = true
	m.events = events
	return listenCapture(events)
}

// handleCaptureEvent applies one capture event to the UI state.
func (m *AppModel) handleCaptureEvent(ev capture.Event) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case capture.PartialText:
		// Each partial replaces the input text.
		m.input.SetValue(ev.Text)
		m.input.CursorEnd()
		return m, listenCapture(m.events)

	case capture.Ended:
		m.recording = false
		m.events = nil
		return m, nil

	case capture.Errored:
		m.recording = false
		m.events = nil
		m.setMessage("Recording failed", 3*time.Second)
		logging.Warn("capture errored", logging.KeyError, ev.Reason.Error())
		return m, nil
	}

	return m, listenCapture(m.events)
}

// refresh recomputes the projection from the store.
func (m *AppModel) refresh() {
	entries, err := m.projector.View(m.sortOrder)
	if err != nil {
		m.err = err
		return
	}
	m.entries = entries
	m.err = nil
}

// View renders the widget.
func (m *AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, headerLine(time.Now().Format("Mon Jan 2, 15:04:05"), m.recording))

	if m.err != nil {
		sections = append(sections, StyleError.Render("Error: "+m.err.Error()))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	inputBox := StyleInputBox
	if m.recording {
		inputBox = StyleRecordingInputBox
	}
	sections = append(sections, inputBox.Width(m.width-4).Render(m.input.View()))

	entriesComp := NewEntriesComponent(m.entries, m.cursor, m.width, m.maxVisible, m.sortOrder)
	sections = append(sections, entriesComp.View())

	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// setMessage sets a temporary message.
func (m *AppModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *AppModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenCapture waits for the next capture event.
func listenCapture(events <-chan capture.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return captureClosedMsg{}
		}
		return captureMsg{event: ev}
	}
}

// Run starts the note widget TUI.
func Run(config AppConfig) error {
	model := NewAppModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
