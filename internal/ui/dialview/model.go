// Package dialview binds a dial engine to bubbletea: mouse, keys and frame
// ticks go in, host messages and a rendered strip come out.
package dialview

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/dial"
	"github.com/llehouerou/sukinote/internal/ui"
)

const (
	frameInterval = time.Second / 60
	flashDuration = 120 * time.Millisecond
)

// Model is one dial on screen. Use it through a pointer: the engine
// callbacks hold on to it.
type Model struct {
	ui.Base
	id    int
	d     *dial.Dial
	clock dial.Clock
	log   *slog.Logger

	// Screen position of the dial's top-left cell, for mouse hit tests.
	x, y int

	pressed bool
	gen     int
	pending []tea.Msg

	flashIndex int
	flashUntil time.Time
}

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces the wall clock for the dial and its flash timing.
func WithClock(c dial.Clock) Option {
	return func(m *Model) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithLogger sets the logger handed to the engine.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates a dial view with the given id. Nothing is laid out until
// SetWidth is called.
func New(id int, cfg dial.Config, items []dial.Item, opts ...Option) *Model {
	m := &Model{
		id:         id,
		clock:      dial.SystemClock(),
		log:        slog.New(slog.DiscardHandler),
		flashIndex: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.d = dial.New(cfg, dial.Callbacks{
		OnScrollBegin: func() {
			m.emit(ScrollBeganMsg{ID: m.id})
		},
		OnCenteredItemChanged: func(i int) {
			m.emit(CenteredChangedMsg{ID: m.id, Index: i})
		},
		OnScrollEnd: func(i int) {
			m.emit(ScrollEndedMsg{ID: m.id, Index: i})
		},
		OnTap: func(i int) {
			m.emit(TappedMsg{ID: m.id, Index: i})
		},
		OnPulse: func(i int) {
			m.flashIndex = i
			m.flashUntil = m.clock.Now().Add(flashDuration)
			m.emit(PulseMsg{ID: m.id, Index: i})
		},
	}, dial.WithClock(m.clock), dial.WithLogger(m.log.With("dial", id)))
	m.d.SetItems(items)
	return m
}

func (m *Model) emit(msg tea.Msg) {
	m.pending = append(m.pending, msg)
}

// ID returns the dial id carried by every message.
func (m *Model) ID() int { return m.id }

// Centered returns the centered item index, or -1.
func (m *Model) Centered() int { return m.d.CenteredIndex() }

// Phase returns the engine's scroll phase.
func (m *Model) Phase() dial.Phase { return m.d.Phase() }

// Compact reports whether the dial is (or is becoming) compact.
func (m *Model) Compact() bool { return m.d.IsCompact() }

// Len returns the number of items.
func (m *Model) Len() int { return len(m.d.Items()) }

// Rows returns the dial's height in terminal rows.
func (m *Model) Rows() int {
	return max(1, int(m.d.Config().ItemSize.Height))
}

// SetOrigin records where the dial is drawn on screen.
func (m *Model) SetOrigin(x, y int) {
	m.x, m.y = x, y
}

// SetWidth resizes the dial. The first valid width lays it out, which
// reports the initial centered item.
func (m *Model) SetWidth(width int) tea.Cmd {
	m.resize(width)
	return m.flush()
}

func (m *Model) resize(width int) {
	m.SetSize(width, m.Rows())
	m.d.SetViewport(float64(width), float64(m.Rows()))
}

// Select centers item i. Animated selection settles and reports
// ScrollEndedMsg; a jump only reports the centered change.
func (m *Model) Select(i int, animated bool) tea.Cmd {
	m.d.ScrollToIndex(i, animated)
	return m.flush()
}

// Advance runs one frame at the current time, for hosts that drive the
// dial from their own loop instead of its ticks.
func (m *Model) Advance() tea.Cmd {
	if m.d.Disposed() {
		return nil
	}
	m.d.Tick()
	return m.flush()
}

// Dispose stops the dial; pending ticks become no-ops.
func (m *Model) Dispose() {
	m.d.Dispose()
	m.pending = nil
	m.gen++
}

// Contains reports whether screen cell (x, y) is on the visible strip.
func (m *Model) Contains(x, y int) bool {
	if y < m.y || y >= m.y+m.Rows() {
		return false
	}
	left, visible := m.window()
	return x >= m.x+left && x < m.x+left+visible
}

// Update feeds a message to the dial. It returns nil for messages that
// are not for this dial.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.handle(msg) {
		return nil
	}
	return m.flush()
}

// handle applies msg to the engine and reports whether it was consumed.
func (m *Model) handle(msg tea.Msg) bool {
	if m.d.Disposed() {
		return false
	}
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id || msg.gen != m.gen {
			return false
		}
		m.d.Tick()
		return true
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return false
		}
		return m.handleKey(msg)
	}
	return false
}

func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	vx := float64(msg.X - m.x)
	switch msg.Action {
	case tea.MouseActionPress:
		if !m.Contains(msg.X, msg.Y) {
			return false
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.pressed = true
			m.d.PointerDown(vx)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.d.Step(-1)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.d.Step(1)
		default:
			return false
		}
		return true
	case tea.MouseActionMotion:
		if !m.pressed {
			return false
		}
		m.d.PointerMove(vx)
		return true
	case tea.MouseActionRelease:
		if !m.pressed {
			return false
		}
		m.pressed = false
		m.d.PointerUp(vx)
		return true
	}
	return false
}

func (m *Model) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "h":
		m.d.Step(-1)
	case "right", "l":
		m.d.Step(1)
	case "home":
		m.d.Tap(0)
	case "end":
		m.d.Tap(m.Len() - 1)
	default:
		return false
	}
	return true
}

// flush turns queued engine events into host messages, in order, and
// schedules the next tick.
func (m *Model) flush() tea.Cmd {
	events := m.drain()
	return tea.Batch(sequence(events), m.schedule())
}

func (m *Model) drain() []tea.Msg {
	events := m.pending
	m.pending = nil
	return events
}

func sequence(events []tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(events))
	for i, ev := range events {
		cmds[i] = func() tea.Msg { return ev }
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// schedule asks for a frame while anything animates, or a single tick at
// the next timer deadline. Each schedule supersedes the previous one.
func (m *Model) schedule() tea.Cmd {
	if m.d.Disposed() {
		return nil
	}
	now := m.clock.Now()
	var delay time.Duration
	if m.d.Active() || now.Before(m.flashUntil) {
		delay = frameInterval
	} else {
		deadline, ok := m.d.NextDeadline()
		if !ok {
			return nil
		}
		delay = max(deadline.Sub(now), 0)
	}
	m.gen++
	id, gen := m.id, m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}
