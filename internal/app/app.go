// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/llehouerou/sukinote/internal/analytics"
	"github.com/llehouerou/sukinote/internal/app/popupctl"
	"github.com/llehouerou/sukinote/internal/config"
	"github.com/llehouerou/sukinote/internal/dial"
	"github.com/llehouerou/sukinote/internal/keymap"
	"github.com/llehouerou/sukinote/internal/notes"
	"github.com/llehouerou/sukinote/internal/notify"
	"github.com/llehouerou/sukinote/internal/state"
	"github.com/llehouerou/sukinote/internal/store"
	"github.com/llehouerou/sukinote/internal/ui"
	"github.com/llehouerou/sukinote/internal/ui/cursor"
	"github.com/llehouerou/sukinote/internal/ui/dialview"
	"github.com/llehouerou/sukinote/internal/ui/editor"
	"github.com/llehouerou/sukinote/internal/ui/searchbar"
)

// Dial ids carried by dialview messages. The editor's dial uses
// editor.DialID.
const (
	CategoryDialID = 1
	SortDialID     = 2
)

// Startup sort: newest notes first.
const (
	defaultSortType  = notes.SortByCreatedDate
	defaultSortOrder = notes.Descending
)

// FocusTarget is the component receiving keys when no popup is open.
type FocusTarget int

const (
	FocusList FocusTarget = iota
	FocusCategoryDial
	FocusSortDial
)

// Model is the root application model containing all state.
type Model struct {
	Store     store.Interface
	Analytics analytics.Client
	Notifier  notify.Notifier // nil disables anniversary reminders
	State     state.Interface // nil disables view persistence
	Log       *slog.Logger
	Clipboard func(string) error

	Notes     []notes.Note // every note, newest first
	Visible   []notes.Note // Notes filtered and sorted for the list
	Filter    notes.Category
	SortType  notes.SortType
	SortOrder notes.SortOrder
	Loaded    bool

	CategoryDial *dialview.Model
	SortDial     *dialview.Model
	Cursor       cursor.Cursor
	Popups       *popupctl.Manager
	Search       searchbar.Model
	Keys         *keymap.Resolver
	Focus        FocusTarget
	Status       Notification

	Width  int
	Height int

	// selectedID is the note the cursor follows across filter and sort
	// changes.
	selectedID     uuid.UUID
	seedSamples    bool
	reminded       bool
	savedView      state.ViewState
	storeChanges   <-chan struct{}
	notificationID int64
	now            func() time.Time
}

// Option customizes the model.
type Option func(*options)

type options struct {
	analytics analytics.Client
	notifier  notify.Notifier
	state     state.Interface
	log       *slog.Logger
	clock     dial.Clock
	clipboard func(string) error
	changes   <-chan struct{}
}

// WithAnalytics sets the analytics sink (default: events go to the logger).
func WithAnalytics(c analytics.Client) Option {
	return func(o *options) { o.analytics = c }
}

// WithNotifier enables desktop reminders for anniversaries falling today.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithState restores the last filter, sort and selected note and keeps
// them saved.
func WithState(s state.Interface) Option {
	return func(o *options) { o.state = s }
}

// WithClipboard replaces the system clipboard used to copy notes.
func WithClipboard(write func(string) error) Option {
	return func(o *options) { o.clipboard = write }
}

// WithStoreChanges reloads the notes each time changes receives, such as
// after another process wrote to the store.
func WithStoreChanges(changes <-chan struct{}) Option {
	return func(o *options) { o.changes = changes }
}

// WithLogger sets the diagnostic logger (default: discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock replaces the wall clock for the dials and note timestamps.
func WithClock(c dial.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New creates the application model from configuration.
func New(cfg *config.Config, st store.Interface, opts ...Option) Model {
	o := options{
		log:       slog.New(slog.DiscardHandler),
		clock:     dial.SystemClock(),
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	if o.analytics == nil {
		o.analytics = analytics.New(o.log)
	}

	view := restoreView(o.state, o.log)

	dialCfg := cfg.GetDialConfig()
	dialOpts := []dialview.Option{dialview.WithClock(o.clock), dialview.WithLogger(o.log)}

	categoryDial := dialview.New(CategoryDialID, dialview.TerminalConfig(dialCfg, filterIndex(view.Filter)),
		notes.CategoryDialItems(), dialOpts...)

	// The sort dial is a short strip that always shows every sort type.
	sortCfg := dialCfg
	off := false
	sortCfg.Compact = &off
	sortCfg.ItemHeight = ui.DialRows
	sortDial := dialview.New(SortDialID, dialview.TerminalConfig(sortCfg, sortIndex(view.SortType)),
		notes.SortDialItems(), dialOpts...)

	ed := editor.New(dialCfg, dialOpts...)

	return Model{
		Store:        st,
		Analytics:    o.analytics,
		Notifier:     o.notifier,
		State:        o.state,
		Log:          o.log,
		Clipboard:    o.clipboard,
		Filter:       view.Filter,
		SortType:     view.SortType,
		SortOrder:    view.SortOrder,
		CategoryDial: categoryDial,
		SortDial:     sortDial,
		Cursor:       cursor.New(ui.ScrollMargin),
		Popups:       popupctl.New(&ed),
		Search:       searchbar.New(),
		Keys:         keymap.Default(),
		Focus:        FocusList,
		selectedID:   view.SelectedID,
		savedView:    view,
		storeChanges: o.changes,
		seedSamples:  cfg.Store.SamplesEnabled(),
		now:          o.clock.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadNotesCmd(m.Store, m.seedSamples, m.now()),
		waitStoreChangeCmd(m.storeChanges),
	)
}

// SelectedNote returns the note under the cursor.
func (m Model) SelectedNote() (notes.Note, bool) {
	if len(m.Visible) == 0 {
		return notes.Note{}, false
	}
	return m.Visible[min(m.Cursor.Pos(), len(m.Visible)-1)], true
}

// refresh rebuilds the visible list and puts the cursor back on the
// followed note when it is still listed.
func (m *Model) refresh() {
	m.Visible = notes.Search(notes.Sort(notes.Filter(m.Notes, m.Filter), m.SortType, m.SortOrder), m.Search.Query())
	h := m.listHeight()
	defer m.saveView()
	for i, n := range m.Visible {
		if n.ID == m.selectedID {
			m.Cursor.Jump(i, len(m.Visible), h)
			return
		}
	}
	m.Cursor.Clamp(len(m.Visible), h)
}

// follow makes the note under the cursor the one refresh keeps.
func (m *Model) follow() {
	if n, ok := m.SelectedNote(); ok {
		m.selectedID = n.ID
		m.saveView()
	}
}

// restoreView loads the saved view, falling back to the startup defaults.
func restoreView(st state.Interface, log *slog.Logger) state.ViewState {
	defaults := state.ViewState{Filter: notes.All, SortType: defaultSortType, SortOrder: defaultSortOrder}
	if st == nil {
		return defaults
	}
	v, err := st.GetView()
	if err != nil {
		log.Warn("restoring view", "err", err)
		return defaults
	}
	if v == nil {
		return defaults
	}
	return v.Sanitized(defaults)
}

// saveView hands the current view to the state store when it changed.
func (m *Model) saveView() {
	if m.State == nil {
		return
	}
	v := state.ViewState{
		Filter:     m.Filter,
		SortType:   m.SortType,
		SortOrder:  m.SortOrder,
		SelectedID: m.selectedID,
	}
	if v == m.savedView {
		return
	}
	m.savedView = v
	m.State.SaveView(v)
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.CategoryDial.SetFocused(f == FocusCategoryDial)
	m.SortDial.SetFocused(f == FocusSortDial)
}

func (m *Model) notify(message string, isError bool) tea.Cmd {
	m.notificationID++
	m.Status = Notification{ID: m.notificationID, Message: message, IsError: isError}
	return NotificationClearCmd(m.notificationID)
}

func filterIndex(c notes.Category) int {
	for i, f := range notes.CategoryFilters() {
		if f == c {
			return i
		}
	}
	return 0
}

func sortIndex(t notes.SortType) int {
	for i, s := range notes.SortTypes() {
		if s == t {
			return i
		}
	}
	return 0
}
