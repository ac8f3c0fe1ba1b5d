// internal/app/update.go
package app

import (
	"fmt"
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/analytics"
	"github.com/llehouerou/sukinote/internal/errmsg"
	"github.com/llehouerou/sukinote/internal/notes"
	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/confirm"
	"github.com/llehouerou/sukinote/internal/ui/dialview"
	"github.com/llehouerou/sukinote/internal/ui/editor"
	"github.com/llehouerou/sukinote/internal/ui/helpbindings"
	"github.com/llehouerou/sukinote/internal/ui/searchbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(StoreMessage); ok {
		return m.handleStoreMessage(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		if handled, cmd := m.Popups.HandleInput(msg); handled {
			return cmd
		}
		if m.Search.Active() {
			cmd := m.Search.Update(msg)
			m.refresh()
			return cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if handled, cmd := m.Popups.HandleInput(msg); handled {
			return cmd
		}
		return m.handleMouse(msg)

	case action.Msg:
		return m.handleAction(msg)

	case StoreChangedMsg:
		m.Log.Debug("store changed, reloading")
		return tea.Batch(reloadNotesCmd(m.Store), waitStoreChangeCmd(m.storeChanges))

	case NoteCopiedMsg:
		if msg.Err != nil {
			m.Log.Warn("copying note", "id", msg.Note.ID, "err", msg.Err)
			return m.notify(errmsg.FormatWith(errmsg.OpNoteCopy, msg.Note.Title, msg.Err), true)
		}
		m.Analytics.LogEvent(analytics.EventCopyNote, map[string]any{"category": string(msg.Note.Category)})
		return m.notify(fmt.Sprintf("Copied %q", msg.Note.Title), false)

	case RemindersSentMsg:
		if msg.Err != nil {
			m.Log.Warn("sending reminders", "sent", msg.Sent, "err", msg.Err)
		} else if msg.Sent > 0 {
			m.Log.Info("sent reminders", "count", msg.Sent)
		}
		return nil

	case NotificationClearMsg:
		if msg.ID == m.Status.ID {
			m.Status = Notification{}
		}
		return nil

	case dialview.CenteredChangedMsg:
		return m.handleDialEvent(msg.ID, msg, func() tea.Cmd { return m.handleCenteredChanged(msg) })
	case dialview.ScrollEndedMsg:
		return m.handleDialEvent(msg.ID, msg, func() tea.Cmd { return m.handleScrollEnded(msg) })
	case dialview.ScrollBeganMsg:
		return m.handleDialEvent(msg.ID, msg, nil)
	case dialview.TappedMsg:
		return m.handleDialEvent(msg.ID, msg, nil)
	case dialview.PulseMsg:
		return m.handleDialEvent(msg.ID, msg, nil)
	}

	// Frame ticks and cursor blinks: each dial only accepts its own.
	return tea.Batch(
		m.CategoryDial.Update(msg),
		m.SortDial.Update(msg),
		m.Popups.Update(msg),
		m.Search.Update(msg),
	)
}

// handleDialEvent sends the editor dial's events to the editor and runs
// handle for the main dials.
func (m *Model) handleDialEvent(id int, msg tea.Msg, handle func() tea.Cmd) tea.Cmd {
	if id == editor.DialID {
		return m.Popups.Update(msg)
	}
	if handle == nil {
		return nil
	}
	return handle()
}

// handleCenteredChanged applies the category filter live while the dial
// moves; the sort dial only acts once it settles.
func (m *Model) handleCenteredChanged(msg dialview.CenteredChangedMsg) tea.Cmd {
	if msg.ID != CategoryDialID {
		return nil
	}
	filters := notes.CategoryFilters()
	if msg.Index < 0 || msg.Index >= len(filters) {
		return nil
	}
	if m.Filter != filters[msg.Index] {
		m.Filter = filters[msg.Index]
		m.refresh()
	}
	return nil
}

func (m *Model) handleScrollEnded(msg dialview.ScrollEndedMsg) tea.Cmd {
	switch msg.ID {
	case CategoryDialID:
		m.Analytics.LogEvent(analytics.EventSelectFilter, map[string]any{
			"category": filterName(m.Filter),
		})
	case SortDialID:
		types := notes.SortTypes()
		if msg.Index < 0 || msg.Index >= len(types) {
			return nil
		}
		return m.applySort(types[msg.Index], m.SortOrder)
	}
	return nil
}

// applySort switches the list order. Some sort types also move the
// category dial (category sorting shows all notes, anniversary sorting
// shows anniversaries).
func (m *Model) applySort(t notes.SortType, o notes.SortOrder) tea.Cmd {
	m.SortType, m.SortOrder = t, o
	m.Analytics.LogEvent(analytics.EventSelectSort, map[string]any{
		"sort_type":  string(t),
		"sort_order": string(o),
	})

	var cmd tea.Cmd
	if next := notes.FilterFor(t, m.Filter); next != m.Filter {
		m.Filter = next
		cmd = m.CategoryDial.Select(filterIndex(next), true)
	}
	m.refresh()
	return cmd
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case editor.Result:
		if a.Canceled {
			return nil
		}
		return saveNoteCmd(m.Store, a.Note, a.IsNew)
	case confirm.Result:
		n, ok := a.Context.(notes.Note)
		if !a.Confirmed || !ok {
			return nil
		}
		return deleteNoteCmd(m.Store, n)
	case searchbar.Result:
		if !a.Canceled {
			m.Analytics.LogEvent(analytics.EventSearchNotes, map[string]any{
				"query_length": len([]rune(a.Query)),
				"results":      len(m.Visible),
			})
			m.follow()
		}
		return nil
	case helpbindings.Close:
		return nil
	}
	m.Log.Debug("unhandled action", "action", msg)
	return nil
}

func (m *Model) handleStoreMessage(msg StoreMessage) tea.Cmd {
	switch msg := msg.(type) {
	case NotesLoadedMsg:
		m.Loaded = true
		m.Notes = msg.Notes
		m.refresh()
		m.follow()
		m.setNoteCount()
		if msg.Err != nil {
			m.Log.Error("loading notes", "op", msg.Op, "err", msg.Err)
			return m.notify(errmsg.Format(msg.Op, msg.Err), true)
		}
		remind := m.remind()
		if msg.Seeded > 0 {
			return tea.Batch(remind, m.notify(fmt.Sprintf("Added %d sample notes", msg.Seeded), false))
		}
		return remind

	case NotesReloadedMsg:
		if msg.Err != nil {
			m.Log.Error("reloading notes", "err", msg.Err)
			return m.notify(errmsg.Format(errmsg.OpNoteReload, msg.Err), true)
		}
		m.Loaded = true
		m.Notes = msg.Notes
		m.setNoteCount()
		m.refresh()
		m.follow()
		return nil

	case NoteSavedMsg:
		if msg.Err != nil {
			m.Log.Error("saving note", "id", msg.Note.ID, "err", msg.Err)
			return m.notify(errmsg.FormatWith(errmsg.OpNoteSave, msg.Note.Title, msg.Err), true)
		}
		m.Analytics.LogSaveNote(msg.Note)
		m.upsert(msg.Note)
		m.selectedID = msg.Note.ID
		m.setNoteCount()
		cmd := m.showCategory(msg.Note.Category)
		m.refresh()
		return tea.Batch(cmd, m.notify(fmt.Sprintf("Saved %q", msg.Note.Title), false))

	case NoteDeletedMsg:
		if msg.Err != nil {
			m.Log.Error("deleting note", "id", msg.Note.ID, "err", msg.Err)
			return m.notify(errmsg.FormatWith(errmsg.OpNoteDelete, msg.Note.Title, msg.Err), true)
		}
		m.Analytics.LogEvent(analytics.EventDeleteNote, msg.Note.AnalyticsParams())
		m.Notes = slices.DeleteFunc(m.Notes, func(n notes.Note) bool { return n.ID == msg.Note.ID })
		m.setNoteCount()
		m.refresh()
		m.follow()
		return m.notify(fmt.Sprintf("Deleted %q", msg.Note.Title), false)
	}
	return nil
}

// upsert replaces a note in place or, for a new one, puts it first.
func (m *Model) upsert(n notes.Note) {
	for i := range m.Notes {
		if m.Notes[i].ID == n.ID {
			m.Notes[i] = n
			return
		}
	}
	m.Notes = slices.Insert(m.Notes, 0, n)
}

// showCategory turns the category dial to c so a just-saved note is listed.
func (m *Model) showCategory(c notes.Category) tea.Cmd {
	if m.Filter.Matches(c) {
		return nil
	}
	m.Filter = c
	return m.CategoryDial.Select(filterIndex(c), true)
}

// remind sends today's anniversary reminders once per run.
func (m *Model) remind() tea.Cmd {
	if m.Notifier == nil || m.reminded {
		return nil
	}
	m.reminded = true
	return sendRemindersCmd(m.Notifier, m.Notes, m.now())
}

func (m *Model) setNoteCount() {
	m.Analytics.SetUserProperty("note_count", strconv.Itoa(len(m.Notes)))
}

func filterName(c notes.Category) string {
	if c == notes.All {
		return "all"
	}
	return string(c)
}
