// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/app/handler"
	"github.com/llehouerou/sukinote/internal/app/popupctl"
	"github.com/llehouerou/sukinote/internal/keymap"
)

// handleKey dispatches a key when no popup is open.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	r := handler.Chain(msg,
		m.handleGlobalKeys,
		m.handleNoteKeys,
		m.handleDialKeys,
		m.handleListKeys,
	)
	return r.Cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) handler.Result {
	switch m.Keys.Resolve(keymap.ContextGlobal, msg.String()) {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionSwitchFocus:
		m.setFocus((m.Focus + 1) % 3)
		return handler.HandledNoCmd
	case keymap.ActionSwitchFocusBack:
		m.setFocus((m.Focus + 2) % 3)
		return handler.HandledNoCmd
	case keymap.ActionToggleOrder:
		return handler.Handled(m.applySort(m.SortType, m.SortOrder.Toggle()))
	case keymap.ActionHelp:
		m.Popups.ShowHelp()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleNoteKeys(msg tea.KeyMsg) handler.Result {
	switch action := m.Keys.Resolve(keymap.ContextNotes, msg.String()); action {
	case keymap.ActionNewNote:
		return handler.Handled(m.Popups.ShowEditor(nil, m.Filter))
	case keymap.ActionSearch:
		return handler.Handled(m.Search.Start())
	case keymap.ActionClearSearch:
		if m.Search.Query() == "" {
			return handler.NotHandled
		}
		m.Search.Clear()
		m.refresh()
		return handler.HandledNoCmd
	case keymap.ActionEditNote, keymap.ActionDeleteNote, keymap.ActionCopyNote:
		return m.handleSelectedNote(action)
	}
	return handler.NotHandled
}

// handleSelectedNote runs a note action on the note under the cursor.
func (m *Model) handleSelectedNote(action keymap.Action) handler.Result {
	n, ok := m.SelectedNote()
	if !ok {
		return handler.HandledNoCmd
	}
	switch action {
	case keymap.ActionEditNote:
		return handler.Handled(m.Popups.ShowEditor(&n, n.Category))
	case keymap.ActionCopyNote:
		return handler.Handled(copyNoteCmd(m.Clipboard, n))
	}
	m.Popups.ShowConfirm("Delete note", n.Title, n)
	return handler.HandledNoCmd
}

// handleDialKeys steps the focused dial.
func (m *Model) handleDialKeys(msg tea.KeyMsg) handler.Result {
	d := m.CategoryDial
	switch m.Focus {
	case FocusCategoryDial:
	case FocusSortDial:
		d = m.SortDial
	default:
		return handler.NotHandled
	}
	switch m.Keys.Resolve(keymap.ContextDial, msg.String()) {
	case keymap.ActionDialPrev, keymap.ActionDialNext, keymap.ActionDialFirst, keymap.ActionDialLast:
		return handler.Handled(d.Update(msg))
	}
	return handler.NotHandled
}

func (m *Model) handleListKeys(msg tea.KeyMsg) handler.Result {
	if m.Focus != FocusList {
		return handler.NotHandled
	}
	if !m.Cursor.HandleKey(msg.String(), len(m.Visible), m.listHeight()) {
		return handler.NotHandled
	}
	m.follow()
	return handler.HandledNoCmd
}

// handleMouse dispatches a mouse event when no popup is open.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	r := handler.Chain(msg,
		m.handleDialMouse,
		m.handleListMouse,
	)
	return r.Cmd
}

// handleDialMouse gives presses to the dial under the pointer and drag
// motion and release to whichever dial was pressed.
func (m *Model) handleDialMouse(msg tea.MouseMsg) handler.Result {
	if msg.Action != tea.MouseActionPress {
		if cmd := tea.Batch(m.CategoryDial.Update(msg), m.SortDial.Update(msg)); cmd != nil {
			return handler.Handled(cmd)
		}
		return handler.NotHandled
	}

	switch {
	case m.CategoryDial.Contains(msg.X, msg.Y):
		m.setFocus(FocusCategoryDial)
		return handler.Handled(m.CategoryDial.Update(msg))
	case m.SortDial.Contains(msg.X, msg.Y):
		m.setFocus(FocusSortDial)
		return handler.Handled(m.SortDial.Update(msg))
	}
	return handler.NotHandled
}

func (m *Model) handleListMouse(msg tea.MouseMsg) handler.Result {
	if msg.Action != tea.MouseActionPress || !m.inList(msg.X, msg.Y) {
		return handler.NotHandled
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.setFocus(FocusList)
		if i := m.listRowAt(msg.X, msg.Y); i >= 0 {
			m.Cursor.Jump(i, len(m.Visible), m.listHeight())
			m.follow()
		}
	case tea.MouseButtonWheelUp:
		m.Cursor.Move(-1, len(m.Visible), m.listHeight())
		m.follow()
	case tea.MouseButtonWheelDown:
		m.Cursor.Move(1, len(m.Visible), m.listHeight())
		m.follow()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// popupOpen reports whether a modal popup owns the input.
func (m Model) popupOpen() bool {
	return m.Popups.ActivePopup() != popupctl.None
}
