// Package app contains the root model of the notes TUI and its messages.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/errmsg"
	"github.com/llehouerou/sukinote/internal/notes"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// StoreMessage is implemented by results of note store operations.
type StoreMessage interface {
	tea.Msg
	storeMessage()
}

// NotesLoadedMsg carries the notes fetched at startup. Op names the step
// that failed when Err is set; Notes may still hold what was loaded.
type NotesLoadedMsg struct {
	Notes  []notes.Note
	Seeded int // sample notes added to an empty store
	Op     errmsg.Op
	Err    error
}

func (NotesLoadedMsg) storeMessage() {}

// NoteSavedMsg is sent after the editor's note was written.
type NoteSavedMsg struct {
	Note  notes.Note
	IsNew bool
	Err   error
}

func (NoteSavedMsg) storeMessage() {}

// NoteDeletedMsg is sent after a note was removed.
type NoteDeletedMsg struct {
	Note notes.Note
	Err  error
}

func (NoteDeletedMsg) storeMessage() {}

// NotesReloadedMsg carries the notes fetched after the store changed.
type NotesReloadedMsg struct {
	Notes []notes.Note
	Err   error
}

func (NotesReloadedMsg) storeMessage() {}

// StoreChangedMsg is sent when the store was written outside the app.
type StoreChangedMsg struct{}

// NoteCopiedMsg is sent after a note was put on the clipboard.
type NoteCopiedMsg struct {
	Note notes.Note
	Err  error
}

// RemindersSentMsg reports the anniversary reminders sent after loading.
type RemindersSentMsg struct {
	Sent int
	Err  error
}

// Notification represents a temporary status line message.
type Notification struct {
	ID      int64
	Message string
	IsError bool
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}
