package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/errmsg"
	"github.com/llehouerou/sukinote/internal/notes"
	"github.com/llehouerou/sukinote/internal/notify"
	"github.com/llehouerou/sukinote/internal/store"
)

// loadNotesCmd fetches every note. With seed set, an empty store first
// gets the sample notes.
func loadNotesCmd(st store.Interface, seed bool, now time.Time) tea.Cmd {
	return func() tea.Msg {
		list, err := st.Fetch()
		if err != nil {
			return NotesLoadedMsg{Op: errmsg.OpNoteLoad, Err: err}
		}
		if !seed || len(list) > 0 {
			return NotesLoadedMsg{Notes: list}
		}

		samples := notes.Samples(now)
		if err := st.SaveAll(samples); err != nil {
			return NotesLoadedMsg{Notes: list, Op: errmsg.OpNoteSeed, Err: err}
		}
		list, err = st.Fetch()
		if err != nil {
			return NotesLoadedMsg{Op: errmsg.OpNoteLoad, Err: err}
		}
		return NotesLoadedMsg{Notes: list, Seeded: len(samples)}
	}
}

func reloadNotesCmd(st store.Interface) tea.Cmd {
	return func() tea.Msg {
		list, err := st.Fetch()
		return NotesReloadedMsg{Notes: list, Err: err}
	}
}

// waitStoreChangeCmd blocks until the next store change. It yields no
// message once changes is closed.
func waitStoreChangeCmd(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return StoreChangedMsg{}
	}
}

func copyNoteCmd(write func(string) error, n notes.Note) tea.Cmd {
	return func() tea.Msg {
		return NoteCopiedMsg{Note: n, Err: write(n.ClipboardText())}
	}
}

func saveNoteCmd(st store.Interface, n notes.Note, isNew bool) tea.Cmd {
	return func() tea.Msg {
		return NoteSavedMsg{Note: n, IsNew: isNew, Err: st.Save(n)}
	}
}

func deleteNoteCmd(st store.Interface, n notes.Note) tea.Cmd {
	return func() tea.Msg {
		return NoteDeletedMsg{Note: n, Err: st.Delete(n.ID)}
	}
}

func sendRemindersCmd(nt notify.Notifier, list []notes.Note, today time.Time) tea.Cmd {
	if len(notes.DueOn(list, today)) == 0 {
		return nil
	}
	return func() tea.Msg {
		sent, err := notify.SendReminders(nt, list, today)
		return RemindersSentMsg{Sent: sent, Err: err}
	}
}
