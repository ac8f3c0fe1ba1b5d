// Package state remembers the list view (filter, sort, selected note)
// between runs, in the notes database.
package state

import (
	"database/sql"
	"sync"
	"time"
)

const saveDebounce = 500 * time.Millisecond

// Manager saves view state with a debounce so cursor movement does not
// write on every key.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *ViewState
	onError   func(error)
}

// New prepares the view state table in db. db stays owned by the caller.
func New(db *sql.DB) (*Manager, error) {
	if err := initSchema(db); err != nil {
		return nil, err
	}
	return &Manager{db: db}, nil
}

// OnError sets the handler for failed background saves.
func (m *Manager) OnError(fn func(error)) {
	m.saveMu.Lock()
	m.onError = fn
	m.saveMu.Unlock()
}

// Close flushes a pending save. The database handle is not closed.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		return saveView(m.db, *pending)
	}
	return nil
}

// GetView returns the saved view, or nil on first run.
func (m *Manager) GetView() (*ViewState, error) {
	return getView(m.db)
}

// SaveView schedules s to be written; a later call within the debounce
// window replaces it.
func (m *Manager) SaveView(s ViewState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		onError := m.onError
		m.saveMu.Unlock()

		if pending == nil {
			return
		}
		if err := saveView(m.db, *pending); err != nil && onError != nil {
			onError(err)
		}
	})
}
