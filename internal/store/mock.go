// internal/store/mock.go
package store

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/llehouerou/sukinote/internal/notes"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	notes  []notes.Note
	err    error
	saves  int
	closed bool
}

// NewMock creates a mock store holding the given notes.
func NewMock(initial ...notes.Note) *Mock {
	return &Mock{notes: slices.Clone(initial)}
}

func (m *Mock) Fetch() ([]notes.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := slices.Clone(m.notes)
	slices.SortStableFunc(out, func(a, b notes.Note) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return out, nil
}

func (m *Mock) Save(n notes.Note) error {
	if m.err != nil {
		return m.err
	}
	n = n.Normalize()
	if err := n.Validate(); err != nil {
		return err
	}
	m.saves++
	for i := range m.notes {
		if m.notes[i].ID == n.ID {
			n.CreatedAt = m.notes[i].CreatedAt
			m.notes[i] = n
			return nil
		}
	}
	m.notes = append(m.notes, n)
	return nil
}

func (m *Mock) SaveAll(list []notes.Note) error {
	for _, n := range list {
		if err := m.Save(n); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mock) Delete(id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.notes = slices.DeleteFunc(m.notes, func(n notes.Note) bool { return n.ID == id })
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// SetError makes every later call fail with err (nil clears it).
func (m *Mock) SetError(err error) { m.err = err }

// Saves counts successful Save calls.
func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
