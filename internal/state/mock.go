// internal/state/mock.go
package state

// Mock is a test double for Manager. Saves apply immediately.
type Mock struct {
	view   *ViewState
	saves  int
	err    error
	closed bool
}

// NewMock creates a mock holding initial, which may be nil.
func NewMock(initial *ViewState) *Mock {
	return &Mock{view: initial}
}

func (m *Mock) SaveView(s ViewState) {
	m.view = &s
	m.saves++
}

func (m *Mock) GetView() (*ViewState, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.view, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// SetError makes GetView fail.
func (m *Mock) SetError(err error) { m.err = err }

// Saves counts SaveView calls.
func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
