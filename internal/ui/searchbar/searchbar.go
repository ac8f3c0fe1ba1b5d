// Package searchbar provides the one-line note search shown in the status
// line.
package searchbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/render"
	"github.com/llehouerou/sukinote/internal/ui/styles"
)

const queryLimit = 64

// Model is the search input. While active it owns the keyboard; once
// closed with enter the query stays applied until cleared.
type Model struct {
	input  textinput.Model
	active bool
}

// New creates an inactive search bar.
func New() Model {
	in := textinput.New()
	in.Prompt = "/"
	in.Placeholder = "search notes"
	in.CharLimit = queryLimit
	return Model{input: in}
}

// Start opens the bar for editing, keeping the current query.
func (m *Model) Start() tea.Cmd {
	m.active = true
	m.input.CursorEnd()
	return m.input.Focus()
}

// Clear drops the query and closes the bar.
func (m *Model) Clear() {
	m.active = false
	m.input.Blur()
	m.input.SetValue("")
}

// Active reports whether the bar is being edited.
func (m Model) Active() bool { return m.active }

// Query is the current search text.
func (m Model) Query() string { return m.input.Value() }

// Update handles a key while active. Other messages feed the cursor blink.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Clear()
			return action.Cmd(source, Result{Canceled: true})
		case "enter":
			m.active = false
			m.input.Blur()
			return action.Cmd(source, Result{Query: m.Query()})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the bar within width: the input while editing, otherwise
// the applied query. It is empty when there is nothing to show.
func (m Model) View(width int) string {
	if width <= 0 {
		return ""
	}
	if m.active {
		m.input.Width = max(1, width-len(m.input.Prompt)-1)
		return render.TruncateStyled(m.input.View(), width)
	}
	if m.Query() == "" {
		return ""
	}
	t := styles.T()
	return render.TruncateStyled(t.S().Warning.Render("/"+render.Line(m.Query()))+
		t.S().Subtle.Render("  esc: clear search"), width)
}
