// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sukinote/internal/keymap"
	"github.com/llehouerou/sukinote/internal/ui"
	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/popup"
	"github.com/llehouerou/sukinote/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// chrome is the popup's own title and footer plus border and padding.
const chrome = 10

var contextLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextNotes:  "Notes",
	keymap.ContextDial:   "Dials",
	keymap.ContextList:   "Note list",
	keymap.ContextEditor: "Editor",
}

// Close reports that the help popup was dismissed.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
	active       bool
}

// New creates a help popup listing every binding context.
func New() Model {
	return Model{lines: buildLines(keymap.Contexts)}
}

// Show opens the popup at the top of the list. height is the screen
// height the visible rows are derived from.
func (m *Model) Show(width, height int) {
	m.SetSize(width, height)
	m.scrollOffset = 0
	m.active = true
}

// Reset closes the popup.
func (m *Model) Reset() {
	m.active = false
	m.scrollOffset = 0
}

// Active returns whether the popup is shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		m.Reset()
		return m, action.Cmd("helpbindings", Close{})
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

// View implements popup.Popup. The popup manager draws the border.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}
	t := styles.T()

	// Every line is padded to the widest one so scrolling never resizes
	// the popup.
	width := 0
	for _, line := range m.lines {
		width = max(width, lipgloss.Width(line))
	}
	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.scrollOffset)
	for _, line := range m.lines[m.scrollOffset:end] {
		visible = append(visible, line+strings.Repeat(" ", max(0, width-lipgloss.Width(line))))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render(m.footer()))
	return b.String()
}

func buildLines(contexts []string) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for i, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			headerStyle.Render(contextLabels[ctx]),
			t.S().Subtle.Render(strings.Repeat("─", keyWidth+20)),
		)
		for _, b := range bindings {
			keys := strings.Join(b.Keys, ", ")
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
			lines = append(lines, keyStyle.Render(keys+pad)+"  "+t.S().Base.Render(b.Description))
		}
	}
	return lines
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
