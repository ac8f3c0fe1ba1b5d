package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the panes. While one is active
// it receives every message; RenderBordered frames whatever View returns.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
	// Active reports whether the popup is open.
	Active() bool
}
