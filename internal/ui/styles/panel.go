package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the pane border style for the note list and detail
// panes, highlighted when the pane has focus.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
