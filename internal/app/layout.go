package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sukinote/internal/ui"
	"github.com/llehouerou/sukinote/internal/ui/layout"
)

// Screen rows from the top: header, category dial, sort dial, then the
// list and detail panes (side by side, or stacked when narrow), and the
// status line.

func (m Model) categoryDialY() int { return ui.HeaderHeight }

func (m Model) sortDialY() int { return m.categoryDialY() + m.CategoryDial.Rows() }

func (m Model) panesY() int { return m.sortDialY() + m.SortDial.Rows() }

// paneArea is the height shared by the list and detail panes.
func (m Model) paneArea() int { return layout.PaneArea(m.Height, m.panesY()) }

// stacked puts the detail pane under the list on narrow terminals.
func (m Model) stacked() bool { return layout.Stacked(m.Width, m.paneArea()) }

func (m Model) listPaneHeight() int { return layout.ListHeight(m.paneArea(), m.stacked()) }

func (m Model) detailPaneHeight() int { return layout.DetailHeight(m.paneArea(), m.stacked()) }

// listHeight is the number of note rows inside the list pane.
func (m Model) listHeight() int { return m.listPaneHeight() - ui.BorderHeight }

func (m Model) listWidth() int { return layout.ListWidth(m.Width, m.stacked()) }

func (m Model) detailWidth() int { return layout.DetailWidth(m.Width, m.stacked()) }

// listRowAt maps a screen cell to a visible note index, or -1.
func (m Model) listRowAt(x, y int) int {
	if x < 1 || x >= m.listWidth()-1 {
		return -1
	}
	return m.Cursor.RowAt(y-m.panesY()-1, len(m.Visible), m.listHeight())
}

func (m Model) inList(x, y int) bool {
	top := m.panesY()
	return x >= 0 && x < m.listWidth() && y >= top && y < top+m.listPaneHeight()
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.Width = msg.Width
	m.Height = msg.Height

	m.CategoryDial.SetOrigin(0, m.categoryDialY())
	m.SortDial.SetOrigin(0, m.sortDialY())
	cmds := []tea.Cmd{
		m.CategoryDial.SetWidth(m.Width),
		m.SortDial.SetWidth(m.Width),
		m.Popups.SetSize(m.Width, m.Height),
	}
	m.refresh()
	return tea.Batch(cmds...)
}
