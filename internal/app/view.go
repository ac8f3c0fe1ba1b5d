// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sukinote/internal/notes"
	"github.com/llehouerou/sukinote/internal/ui"
	"github.com/llehouerou/sukinote/internal/ui/headerbar"
	"github.com/llehouerou/sukinote/internal/ui/render"
	"github.com/llehouerou/sukinote/internal/ui/styles"
)

const (
	dateLayout   = "Jan 2, 2006"
	keyHint      = "?: help · n: new · e: edit · d: delete · /: search · y: copy · o: order · tab: focus · ←/→: dial · q: quit"
	emptyLoading = "Loading notes..."
	emptyList    = "Nothing here yet. Press n to add a note."
	emptySearch  = "No notes match the search."
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.CategoryDial.View(),
		m.SortDial.View(),
		m.renderPanes(),
		m.renderStatus(),
	}
	view := strings.Join(sections, "\n")
	return m.Popups.RenderOverlay(view)
}

func (m Model) renderHeader() string {
	counts := notes.CountByCategory(m.Notes)
	count := len(m.Notes)
	if m.Filter != notes.All {
		count = counts[m.Filter]
	}
	summary := fmt.Sprintf("%s · %d %s · %s %s", m.Filter.Label(), count, plural(count, "note", "notes"),
		m.SortType.Label(), m.SortOrder.Arrow())

	tabs := []headerbar.Tab{
		{Name: "Notes", Active: m.Focus == FocusList},
		{Name: "Category", Active: m.Focus == FocusCategoryDial},
		{Name: "Sort", Active: m.Focus == FocusSortDial},
	}
	return headerbar.Render(summary, tabs, m.Width)
}

func (m Model) renderPanes() string {
	if m.stacked() {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderList(), m.renderDetail())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderDetail())
}

func (m Model) renderList() string {
	t := styles.T()
	width := m.listWidth()
	inner := max(0, width-2)
	height := m.listHeight()

	var lines []string
	switch {
	case !m.Loaded:
		lines = []string{t.S().Muted.Render(emptyLoading)}
	case len(m.Visible) == 0 && m.Search.Query() != "":
		lines = []string{t.S().Muted.Render(render.Truncate(emptySearch, inner))}
	case len(m.Visible) == 0:
		lines = []string{t.S().Muted.Render(render.Truncate(emptyList, inner))}
	default:
		start, end := m.Cursor.VisibleRange(len(m.Visible), height)
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(m.Visible[i], i == m.Cursor.Pos(), inner))
		}
	}

	return styles.PanelStyle(m.Focus == FocusList).
		Width(inner).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderRow draws one note: icon and title on the left, relative creation
// time on the right.
func (m Model) renderRow(n notes.Note, selected bool, width int) string {
	t := styles.T()
	when := humanize.RelTime(n.CreatedAt, m.now(), "ago", "from now")
	icon := lipgloss.NewStyle().Foreground(styles.Hex(n.Category.Color())).Render(n.Category.Icon())
	rest := max(0, width-lipgloss.Width(icon))

	if selected {
		style := t.S().Cursor
		if m.Focus == FocusList {
			style = style.Bold(true)
		}
		return icon + style.Render(render.Row(" "+render.Line(n.Title), when, rest))
	}
	return icon + render.Row(" "+t.S().Base.Render(render.Line(n.Title)), t.S().Subtle.Render(when), rest)
}

func (m Model) renderDetail() string {
	width := m.detailWidth()
	if width < 3 {
		return ""
	}
	inner := width - 2
	height := max(0, m.detailPaneHeight()-ui.BorderHeight)

	content := ""
	if n, ok := m.SelectedNote(); ok {
		content = m.renderNote(n, inner)
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	return styles.PanelStyle(false).
		Width(inner).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderNote(n notes.Note, width int) string {
	t := styles.T()
	color := styles.Hex(n.Category.Color())
	clip := func(s string) string { return render.Truncate(s, width) }

	var b strings.Builder
	b.WriteString(t.S().Title.Render(clip(n.Title)) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(color).Render(clip(n.Category.FilledIcon()+" "+n.Category.Label())) + "\n")

	created := fmt.Sprintf("Created %s (%s)", n.CreatedAt.Format(dateLayout),
		humanize.RelTime(n.CreatedAt, m.now(), "ago", "from now"))
	b.WriteString(t.S().Muted.Render(clip(created)) + "\n")

	if n.AnniversaryDate != nil {
		date := "On " + n.AnniversaryDate.Format(dateLayout)
		if n.Annual {
			date += ", every year"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(t.Secondary).Render(clip(date)) + "\n")
	}

	if n.Content != "" {
		b.WriteString("\n")
		b.WriteString(t.S().Base.Width(width).Render(render.Sanitize(n.Content)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStatus() string {
	t := styles.T()
	switch {
	case m.Search.Active():
		return m.Search.View(m.Width)
	case m.Status.Message != "" && m.Status.IsError:
		return t.S().Error.Render(render.Truncate(m.Status.Message, m.Width))
	case m.Status.Message != "":
		return t.S().Success.Render(render.Truncate(m.Status.Message, m.Width))
	case m.popupOpen():
		return ""
	case m.Search.Query() != "":
		return m.Search.View(m.Width)
	}
	return t.S().Subtle.Render(render.Truncate(keyHint, m.Width))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

