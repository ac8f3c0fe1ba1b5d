// Package headerbar renders the one-line title bar above the dials.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sukinote/internal/ui/render"
	"github.com/llehouerou/sukinote/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Title is the application name drawn with the theme gradient.
const Title = "sukinote"

// Tab is one focusable pane named on the right of the bar.
type Tab struct {
	Name   string
	Active bool
}

// Render returns the header for the given width: title and summary on the
// left, pane tabs on the right. The tabs are dropped when they do not fit.
func Render(summary string, tabs []Tab, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	left := styles.GradientTitle(Title, t.Primary, t.Secondary)
	if summary != "" {
		left += "  " + t.S().Muted.Render(render.Line(summary))
	}

	right := renderTabs(tabs)
	if right == "" || lipgloss.Width(right)+lipgloss.Width(Title)+2 > width {
		return render.TruncateStyled(left, width)
	}
	return render.Row(left, right, width)
}

func renderTabs(tabs []Tab) string {
	t := styles.T()
	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Active {
			parts = append(parts, active.Render(tab.Name))
		} else {
			parts = append(parts, t.S().Subtle.Render(tab.Name))
		}
	}
	return strings.Join(parts, t.S().Subtle.Render(" │ "))
}
