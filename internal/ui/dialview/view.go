package dialview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/sukinote/internal/dial"
	"github.com/llehouerou/sukinote/internal/ui/styles"
)

const selectedMarker = "▾"

// cells measures labels the way the terminal lays them out, independent
// of the locale's ambiguous-width setting.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// window returns the visible strip as (left column, width) inside the
// full dial width. They differ from (0, width) only while compact.
func (m *Model) window() (left, visible int) {
	width := m.Width()
	visible = int(math.Round(m.d.VisibleWidth()))
	visible = min(max(visible, 0), width)
	return (width - visible) / 2, visible
}

// View renders the strip at the current time. Every line is exactly the
// dial width.
func (m *Model) View() string {
	width, rows := m.Width(), m.Rows()
	blank := strings.Repeat(" ", max(width, 0))
	lines := make([]string, rows)
	for r := range lines {
		lines[r] = blank
	}

	items := m.d.Items()
	states := m.d.VisualStates()
	if width <= 0 || len(items) == 0 || len(states) != len(items) {
		return strings.Join(lines, "\n")
	}

	cfg := m.d.Config()
	itemWidth := int(cfg.ItemSize.Width)
	spacer := strings.Repeat(" ", int(cfg.Spacing))
	left, visible := m.window()
	screenBg := styles.T().Background()
	midScale := (cfg.Style.SelectedScale + cfg.Style.DeselectedScale) / 2
	flashing := m.clock.Now().Before(m.flashUntil)

	strengths := m.fadeStrengths(left, visible)

	// Content is drawn once per row with generous padding on both sides,
	// then the visible window is cut out at the current offset.
	pad := 2 * width
	start := pad + left + int(math.Round(m.d.Offset()))
	start = max(start, 0)
	for r := range rows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", pad))
		for i, item := range items {
			if i > 0 {
				b.WriteString(spacer)
			}
			cell := cellText(item, states[i], r, rows, midScale)
			style := cellStyle(states[i], strengths[i], screenBg)
			if flashing && states[i].Selected && i == m.flashIndex {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(fit(cell, itemWidth)))
		}
		b.WriteString(strings.Repeat(" ", pad))

		cut := ansi.Cut(b.String(), start, start+visible)
		if w := ansi.StringWidth(cut); w < visible {
			cut += strings.Repeat(" ", visible-w)
		}
		lines[r] = strings.Repeat(" ", left) + cut + strings.Repeat(" ", width-left-visible)
	}
	return strings.Join(lines, "\n")
}

// fadeStrengths dims items toward the screen background as they approach
// the edge of a compact window. A full-width dial is not faded.
func (m *Model) fadeStrengths(left, visible int) []float64 {
	g := m.d.Geometry()
	centers := g.ItemCenters()
	out := make([]float64, len(centers))
	if visible >= m.Width() {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	offset := m.d.Offset()
	lo, hi := float64(left), float64(left+visible)
	for i, c := range centers {
		x := c - offset
		edge := math.Min(x-lo, hi-x)
		out[i] = min(max(edge/g.ItemWidth, 0), 1)
	}
	return out
}

// cellText picks what row r of an item shows. One row holds icon and
// label, two rows stack them, and taller items add a selection marker.
func cellText(item dial.Item, vs dial.VisualState, r, rows int, midScale float64) string {
	switch {
	case rows == 1:
		return vs.IconRef + " " + item.Label
	case rows == 2:
		if r == 0 {
			return vs.IconRef
		}
		return item.Label
	}
	switch r {
	case 0:
		if vs.Scale > midScale {
			return selectedMarker
		}
		return ""
	case 1:
		return vs.IconRef
	case 2:
		return item.Label
	}
	return ""
}

// fit truncates s to width cells and centers it.
func fit(s string, width int) string {
	s = cells.Truncate(s, width, "…")
	w := cells.StringWidth(s)
	lpad := (width - w) / 2
	return strings.Repeat(" ", lpad) + s + strings.Repeat(" ", width-w-lpad)
}

func cellStyle(vs dial.VisualState, strength float64, screenBg colorful.Color) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(styles.Hex(styles.Fade(vs.TextTint, screenBg, strength)))
	if vs.BackgroundAlpha > 0 {
		bg := screenBg.BlendRgb(vs.Background, min(vs.BackgroundAlpha, 1))
		style = style.Background(styles.Hex(styles.Fade(bg, screenBg, strength)))
	}
	if vs.Selected {
		style = style.Bold(true)
	}
	return style
}
