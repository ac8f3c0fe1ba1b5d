package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sukinote/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeEditor = SizeConfig{WidthPct: 70, HeightPct: 80} // Note editor
	SizeAuto   = SizeConfig{MaxWidth: 60}                // Confirm
	SizeHelp   = SizeConfig{MaxWidth: 72}                // Key binding help
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// InnerSize returns the content area a popup of the given size leaves for
// its body once border and padding are taken.
func InnerSize(screenW, screenH int, size SizeConfig) (width, height int) {
	w := screenW * size.WidthPct / 100
	h := screenH * size.HeightPct / 100
	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth)
	}
	return max(0, w-6), max(0, h-4)
}

// ContentOrigin returns the screen cell where a fixed-size popup's content
// starts, matching RenderBordered's border, padding and centering.
func ContentOrigin(screenW, screenH int, size SizeConfig) (x, y int) {
	w := screenW * size.WidthPct / 100
	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth)
	}
	h := screenH * size.HeightPct / 100
	return max(0, (screenW-w)/2) + 3, max(0, (screenH-h)/2) + 2
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		w := screenW * size.WidthPct / 100
		if size.MaxWidth > 0 {
			w = min(w, size.MaxWidth)
		}
		return w, screenH * size.HeightPct / 100
	}
	// Auto-fit: calculate from content
	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(height, screenH-4)
	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	boxWidth := maxLineWidth(content)

	padTop := max(0, (termHeight-len(lines))/2)
	padLeft := max(0, (termWidth-boxWidth)/2)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for _, line := range lines {
		b.WriteString(indent + line + "\n")
	}
	return b.String()
}

// Compose overlays a centered popup on top of a base view. Each popup line
// replaces the base between its first and last visible cell; the rest of
// the base line is kept. The function is ANSI-aware.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")

	for i, overlayLine := range strings.Split(popupView, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		baseLines[i] = splice(baseLines[i], ansi.Cut(overlayLine, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// splice replaces cells [start, end) of line with overlay, padding so that
// wide characters cut at either edge never shift the columns after them.
func splice(line, overlay string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	prefix := ansi.Cut(line, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}
	if end >= width {
		return prefix + overlay
	}

	suffix := ansi.Cut(line, end, width)
	want := width - end
	switch w := ansi.StringWidth(suffix); {
	case w > want:
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	case w < want:
		suffix = strings.Repeat(" ", want-w) + suffix
	}
	return prefix + overlay + suffix
}
