// Package styles holds the sukinote palette and the lipgloss styles built
// from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the palette. Dial items take their own tints from their
// category; everything else draws from here.
type Theme struct {
	Primary   lipgloss.Color // title, focus, selected note
	Secondary lipgloss.Color // anniversary dates, title gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color // screen; dial cells fade toward it
	BgCursor lipgloss.Color // selected list row

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles Styles
}

// Styles are the text styles shared by panes and popups.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var current = newTheme(Theme{
	Primary:     "#ff2d55",
	Secondary:   "#ff9500",
	FgBase:      "#c0c0c0",
	FgMuted:     "#808080",
	FgSubtle:    "#585858",
	BgBase:      "#1a1a1a",
	BgCursor:    "#303030",
	Border:      "#585858",
	BorderFocus: "#ff2d55",
	Success:     "#42b883",
	Error:       "#ff5555",
	Warning:     "#f1a208",
})

func newTheme(t Theme) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	t.styles = Styles{
		Base:     fg(t.FgBase),
		Muted:    fg(t.FgMuted),
		Subtle:   fg(t.FgSubtle),
		Title:    fg(t.FgBase).Bold(true),
		Selected: fg(t.Primary).Bold(true),
		Cursor:   fg(t.FgBase).Background(t.BgCursor),
		Success:  fg(t.Success),
		Error:    fg(t.Error),
		Warning:  fg(t.Warning),
	}
	return &t
}

// T returns the active theme.
func T() *Theme { return current }

func (t *Theme) S() *Styles { return &t.styles }

// Background is BgBase for color blending.
func (t *Theme) Background() colorful.Color { return ToColorful(t.BgBase) }
