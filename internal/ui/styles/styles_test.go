package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func TestToColorful(t *testing.T) {
	c := ToColorful("#ff0000")
	if c.Hex() != "#ff0000" {
		t.Errorf("ToColorful(#ff0000) = %s", c.Hex())
	}
	gray := ToColorful("240")
	if gray.Hex() != "#808080" {
		t.Errorf("ANSI fallback = %s, want #808080", gray.Hex())
	}
}

func TestGradientTitle(t *testing.T) {
	out := GradientTitle("sukinote", "#ff2d55", "#ff9500")
	if got := ansi.Strip(out); got != "sukinote" {
		t.Errorf("stripped = %q", got)
	}
	if GradientTitle("", "#ff2d55", "#ff9500") != "" {
		t.Error("empty text should render empty")
	}
	if got := ansi.Strip(GradientTitle("★", "#ff2d55", "#ff9500")); got != "★" {
		t.Errorf("single grapheme = %q", got)
	}
}

func TestTheme_StylesBuilt(t *testing.T) {
	th := T()
	if th.S().Selected.GetForeground() != th.Primary || !th.S().Selected.GetBold() {
		t.Error("selected style should be bold primary")
	}
	if th.S().Cursor.GetBackground() != th.BgCursor {
		t.Error("cursor style should use the cursor background")
	}
}

func TestFade(t *testing.T) {
	fg, _ := colorful.Hex("#ff2d55")
	bg, _ := colorful.Hex("#1a1a1a")
	if got := Fade(fg, bg, 1).Hex(); got != fg.Hex() {
		t.Errorf("full strength = %s, want %s", got, fg.Hex())
	}
	if got := Fade(fg, bg, 0).Hex(); got != bg.Hex() {
		t.Errorf("zero strength = %s, want %s", got, bg.Hex())
	}
	if got := Fade(fg, bg, 7).Hex(); got != fg.Hex() {
		t.Errorf("strength is clamped, got %s", got)
	}
}

func TestPanelStyle_Focus(t *testing.T) {
	if PanelStyle(true).GetBorderTopForeground() != T().BorderFocus {
		t.Error("focused panel should use the focus border color")
	}
	if PanelStyle(false).GetBorderTopForeground() != T().Border {
		t.Error("unfocused panel should use the base border color")
	}
}
