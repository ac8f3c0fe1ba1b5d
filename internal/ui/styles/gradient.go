package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb, such as ANSI indexes.
var neutral = colorful.Color{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255}

// GradientTitle renders text bold, shading each grapheme from one color
// to the other in HCL space.
func GradientTitle(text string, from, to lipgloss.Color) string {
	var clusters []string
	for gr := uniseg.NewGraphemes(text); gr.Next(); {
		clusters = append(clusters, gr.Str())
	}
	a, z := ToColorful(from), ToColorful(to)

	var b strings.Builder
	for i, cluster := range clusters {
		t := 0.0
		if len(clusters) > 1 {
			t = float64(i) / float64(len(clusters)-1)
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(Hex(a.BlendHcl(z, t)))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Fade moves fg toward bg; strength 1 keeps fg, 0 yields bg. Dial items
// near the edge of a compact window are drawn this way.
func Fade(fg, bg colorful.Color, strength float64) colorful.Color {
	return bg.BlendHcl(fg, min(max(strength, 0), 1)).Clamped()
}

// ToColorful parses a #rrggbb color; anything else maps to a neutral gray.
func ToColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return neutral
}

func Hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
