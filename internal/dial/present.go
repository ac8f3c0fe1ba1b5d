package dial

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// IconVariant selects which icon of an item is shown.
type IconVariant int

const (
	IconBase IconVariant = iota
	IconHighlighted
)

// VisualState is the renderer-independent appearance of one item.
type VisualState struct {
	Selected bool
	Scale    float64

	// Background is meaningful only when BackgroundAlpha > 0.
	Background      colorful.Color
	BackgroundAlpha float64

	Icon     IconVariant
	IconRef  string
	TextTint colorful.Color
}

// Style configures how selection maps to visual state.
type Style struct {
	SelectedScale     float64
	DeselectedScale   float64
	NeutralTint       colorful.Color
	NeutralBackground colorful.Color
	// HighlightBlend is how far the selected background is pushed from the
	// item's highlight color toward white.
	HighlightBlend float64
}

// DefaultStyle returns the stock selection appearance.
func DefaultStyle() Style {
	return Style{
		SelectedScale:     1.08,
		DeselectedScale:   1.0,
		NeutralTint:       colorful.Color{R: 0.75, G: 0.75, B: 0.75},
		NeutralBackground: colorful.Color{R: 0.1, G: 0.1, B: 0.1},
		HighlightBlend:    0.85,
	}
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// BlendWithWhite returns c moved amount of the way toward white, opaque.
func BlendWithWhite(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(white, clampUnit(amount)).Clamped()
}

// Present maps the centered index to one visual state per item. Exactly the
// centered item is selected; centered < 0 selects nothing.
func Present(centered int, items []Item, style Style) []VisualState {
	states := make([]VisualState, len(items))
	for i, item := range items {
		states[i] = presentItem(item, i == centered, style)
	}
	return states
}

func presentItem(item Item, selected bool, style Style) VisualState {
	if !selected {
		return VisualState{
			Scale:      style.DeselectedScale,
			Background: style.NeutralBackground,
			Icon:       IconBase,
			IconRef:    item.Icon,
			TextTint:   style.NeutralTint,
		}
	}
	vs := VisualState{
		Selected:        true,
		Scale:           style.SelectedScale,
		Background:      BlendWithWhite(item.HighlightColor, style.HighlightBlend),
		BackgroundAlpha: 1,
		Icon:            IconBase,
		IconRef:         item.Icon,
		TextTint:        item.HighlightColor,
	}
	if item.HasHighlightedIcon() {
		vs.Icon = IconHighlighted
		vs.IconRef = item.HighlightedIcon
	}
	return vs
}

// interpolate blends continuous properties; discrete ones take b's value.
func interpolate(a, b VisualState, t float64) VisualState {
	out := b
	out.Scale = a.Scale + (b.Scale-a.Scale)*t
	out.Background = a.Background.BlendRgb(b.Background, t)
	out.BackgroundAlpha = a.BackgroundAlpha + (b.BackgroundAlpha-a.BackgroundAlpha)*t
	out.TextTint = a.TextTint.BlendRgb(b.TextTint, t)
	return out
}

// presenter eases between visual states. A new target restarts the
// transition from whatever is currently displayed, so changes never queue.
type presenter struct {
	style    Style
	duration time.Duration
	from     []VisualState
	to       []VisualState
	anim     *tween
}

func (p *presenter) snapTo(states []VisualState) {
	p.from = nil
	p.to = states
	p.anim = nil
}

func (p *presenter) transitionTo(now time.Time, states []VisualState) {
	current := p.frame(now)
	if p.duration <= 0 || len(current) != len(states) {
		p.snapTo(states)
		return
	}
	p.from = current
	p.to = states
	p.anim = newTween(0, 1, now, p.duration, EaseOut)
}

func (p *presenter) frame(now time.Time) []VisualState {
	if p.anim == nil {
		return p.to
	}
	t, done := p.anim.value(now)
	if done {
		p.from = nil
		p.anim = nil
		return p.to
	}
	out := make([]VisualState, len(p.to))
	for i := range p.to {
		out[i] = interpolate(p.from[i], p.to[i], t)
	}
	return out
}

func (p *presenter) animating(now time.Time) bool {
	if p.anim == nil {
		return false
	}
	_, done := p.anim.progress(now)
	return !done
}

func (p *presenter) stop() {
	p.from = nil
	p.anim = nil
}
