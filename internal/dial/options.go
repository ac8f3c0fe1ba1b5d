package dial

import (
	"log/slog"
	"time"
)

// Config holds every tunable of a dial. Durations of zero are honoured
// (the change is instant); negative values fall back to defaults.
type Config struct {
	ItemSize     Size
	Spacing      float64
	InitialIndex int

	SnapDuration      time.Duration // tap and programmatic scroll animation
	HighlightDuration time.Duration // selection restyle transition
	WidthDuration     time.Duration // compact/expand transition
	SettleDelay       time.Duration // debounce before OnScrollEnd
	CollapseDelay     time.Duration // compact again after a tap

	CompactEnabled bool
	InitialCompact bool
	CompactWidth   float64

	HapticsEnabled bool

	// DragThreshold is the pointer travel that turns a press into a drag.
	DragThreshold float64
	// MinFlingVelocity is the release speed (units/s) below which a drag
	// snaps to the nearest item instead of decelerating.
	MinFlingVelocity float64
	// Deceleration and DecelerationFactor define the natural fling
	// projection: a = Deceleration + DecelerationFactor*|v|.
	Deceleration       float64
	DecelerationFactor float64
	MinDecelDuration   time.Duration
	MaxDecelDuration   time.Duration

	Style Style
}

// DefaultConfig returns the stock dial configuration.
func DefaultConfig() Config {
	return Config{
		ItemSize:           Size{Width: 52, Height: 56},
		Spacing:            0,
		SnapDuration:       300 * time.Millisecond,
		HighlightDuration:  220 * time.Millisecond,
		WidthDuration:      300 * time.Millisecond,
		SettleDelay:        time.Second,
		CollapseDelay:      1500 * time.Millisecond,
		CompactEnabled:     false,
		InitialCompact:     true,
		CompactWidth:       240,
		HapticsEnabled:     true,
		DragThreshold:      4,
		MinFlingVelocity:   50,
		Deceleration:       2200,
		DecelerationFactor: 0.385,
		MinDecelDuration:   150 * time.Millisecond,
		MaxDecelDuration:   900 * time.Millisecond,
		Style:              DefaultStyle(),
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.ItemSize.Width <= 0 || c.ItemSize.Height <= 0 {
		c.ItemSize = def.ItemSize
	}
	if c.Spacing < 0 {
		c.Spacing = 0
	}
	fixDuration(&c.SnapDuration, def.SnapDuration)
	fixDuration(&c.HighlightDuration, def.HighlightDuration)
	fixDuration(&c.WidthDuration, def.WidthDuration)
	fixDuration(&c.SettleDelay, def.SettleDelay)
	fixDuration(&c.CollapseDelay, def.CollapseDelay)
	fixDuration(&c.MinDecelDuration, def.MinDecelDuration)
	fixDuration(&c.MaxDecelDuration, def.MaxDecelDuration)
	if c.MaxDecelDuration < c.MinDecelDuration {
		c.MaxDecelDuration = c.MinDecelDuration
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = def.DragThreshold
	}
	if c.MinFlingVelocity < 0 {
		c.MinFlingVelocity = def.MinFlingVelocity
	}
	if c.Deceleration <= 0 {
		c.Deceleration = def.Deceleration
	}
	if c.DecelerationFactor < 0 {
		c.DecelerationFactor = def.DecelerationFactor
	}
	if c.Style == (Style{}) {
		c.Style = def.Style
	}
	return c
}

func fixDuration(d *time.Duration, def time.Duration) {
	if *d < 0 {
		*d = def
	}
}

// Callbacks are the events a dial reports to its host. Any of them may be
// nil. They are invoked synchronously from the dial method that caused them.
type Callbacks struct {
	OnScrollBegin         func()
	OnCenteredItemChanged func(index int)
	OnScrollEnd           func(index int)
	OnTap                 func(index int)
	// OnPulse fires once per confirmed selection change when haptics are
	// enabled; hosts map it to whatever tactile or visual pulse they have.
	OnPulse func(index int)
}

// Option customizes a Dial beyond its Config.
type Option func(*Dial)

// WithClock replaces the wall clock, typically with a fake in tests.
func WithClock(c Clock) Option {
	return func(d *Dial) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithLogger sets the logger used for phase transitions and timers.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dial) {
		if l != nil {
			d.log = l
		}
	}
}
