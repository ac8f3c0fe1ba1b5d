package dial

import "time"

// compactor narrows the visible width while the dial is idle. It only
// tracks the compact flag and the width animation; its collapse timer
// lives in the dial's timer set.
type compactor struct {
	enabled  bool
	compact  bool
	width    float64 // compact width
	duration time.Duration
	// level animates from 0 (expanded) to 1 (compact).
	level    float64
	levelAni *tween
}

func newCompactor(enabled, initial bool, width float64, d time.Duration) compactor {
	c := compactor{enabled: enabled, width: width, duration: d}
	if enabled && initial {
		c.compact = true
		c.level = 1
	}
	return c
}

// set changes the compact flag and animates the width toward it. It
// returns whether the flag changed.
func (c *compactor) set(now time.Time, compact bool) bool {
	if !c.enabled || c.compact == compact {
		return false
	}
	current := c.currentLevel(now)
	target := 0.0
	if compact {
		target = 1
	}
	c.compact = compact
	c.level = current
	c.levelAni = newTween(current, target, now, c.duration, EaseOut)
	return true
}

func (c *compactor) currentLevel(now time.Time) float64 {
	if c.levelAni == nil {
		return c.level
	}
	v, done := c.levelAni.value(now)
	if done {
		c.level = v
		c.levelAni = nil
	}
	return v
}

func (c *compactor) animating(now time.Time) bool {
	if c.levelAni == nil {
		return false
	}
	_, done := c.levelAni.progress(now)
	return !done
}

// visibleWidth interpolates between the full viewport width and the compact
// width. A compact width wider than the viewport never widens the dial.
func (c *compactor) visibleWidth(now time.Time, full float64) float64 {
	if !c.enabled || full <= 0 {
		return max(full, 0)
	}
	narrow := min(c.width, full)
	if narrow <= 0 {
		narrow = full
	}
	level := c.currentLevel(now)
	return full + (narrow-full)*level
}

func (c *compactor) stop() {
	c.levelAni = nil
}
