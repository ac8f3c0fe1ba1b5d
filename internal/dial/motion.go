package dial

import (
	"math"
	"time"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 { return t }

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// DecelerateOut matches the tail of an inertial fling: fast start, long
// gentle stop.
var DecelerateOut = CubicBezier(0.22, 1.0, 0.36, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton-Raphson can wander outside [0,1]; bisect instead.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tween animates a scalar from one value to another over a duration.
// A zero duration completes on the first sample.
type tween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

func newTween(from, to float64, start time.Time, d time.Duration, curve Curve) *tween {
	if curve == nil {
		curve = Linear
	}
	return &tween{from: from, to: to, start: start, duration: d, curve: curve}
}

// progress returns eased progress at now and whether the tween is finished.
func (t *tween) progress(now time.Time) (float64, bool) {
	if t.duration <= 0 {
		return 1, true
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		return 1, true
	}
	if p < 0 {
		p = 0
	}
	return t.curve(p), false
}

// value returns the animated value at now and whether the tween is finished.
// A finished tween always reports its exact target.
func (t *tween) value(now time.Time) (float64, bool) {
	p, done := t.progress(now)
	if done {
		return t.to, true
	}
	return t.from + (t.to-t.from)*p, false
}

// shift moves both endpoints, used when a resize re-bases the offset.
func (t *tween) shift(delta float64) {
	t.from += delta
	t.to += delta
}

// retarget restarts the tween at from toward to with the time it had left.
func (t *tween) retarget(now time.Time, from, to float64) {
	remaining := max(t.duration-now.Sub(t.start), 0)
	t.from, t.to, t.start, t.duration = from, to, now, remaining
}
