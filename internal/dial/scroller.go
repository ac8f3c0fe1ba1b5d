package dial

import (
	"math"
	"time"
)

const (
	// restEpsilon is the offset distance treated as "already centered".
	restEpsilon = 1e-6

	// Rubber-band resistance past the first or last item.
	overscrollResistance    = 2.4
	minOverscrollResistance = 0.12
	overscrollLimitFraction = 0.35

	// Fling speed is clamped relative to the viewport width.
	maxFlingViewports = 5.4

	// decelSlope is DecelerateOut's initial slope; it maps release velocity
	// to an animation duration that starts at that velocity.
	decelSlope = 1.0 / 0.22
)

func (d *Dial) interactive() bool {
	return !d.disposed && d.geom.Valid()
}

func (d *Dial) setPhase(p Phase) {
	if d.phase == p {
		return
	}
	d.log.Debug("dial phase", "from", d.phase, "to", p)
	d.phase = p
}

// setOffset moves the strip and re-resolves the centered item.
func (d *Dial) setOffset(now time.Time, v float64) {
	d.offset = v
	d.updateCentered(now, true)
}

// updateCentered fires OnCenteredItemChanged synchronously whenever the
// nearest item changes, and restyles the items.
func (d *Dial) updateCentered(now time.Time, pulse bool) {
	r, ok := resolveGeometry(d.geom, d.offset)
	if !ok || r.Index == d.centered {
		return
	}
	d.centered = r.Index
	d.presenter.transitionTo(now, Present(r.Index, d.items, d.cfg.Style))
	if d.cb.OnCenteredItemChanged != nil {
		d.cb.OnCenteredItemChanged(r.Index)
	}
	if pulse && d.cfg.HapticsEnabled && d.cb.OnPulse != nil {
		d.cb.OnPulse(r.Index)
	}
}

// PointerDown starts a press at viewport coordinate x. A press during
// deceleration catches the strip where it is.
func (d *Dial) PointerDown(x float64) {
	if !d.interactive() {
		return
	}
	now := d.clock.Now()
	tracker := d.pointer.tracker
	tracker.reset()
	tracker.add(now, x)
	d.pointer = pointerState{down: true, downX: x, lastX: x, tracker: tracker}
	if d.phase == PhaseDecelerating {
		d.stopMotion()
		d.setPhase(PhaseIdle)
		d.pointer.caught = true
	}
}

// PointerMove follows the pointer. Movement past the drag threshold turns
// the press into a drag and fires OnScrollBegin once.
func (d *Dial) PointerMove(x float64) {
	if !d.pointer.down || !d.interactive() {
		return
	}
	now := d.clock.Now()
	d.pointer.tracker.add(now, x)
	if !d.pointer.dragging {
		if math.Abs(x-d.pointer.downX) < d.cfg.DragThreshold {
			return
		}
		d.beginDrag(now)
	}
	delta := x - d.pointer.lastX
	d.pointer.lastX = x
	// The content follows the finger, so the offset moves the other way.
	d.setOffset(now, d.dragOffset(-delta))
}

// PointerUp ends a press. A press that never became a drag is a tap on
// the item under x; a drag is released into a snap.
func (d *Dial) PointerUp(x float64) {
	if !d.pointer.down || !d.interactive() {
		return
	}
	if d.pointer.dragging && x != d.pointer.lastX {
		d.PointerMove(x)
	}
	now := d.clock.Now()
	p := d.pointer
	d.pointer = pointerState{tracker: p.tracker}

	switch {
	case p.dragging:
		d.release(now, -p.tracker.velocity(now))
	case p.caught:
		d.release(now, 0)
	default:
		d.TapAt(x)
	}
}

// CancelPointer abandons a press, e.g. when the pointer leaves the dial.
// A drag in progress is released without velocity.
func (d *Dial) CancelPointer() {
	if !d.pointer.down || !d.interactive() {
		return
	}
	p := d.pointer
	d.pointer = pointerState{tracker: p.tracker}
	if p.dragging || p.caught {
		d.release(d.clock.Now(), 0)
	}
}

func (d *Dial) beginDrag(now time.Time) {
	d.pointer.dragging = true
	d.pointer.caught = false
	d.stopMotion()
	d.timers.cancel(timerSettle)
	d.setPhase(PhaseDragging)
	d.interactionStarted(now)
	if d.cb.OnScrollBegin != nil {
		d.cb.OnScrollBegin()
	}
}

// dragOffset applies delta with rubber-band resistance beyond the first
// and last item.
func (d *Dial) dragOffset(delta float64) float64 {
	lo, hi := d.geom.Bounds()
	vw := d.geom.ViewportWidth
	if (d.offset <= lo && delta < 0) || (d.offset >= hi && delta > 0) {
		overscroll := 0.0
		if d.offset < lo {
			overscroll = lo - d.offset
		} else if d.offset > hi {
			overscroll = d.offset - hi
		}
		resistance := 1.0 / (1.0 + overscrollResistance*overscroll/vw)
		delta *= max(resistance, minOverscrollResistance)
	}
	limit := vw * overscrollLimitFraction
	return clamp(d.offset+delta, lo-limit, hi+limit)
}

// release always decelerates toward a snap point: the natural inertial
// rest position is projected and then replaced by the nearest item's
// centered offset.
func (d *Dial) release(now time.Time, velocity float64) {
	velocity = d.normalizeVelocity(velocity)
	projected := d.offset
	fling := math.Abs(velocity) >= d.cfg.MinFlingVelocity && velocity != 0
	if fling {
		projected += d.projectDistance(velocity)
	}
	r, ok := resolveGeometry(d.geom, projected)
	if !ok {
		return
	}
	rest := d.geom.CenteredOffset(r.Index)
	distance := math.Abs(rest - d.offset)
	if distance < restEpsilon {
		d.setOffset(now, rest)
		d.enterSettling(now)
		return
	}

	duration := d.cfg.SnapDuration
	curve := EaseOut
	if fling {
		seconds := decelSlope * distance / math.Abs(velocity)
		duration = time.Duration(seconds * float64(time.Second))
		duration = min(max(duration, d.cfg.MinDecelDuration), d.cfg.MaxDecelDuration)
		curve = DecelerateOut
	}
	d.motion = newTween(d.offset, rest, now, duration, curve)
	d.motionTarget = r.Index
	d.setPhase(PhaseDecelerating)
}

func (d *Dial) normalizeVelocity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	maxAbs := d.geom.ViewportWidth * maxFlingViewports
	return clamp(v, -maxAbs, maxAbs)
}

// projectDistance is how far a fling at velocity would coast under
// a = Deceleration + DecelerationFactor*|v|.
func (d *Dial) projectDistance(velocity float64) float64 {
	speed := math.Abs(velocity)
	decel := d.cfg.Deceleration + d.cfg.DecelerationFactor*speed
	dist := speed * speed / (2 * decel)
	if velocity < 0 {
		return -dist
	}
	return dist
}

// Tap selects item i: OnTap fires immediately, the strip animates to i,
// and OnScrollEnd(i) follows once the settle delay has elapsed.
func (d *Dial) Tap(i int) {
	if !d.interactive() || i < 0 || i >= len(d.items) {
		return
	}
	now := d.clock.Now()
	d.interactionStarted(now)
	if d.cb.OnTap != nil {
		d.cb.OnTap(i)
	}
	if d.compact.enabled {
		d.timers.start(timerCollapse, now.Add(d.cfg.CollapseDelay))
	}
	d.animateTo(now, i)
}

// TapAt taps the item under viewport coordinate x, if any.
func (d *Dial) TapAt(x float64) {
	if i := d.ItemAt(x); i >= 0 {
		d.Tap(i)
	}
}

// Step selects the item delta positions away from the current target, as
// if it had been tapped. Steps past either end are ignored.
func (d *Dial) Step(delta int) {
	if !d.interactive() {
		return
	}
	base := d.centered
	if d.motion != nil && d.motionTarget >= 0 {
		base = d.motionTarget
	}
	if base < 0 {
		return
	}
	if target := base + delta; target >= 0 && target < len(d.items) {
		d.Tap(target)
	}
}

// ScrollToIndex centers item i. Animated scrolls settle and report
// OnScrollEnd like a tap but without OnTap or compaction changes; jumps
// take effect immediately and report only a centered change.
func (d *Dial) ScrollToIndex(i int, animated bool) {
	if !d.interactive() || i < 0 || i >= len(d.items) {
		return
	}
	now := d.clock.Now()
	if animated {
		d.animateTo(now, i)
		return
	}
	d.stopMotion()
	d.timers.cancel(timerSettle)
	d.pointer = pointerState{tracker: d.pointer.tracker}
	d.setPhase(PhaseIdle)
	d.offset = d.geom.CenteredOffset(i)
	d.updateCentered(now, false)
}

// animateTo starts (or retargets) the programmatic scroll to item i.
func (d *Dial) animateTo(now time.Time, i int) {
	d.timers.cancel(timerSettle)
	d.pointer.caught = false
	target := d.geom.CenteredOffset(i)
	if math.Abs(target-d.offset) < restEpsilon {
		d.stopMotion()
		d.setOffset(now, target)
		d.enterSettling(now)
		return
	}
	d.motion = newTween(d.offset, target, now, d.cfg.SnapDuration, EaseOut)
	d.motionTarget = i
	d.setPhase(PhaseSettling)
}

func (d *Dial) stopMotion() {
	d.motion = nil
	d.motionTarget = -1
}

// enterSettling starts the single settle timer. Any earlier one is replaced.
func (d *Dial) enterSettling(now time.Time) {
	d.setPhase(PhaseSettling)
	d.timers.start(timerSettle, now.Add(d.cfg.SettleDelay))
}

// interactionStarted expands a compact dial and drops a pending collapse.
func (d *Dial) interactionStarted(now time.Time) {
	d.timers.cancel(timerCollapse)
	d.compact.set(now, false)
}

// Tick advances animations and fires due timers. Hosts call it on every
// frame while Active is true, and at NextDeadline otherwise.
func (d *Dial) Tick() {
	if d.disposed {
		return
	}
	now := d.clock.Now()
	if d.motion != nil {
		v, done := d.motion.value(now)
		d.setOffset(now, v)
		if done {
			d.stopMotion()
			d.enterSettling(now)
		}
	}
	for _, p := range d.timers.due(now) {
		d.fire(now, p)
		if d.disposed {
			return
		}
	}
}

func (d *Dial) fire(now time.Time, p timerPurpose) {
	d.log.Debug("dial timer", "timer", p)
	switch p {
	case timerSettle:
		if d.phase != PhaseSettling || d.motion != nil {
			return
		}
		// Late corrections (resize, item changes) may have moved the strip.
		d.updateCentered(now, true)
		d.setPhase(PhaseIdle)
		idx := d.centered
		if d.cb.OnScrollEnd != nil && idx >= 0 {
			d.cb.OnScrollEnd(idx)
		}
		if !d.timers.pending(timerCollapse) {
			d.compact.set(now, true)
		}
	case timerCollapse:
		d.compact.set(now, true)
	}
}
