package dial

import (
	"log/slog"
	"slices"
	"time"
)

// Dial is one snap-to-center dial instance. It is not safe for concurrent
// use; drive it from a single event loop.
type Dial struct {
	cfg   Config
	cb    Callbacks
	clock Clock
	log   *slog.Logger

	items          []Item
	viewportWidth  float64
	viewportHeight float64
	layoutWidth    float64 // viewport width of the last valid layout
	geom           Geometry
	// relayout is set when the items changed without a usable viewport.
	relayout bool

	offset   float64
	phase    Phase
	centered int

	pointer      pointerState
	motion       *tween
	motionTarget int

	timers    timerSet
	presenter presenter
	compact   compactor
	disposed  bool
}

type pointerState struct {
	down     bool
	dragging bool
	// caught is set when a press stopped a running deceleration.
	caught  bool
	downX   float64
	lastX   float64
	tracker velocityTracker
}

// New creates a dial. Items and viewport arrive later through SetItems and
// SetViewport; the dial does nothing until both are valid.
func New(cfg Config, cb Callbacks, opts ...Option) *Dial {
	cfg = cfg.normalized()
	d := &Dial{
		cfg:          cfg,
		cb:           cb,
		clock:        SystemClock(),
		log:          slog.New(slog.DiscardHandler),
		centered:     -1,
		motionTarget: -1,
		presenter: presenter{
			style:    cfg.Style,
			duration: cfg.HighlightDuration,
		},
		compact: newCompactor(cfg.CompactEnabled, cfg.InitialCompact, cfg.CompactWidth, cfg.WidthDuration),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the normalized configuration.
func (d *Dial) Config() Config { return d.cfg }

// Items returns a copy of the current item list.
func (d *Dial) Items() []Item { return slices.Clone(d.items) }

// Geometry returns the current layout.
func (d *Dial) Geometry() Geometry { return d.geom }

// Offset returns the current scroll offset.
func (d *Dial) Offset() float64 { return d.offset }

// Phase returns the current scroll phase.
func (d *Dial) Phase() Phase { return d.phase }

// CenteredIndex returns the centered item, or -1 before the first layout.
func (d *Dial) CenteredIndex() int { return d.centered }

// IsCompact reports the compact flag (not the animated width).
func (d *Dial) IsCompact() bool { return d.compact.enabled && d.compact.compact }

// Disposed reports whether Dispose was called.
func (d *Dial) Disposed() bool { return d.disposed }

// VisibleWidth is the width the renderer should show. It differs from the
// viewport width only while compaction is enabled.
func (d *Dial) VisibleWidth() float64 {
	return d.compact.visibleWidth(d.clock.Now(), d.viewportWidth)
}

// VisualStates returns the per-item appearance at the current time.
func (d *Dial) VisualStates() []VisualState {
	return slices.Clone(d.presenter.frame(d.clock.Now()))
}

// ItemAt returns the item under viewport coordinate x, or -1.
func (d *Dial) ItemAt(x float64) int {
	return d.geom.ItemAt(d.offset, x)
}

// Active reports whether the dial needs frame ticks: an offset animation,
// a highlight or width transition, or a pointer is down.
func (d *Dial) Active() bool {
	if d.disposed {
		return false
	}
	now := d.clock.Now()
	return d.motion != nil || d.pointer.down ||
		d.presenter.animating(now) || d.compact.animating(now)
}

// NextDeadline returns the earliest pending timer.
func (d *Dial) NextDeadline() (time.Time, bool) {
	if d.disposed {
		return time.Time{}, false
	}
	return d.timers.next()
}

// SetItems replaces the item list. The slice is copied. When the list
// changes under a centered item, the same item (by icon and label) stays
// centered if it still exists; otherwise the index is clamped.
func (d *Dial) SetItems(items []Item) {
	if d.disposed || itemsEqual(items, d.items) {
		return
	}
	now := d.clock.Now()
	prevItems := d.items
	prevCentered := d.centered
	d.items = slices.Clone(items)
	d.geom = d.computeGeometry()

	if len(d.items) == 0 {
		d.resetEmpty()
		return
	}
	if !d.geom.Valid() {
		d.holdForLayout(prevItems, prevCentered)
		return
	}
	if prevCentered < 0 || prevCentered >= len(prevItems) {
		d.placeInitial()
		return
	}

	target := matchIndex(prevItems, prevCentered, d.items)
	prevGeom := ComputeGeometry(len(prevItems), d.cfg.ItemSize, d.cfg.Spacing, d.layoutWidth)
	shift := d.offset - prevGeom.CenteredOffset(prevCentered)
	switch {
	case d.pointer.dragging:
		d.offset = d.geom.CenteredOffset(target) + shift
	case d.motion != nil && d.motionTarget >= 0 && d.motionTarget < len(prevItems):
		// Keep animating toward the same item at its new position.
		goal := matchIndex(prevItems, d.motionTarget, d.items)
		d.offset = d.geom.CenteredOffset(target) + shift
		d.motion.retarget(now, d.offset, d.geom.CenteredOffset(goal))
		d.motionTarget = goal
		d.log.Debug("dial retargeted", "index", goal)
	default:
		wasMoving := d.motion != nil
		d.stopMotion()
		d.offset = d.geom.CenteredOffset(target)
		if wasMoving {
			d.enterSettling(now)
		}
	}

	r, _ := resolveGeometry(d.geom, d.offset)
	changed := r.Index != d.centered
	d.centered = r.Index
	d.presenter.snapTo(Present(d.centered, d.items, d.cfg.Style))
	if changed && d.cb.OnCenteredItemChanged != nil {
		d.cb.OnCenteredItemChanged(d.centered)
	}
}

// holdForLayout keeps the centered index valid for the new list while the
// viewport is unusable. Motion and drags stop; the next valid SetViewport
// recenters the held item and settles.
func (d *Dial) holdForLayout(prev []Item, prevCentered int) {
	if prevCentered < 0 || prevCentered >= len(prev) {
		return
	}
	target := matchIndex(prev, prevCentered, d.items)
	if d.motion != nil && d.motionTarget >= 0 && d.motionTarget < len(prev) {
		target = matchIndex(prev, d.motionTarget, d.items)
	}
	d.stopMotion()
	d.timers.cancel(timerSettle)
	d.pointer = pointerState{tracker: d.pointer.tracker}
	d.setPhase(PhaseIdle)
	d.relayout = true

	changed := target != d.centered
	d.centered = target
	d.presenter.snapTo(Present(target, d.items, d.cfg.Style))
	d.log.Debug("dial held for layout", "index", target, "items", len(d.items))
	if changed && d.cb.OnCenteredItemChanged != nil {
		d.cb.OnCenteredItemChanged(target)
	}
}

// matchIndex finds prev[prevIndex] in next, preferring the same position
// and then the nearest one.
func matchIndex(prev []Item, prevIndex int, next []Item) int {
	want := prev[prevIndex]
	if prevIndex < len(next) && next[prevIndex].sameAs(want) {
		return prevIndex
	}
	best, bestDist := -1, 0
	for j, it := range next {
		if !it.sameAs(want) {
			continue
		}
		dist := abs(j - prevIndex)
		if best < 0 || dist < bestDist {
			best, bestDist = j, dist
		}
	}
	if best >= 0 {
		return best
	}
	return clampIndex(prevIndex, len(next))
}

// SetViewport updates the dial's own size. A width change while an item is
// centered shifts the offset so that item stays visually centered. Calls
// with unchanged inputs do nothing; non-positive widths are ignored until
// a valid size arrives.
func (d *Dial) SetViewport(width, height float64) {
	if d.disposed {
		return
	}
	if width == d.viewportWidth && height == d.viewportHeight {
		return
	}
	d.viewportWidth, d.viewportHeight = width, height
	if width <= 0 {
		return
	}
	g := d.computeGeometry()
	if g == d.geom {
		return
	}
	d.geom = g
	if !d.geom.Valid() {
		return
	}
	if d.centered < 0 || d.layoutWidth <= 0 {
		d.placeInitial()
		return
	}
	if d.relayout {
		d.relayout = false
		d.layoutWidth = width
		d.offset = d.geom.CenteredOffset(d.centered)
		d.log.Debug("dial relaid out", "index", d.centered, "offset", d.offset)
		d.enterSettling(d.clock.Now())
		return
	}

	delta := ResizeCorrection(d.offset, d.layoutWidth, d.offset, width)
	d.offset += delta
	if d.motion != nil {
		d.motion.shift(delta)
	}
	d.layoutWidth = width
	d.log.Debug("dial resized", "width", width, "correction", delta)
	d.updateCentered(d.clock.Now(), false)
}

func (d *Dial) computeGeometry() Geometry {
	return ComputeGeometry(len(d.items), d.cfg.ItemSize, d.cfg.Spacing, d.viewportWidth)
}

// placeInitial centers the configured initial index without animation.
func (d *Dial) placeInitial() {
	idx := clampIndex(d.cfg.InitialIndex, len(d.items))
	d.layoutWidth = d.viewportWidth
	d.offset = d.geom.CenteredOffset(idx)
	d.centered = idx
	d.presenter.snapTo(Present(idx, d.items, d.cfg.Style))
	d.log.Debug("dial laid out", "index", idx, "offset", d.offset)
	if d.cb.OnCenteredItemChanged != nil {
		d.cb.OnCenteredItemChanged(idx)
	}
}

func (d *Dial) resetEmpty() {
	d.stopMotion()
	d.timers.cancel(timerSettle)
	d.pointer = pointerState{tracker: d.pointer.tracker}
	d.setPhase(PhaseIdle)
	d.relayout = false
	d.offset = 0
	d.centered = -1
	d.presenter.snapTo(nil)
}

// Dispose invalidates all timers and animations. No callback fires after
// it returns, and every later call is a no-op.
func (d *Dial) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.timers.clear()
	d.stopMotion()
	d.presenter.stop()
	d.compact.stop()
	d.pointer = pointerState{}
	d.cb = Callbacks{}
	d.log.Debug("dial disposed")
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return -1
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
