package dial

import "fmt"

// Phase is the scroll state of a dial.
//
//	idle ──drag──► dragging ──release──► decelerating ──stop──► settling ──timer──► idle
//	idle ──tap / programmatic scroll──────────────────────────► settling ──timer──► idle
//
// Settling covers both a programmatic scroll animation in flight and the
// debounce window before the scroll-end event.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseDecelerating
	PhaseSettling
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseDecelerating:
		return "decelerating"
	case PhaseSettling:
		return "settling"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Moving reports whether the offset is under user or inertial control.
func (p Phase) Moving() bool {
	return p == PhaseDragging || p == PhaseDecelerating
}
