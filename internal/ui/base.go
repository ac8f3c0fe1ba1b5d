package ui

// Base carries the size and focus every pane and popup needs. Embed it in
// component models; SetSize and SetFocused are promoted.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

// SetSize records the cells the component may draw into. Negative sizes
// are stored as zero.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = max(0, width), max(0, height)
}

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// Sized reports whether a layout has been received. Views render nothing
// until it has.
func (b Base) Sized() bool { return b.width > 0 && b.height > 0 }

// InnerWidth is the width left after pad cells on each side, never below
// one cell.
func (b Base) InnerWidth(pad int) int { return max(1, b.width-2*pad) }
