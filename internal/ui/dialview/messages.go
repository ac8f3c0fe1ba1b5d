package dialview

// Messages reported to the host. Each carries the dial id so a screen with
// several dials can route them.

// ScrollBeganMsg is sent when a drag starts.
type ScrollBeganMsg struct {
	ID int
}

// CenteredChangedMsg is sent whenever the centered item changes, live
// during scrolling and animations.
type CenteredChangedMsg struct {
	ID    int
	Index int
}

// ScrollEndedMsg is sent once motion has stopped and the settle delay has
// elapsed. Index is the final centered item.
type ScrollEndedMsg struct {
	ID    int
	Index int
}

// TappedMsg is sent when an item is tapped or stepped to.
type TappedMsg struct {
	ID    int
	Index int
}

// PulseMsg is sent once per confirmed selection change when haptics are
// enabled. The dial also flashes the selected item.
type PulseMsg struct {
	ID    int
	Index int
}

// frameMsg drives animations and timers. Ticks from an older schedule or
// another dial are ignored.
type frameMsg struct {
	id  int
	gen int
}
