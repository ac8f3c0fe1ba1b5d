package dial

import "github.com/lucasb-eyer/go-colorful"

// Item describes one dial entry. Icons are opaque references resolved by
// the renderer; an empty HighlightedIcon means the item has none.
type Item struct {
	Icon            string
	HighlightedIcon string
	Label           string
	HighlightColor  colorful.Color
}

// HasHighlightedIcon reports whether the item swaps its icon when selected.
func (i Item) HasHighlightedIcon() bool {
	return i.HighlightedIcon != ""
}

// sameAs is the by-value identity used to keep a centered item stable when
// the host replaces the item list.
func (i Item) sameAs(o Item) bool {
	return i.Label == o.Label && i.Icon == o.Icon && i.HighlightedIcon == o.HighlightedIcon
}

func itemsEqual(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
