// Package dial implements a horizontal snap-to-center dial: a strip of items
// that free-scrolls under drag and inertia, always settles centered on one
// item, and reports centered/settled events to its host.
//
// The package owns geometry, scroll physics, snapping, timers and abstract
// visual state only. Rendering is done by an adapter (see ui/dialview).
package dial

// Size is an item's width and height in dial units.
type Size struct {
	Width  float64
	Height float64
}

// Geometry is the derived layout of a dial. It is recomputed, never stored.
type Geometry struct {
	Count           int
	ItemWidth       float64
	ItemHeight      float64
	Spacing         float64
	ViewportWidth   float64
	ContentWidth    float64
	HorizontalInset float64
}

// ComputeGeometry lays out count items of itemSize separated by spacing
// inside a viewport of the given width. The inset is the padding that lets
// the first and last item reach the viewport center.
func ComputeGeometry(count int, itemSize Size, spacing, viewportWidth float64) Geometry {
	g := Geometry{
		Count:         max(count, 0),
		ItemWidth:     itemSize.Width,
		ItemHeight:    itemSize.Height,
		Spacing:       spacing,
		ViewportWidth: viewportWidth,
	}
	if g.Count > 0 {
		g.ContentWidth = float64(g.Count)*itemSize.Width + float64(g.Count-1)*spacing
	}
	g.HorizontalInset = max(0, (viewportWidth-itemSize.Width)/2)
	return g
}

// Valid reports whether the geometry can be used for centering.
func (g Geometry) Valid() bool {
	return g.Count > 0 && g.ViewportWidth > 0 && g.ItemWidth > 0
}

// Stride is the distance between the left edges of two neighbouring items.
func (g Geometry) Stride() float64 {
	return g.ItemWidth + g.Spacing
}

// ItemCenter returns the center of item i in content coordinates.
func (g Geometry) ItemCenter(i int) float64 {
	return float64(i)*g.Stride() + g.ItemWidth/2
}

// ItemCenters returns the centers of every item in index order.
func (g Geometry) ItemCenters() []float64 {
	centers := make([]float64, g.Count)
	for i := range centers {
		centers[i] = g.ItemCenter(i)
	}
	return centers
}

// CenteredOffset is the scroll offset that puts item i exactly at the
// viewport center.
func (g Geometry) CenteredOffset(i int) float64 {
	return g.ItemCenter(i) - g.ViewportWidth/2
}

// Bounds returns the offset range in which some item is centered.
// Offsets outside it are overscroll.
func (g Geometry) Bounds() (lo, hi float64) {
	if g.Count == 0 {
		return 0, 0
	}
	return g.CenteredOffset(0), g.CenteredOffset(g.Count - 1)
}

// ItemAt returns the index of the item under viewport coordinate x at the
// given offset, or -1 when x falls on spacing or outside the content.
func (g Geometry) ItemAt(offset, x float64) int {
	if !g.Valid() || g.Stride() <= 0 {
		return -1
	}
	cx := offset + x
	if cx < 0 || cx >= g.ContentWidth {
		return -1
	}
	i := int(cx / g.Stride())
	if i >= g.Count {
		return -1
	}
	if cx-float64(i)*g.Stride() >= g.ItemWidth {
		return -1
	}
	return i
}

// ResizeCorrection returns the delta to add to newOffset so the content
// point that sat at the old viewport center sits at the new one.
func ResizeCorrection(oldOffset, oldViewportWidth, newOffset, newViewportWidth float64) float64 {
	return (oldOffset + oldViewportWidth/2) - (newOffset + newViewportWidth/2)
}
