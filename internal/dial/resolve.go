package dial

import "math"

// Resolution is the item nearest the viewport center.
type Resolution struct {
	Index    int
	Distance float64
}

// Resolve returns the index whose center is nearest offset+viewportWidth/2.
// On exact ties the lower index wins. It returns false when there are no
// centers.
func Resolve(offset, viewportWidth float64, centers []float64) (Resolution, bool) {
	if len(centers) == 0 {
		return Resolution{Index: -1}, false
	}
	target := offset + viewportWidth/2
	best := Resolution{Index: 0, Distance: math.Inf(1)}
	for i, c := range centers {
		d := math.Abs(c - target)
		if d < best.Distance {
			best = Resolution{Index: i, Distance: d}
		}
	}
	return best, true
}

// resolveGeometry resolves without allocating the centers slice.
func resolveGeometry(g Geometry, offset float64) (Resolution, bool) {
	if !g.Valid() {
		return Resolution{Index: -1}, false
	}
	target := offset + g.ViewportWidth/2
	best := Resolution{Index: 0, Distance: math.Inf(1)}
	for i := range g.Count {
		d := math.Abs(g.ItemCenter(i) - target)
		if d < best.Distance {
			best = Resolution{Index: i, Distance: d}
		}
	}
	return best, true
}
