package dial

import "time"

const (
	velocityWindow     = 100 * time.Millisecond
	velocityMaxSamples = 20
)

type pointerSample struct {
	at time.Time
	x  float64
}

// velocityTracker estimates pointer velocity from recent samples inside a
// short window, so a pause before release reads as zero velocity.
type velocityTracker struct {
	samples []pointerSample
}

func (v *velocityTracker) reset() {
	v.samples = v.samples[:0]
}

func (v *velocityTracker) add(at time.Time, x float64) {
	if len(v.samples) == velocityMaxSamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:len(v.samples)-1]
	}
	v.samples = append(v.samples, pointerSample{at: at, x: x})
}

// velocity returns units per second over the samples newer than the window
// ending at now.
func (v *velocityTracker) velocity(now time.Time) float64 {
	cutoff := now.Add(-velocityWindow)
	first := -1
	for i, s := range v.samples {
		if !s.at.Before(cutoff) {
			first = i
			break
		}
	}
	if first < 0 {
		return 0
	}
	oldest := v.samples[first]
	newest := v.samples[len(v.samples)-1]
	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (newest.x - oldest.x) / dt
}
