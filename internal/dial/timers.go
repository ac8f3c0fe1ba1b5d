package dial

import (
	"slices"
	"time"
)

type timerPurpose int

const (
	timerSettle timerPurpose = iota
	timerCollapse
)

func (p timerPurpose) String() string {
	switch p {
	case timerSettle:
		return "settle"
	case timerCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// timerSet holds at most one deadline per purpose. Starting a purpose that
// is already pending replaces its deadline, so a timer can never stack or
// fire twice.
type timerSet struct {
	deadlines map[timerPurpose]time.Time
}

func (s *timerSet) start(p timerPurpose, at time.Time) {
	if s.deadlines == nil {
		s.deadlines = make(map[timerPurpose]time.Time, 2)
	}
	s.deadlines[p] = at
}

func (s *timerSet) cancel(p timerPurpose) {
	delete(s.deadlines, p)
}

func (s *timerSet) pending(p timerPurpose) bool {
	_, ok := s.deadlines[p]
	return ok
}

// due removes and returns the purposes whose deadline is at or before now,
// earliest first.
func (s *timerSet) due(now time.Time) []timerPurpose {
	var fired []timerPurpose
	for p, at := range s.deadlines {
		if !at.After(now) {
			fired = append(fired, p)
		}
	}
	slices.SortFunc(fired, func(a, b timerPurpose) int {
		if c := s.deadlines[a].Compare(s.deadlines[b]); c != 0 {
			return c
		}
		return int(a) - int(b)
	})
	for _, p := range fired {
		delete(s.deadlines, p)
	}
	return fired
}

// next returns the earliest pending deadline.
func (s *timerSet) next() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, at := range s.deadlines {
		if !found || at.Before(earliest) {
			earliest = at
			found = true
		}
	}
	return earliest, found
}

func (s *timerSet) clear() {
	clear(s.deadlines)
}
