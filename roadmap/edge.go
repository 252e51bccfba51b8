package roadmap

import (
	"math"
	"sort"

	"github.com/timeaware/taprm/interval"
)

// TimedEdge is a straight segment between two vertices, annotated with its
// length, cost, and the sorted, disjoint, maximal sub-intervals of Q during
// which it is collision-free.
type TimedEdge struct {
	ID   int
	From int
	To   int

	Length float64
	Cost   float64

	AlwaysAvailable bool
	Availability    []interval.Interval
}

// CostAt returns the edge's traversal cost for the window [t, t+Length],
// or +Inf if no availability interval covers the whole window. Partial
// coverage is a hard reject: the agent cannot pause mid-edge.
func (e *TimedEdge) CostAt(t float64) float64 {
	return e.costForWindow(interval.Interval{L: t, R: t + e.Length})
}

func (e *TimedEdge) costForWindow(window interval.Interval) float64 {
	if e.AlwaysAvailable {
		return e.Cost
	}
	if len(e.Availability) == 0 {
		return math.Inf(1)
	}

	// First interval with right endpoint >= window.L, via sort.Search over
	// the monotonically increasing R values (Availability is sorted and
	// disjoint).
	idx := sort.Search(len(e.Availability), func(i int) bool {
		return e.Availability[i].R >= window.L
	})
	if idx == len(e.Availability) {
		return math.Inf(1)
	}
	if e.Availability[idx].Covers(window) {
		return e.Cost
	}

	return math.Inf(1)
}
