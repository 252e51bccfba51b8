package environment

import (
	"sort"

	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
)

// sweepEvent is a single activation boundary crossing in the free-interval
// sweep.
type sweepEvent struct {
	t     float64
	start bool
}

// FreeIntervalsSegment produces, for a segment and its candidate cell set
// (from StaticCollisionFreeSegment), the maximal disjoint free-time
// sub-intervals of Q during which the segment is collision-free with
// respect to every dynamic obstacle. The cell index over-approximates, so
// candidates are narrowed to obstacles whose buffered geometry actually
// intersects the segment before their occurrences enter the sweep.
func (e *Instance) FreeIntervalsSegment(seg geometry.Segment, cells []Cell) (always, blocked bool, free []interval.Interval) {
	if len(e.dynamic) == 0 || len(cells) == 0 {
		return true, false, []interval.Interval{e.q}
	}

	seen := make(map[int]struct{})
	for _, c := range cells {
		for id := range e.dynamicGrid[c.I][c.J] {
			seen[id] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return true, false, []interval.Interval{e.q}
	}

	var startTimes, endTimes []float64
	for id := range seen {
		o := e.dynamic[id]
		if !o.Shape.IntersectsSegment(seg.A, seg.B, o.Radius) {
			continue
		}

		for _, occ := range o.Occurrences(e.q) {
			startTimes = append(startTimes, occ.L)
			endTimes = append(endTimes, occ.R)
		}
	}

	sort.Float64s(startTimes)

	active := 0
	startIdx := 0
	for _, t := range startTimes {
		if t <= e.q.L {
			active++
			startIdx++
		} else {
			break
		}
	}

	intervalStart := -1.0
	haveStart := active == 0
	if haveStart {
		intervalStart = e.q.L
	}

	events := make([]sweepEvent, 0, len(startTimes)-startIdx+len(endTimes))
	for _, t := range startTimes[startIdx:] {
		events = append(events, sweepEvent{t: t, start: true})
	}
	for _, t := range endTimes {
		events = append(events, sweepEvent{t: t, start: false})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].t < events[j].t })

	var out []interval.Interval
	for _, ev := range events {
		if ev.t > e.q.R {
			break
		}

		if ev.start {
			if active == 0 && haveStart && intervalStart < ev.t {
				out = append(out, interval.Interval{L: intervalStart, R: ev.t})
				haveStart = false
			}
			active++
		} else {
			active--
			if active == 0 {
				intervalStart = ev.t
				haveStart = true
			}
		}
	}

	if active == 0 && haveStart && intervalStart < e.q.R {
		out = append(out, interval.Interval{L: intervalStart, R: e.q.R})
	}

	if len(out) == 0 {
		return false, true, nil
	}
	if len(out) == 1 && out[0] == e.q {
		return true, false, out
	}

	return false, false, out
}
