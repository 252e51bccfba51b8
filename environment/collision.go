package environment

import (
	"github.com/timeaware/taprm/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// StaticCollisionFree reports whether point p is collision-free against
// the static obstacle set, optionally also checking every dynamic obstacle
// regardless of activation (for planners that do not model time).
func (e *Instance) StaticCollisionFree(p r2.Vec, includeDynamic bool) bool {
	i, j := e.cellIndex(p.X, p.Y)

	for id := range e.staticGrid[i][j] {
		o := e.static[id]
		if o.Shape.IntersectsPoint(p, o.Radius) {
			return false
		}
	}

	if includeDynamic {
		for id := range e.dynamicGrid[i][j] {
			o := e.dynamic[id]
			if o.Shape.IntersectsPoint(p, o.Radius) {
				return false
			}
		}
	}

	return true
}

// StaticCollisionFreeSegment reports whether the segment is collision-free
// against the static obstacle set. The segment's candidate cell set is
// computed first and returned for reuse by FreeIntervalsSegment; the
// static ids across those cells are unioned and tested against the
// segment's buffered geometry.
func (e *Instance) StaticCollisionFreeSegment(seg geometry.Segment) (bool, []Cell) {
	cells := e.candidateCells(seg)

	seen := make(map[int]struct{})
	for _, c := range cells {
		for id := range e.staticGrid[c.I][c.J] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			o := e.static[id]
			if o.Shape.IntersectsSegment(seg.A, seg.B, o.Radius) {
				return false, nil
			}
		}
	}

	return true, cells
}

// candidateCells returns every cell in the segment's bounding-box cell
// range that the segment geometrically intersects.
func (e *Instance) candidateCells(seg geometry.Segment) []Cell {
	bound := seg.Bound(0)
	iMin, iMax, jMin, jMax := e.cellRange(bound)

	cells := make([]Cell, 0, (iMax-iMin+1)*(jMax-jMin+1))
	for i := iMin; i <= iMax; i++ {
		for j := jMin; j <= jMax; j++ {
			rect := e.cellRect(i, j)
			if seg.IntersectsRect(rect, 0) {
				cells = append(cells, Cell{I: i, J: j})
			}
		}
	}

	return cells
}
