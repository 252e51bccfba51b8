package planner

import (
	"container/heap"
	"math"
	"time"

	"github.com/timeaware/taprm/roadmap"
)

// prunedState is one open-set entry for the temporally-pruned variant. It
// carries its own heap index so a cheaper arrival at the same (vertex,
// bucket) can be applied in place via heap.Fix instead of pushing a
// duplicate.
type prunedState struct {
	f     float64
	g     float64
	v     int
	t     float64
	tau   float64
	path  []int
	index int
}

// prunedHeap is a min-heap over *prunedState ordered by f, with Swap
// maintaining each entry's index field so Fix can locate and re-sift an
// updated entry in O(log n).
type prunedHeap []*prunedState

func (h prunedHeap) Len() int           { return len(h) }
func (h prunedHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h prunedHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *prunedHeap) Push(x interface{}) {
	s := x.(*prunedState)
	s.index = len(*h)
	*h = append(*h, s)
}
func (h *prunedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// bucketKey identifies a (vertex, rounded-time) open-set bucket.
type bucketKey struct {
	v   int
	tau float64
}

// roundTo rounds t to p decimal digits; negative p widens the bucket by
// rounding to the nearest multiple of 10^-p instead (p=-1: nearest 10).
func roundTo(t float64, p int) float64 {
	scale := math.Pow(10, float64(p))

	return math.Round(t*scale) / scale
}

// PlanPruned runs the temporally-pruned TA-PRM search: identical to Plan
// except the open set is keyed by (vertex, round(t, precision)),
// bounding it to at most one entry per bucket. A cheaper arrival at an
// existing bucket overwrites the entry in place and re-sifts the heap; a
// more expensive one is dropped without being pushed.
func PlanPruned(g *roadmap.Graph, t0 float64, precision int, opts ...Option) (Result, error) {
	cfg := resolveOptions(opts)

	start, ok := g.Start()
	if !ok {
		return Result{}, ErrNoStart
	}
	goal, ok := g.Goal()
	if !ok {
		return Result{}, ErrNoGoal
	}

	qEnd := g.Env().Query().R
	edges := g.Edges()

	open := &prunedHeap{}
	heap.Init(open)
	index := make(map[bucketKey]*prunedState)

	push := func(s *prunedState) {
		key := bucketKey{v: s.v, tau: s.tau}
		if existing, found := index[key]; found {
			if existing.g <= s.g {
				return
			}
			existing.f, existing.g, existing.t, existing.path = s.f, s.g, s.t, s.path
			heap.Fix(open, existing.index)

			return
		}

		index[key] = s
		heap.Push(open, s)
	}

	startTau := roundTo(t0, precision)
	push(&prunedState{
		f:    g.Heuristic(start),
		g:    0,
		v:    start,
		t:    t0,
		tau:  startTau,
		path: []int{start},
	})

	deadline := time.Time{}
	if cfg.Timeout > 0 {
		deadline = time.Now().Add(cfg.Timeout)
	}

	result := Result{}
	for open.Len() > 0 {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return Result{}, ErrTimeout
		}

		if open.Len() > result.MaxOpen {
			result.MaxOpen = open.Len()
		}

		cur := heap.Pop(open).(*prunedState)
		delete(index, bucketKey{v: cur.v, tau: cur.tau})
		result.Expansions++

		if cur.v == goal {
			result.Path = cur.path

			return result, nil
		}

		for _, nb := range g.Neighbors(cur.v) {
			if onPathPruned(cur.path, nb.Neighbor) {
				continue
			}

			te := edges[nb.Edge]
			tArrive := cur.t + te.Length
			if tArrive > qEnd {
				continue
			}

			cost := te.CostAt(cur.t)
			if math.IsInf(cost, 1) {
				continue
			}

			newPath := make([]int, len(cur.path)+1)
			copy(newPath, cur.path)
			newPath[len(cur.path)] = nb.Neighbor

			newG := cur.g + cost
			push(&prunedState{
				f:    newG + g.Heuristic(nb.Neighbor),
				g:    newG,
				v:    nb.Neighbor,
				t:    tArrive,
				tau:  roundTo(tArrive, precision),
				path: newPath,
			})
		}
	}

	return Result{}, ErrNoPathInHorizon
}

func onPathPruned(path []int, v int) bool {
	for _, p := range path {
		if p == v {
			return true
		}
	}

	return false
}
