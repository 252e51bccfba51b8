package planner

import (
	"container/heap"
	"math"
	"time"

	"github.com/timeaware/taprm/roadmap"
)

// state is one open-set entry: cost-to-come g, arrival time t at vertex v,
// heap key f = g + h[v], and the full vertex path taken to reach it. The
// path doubles as the cycle-suppression record, so no closed set is kept.
type state struct {
	f    float64
	g    float64
	v    int
	t    float64
	path []int
}

// onPath reports whether vertex v already appears in the state's path.
func (s *state) onPath(v int) bool {
	for _, p := range s.path {
		if p == v {
			return true
		}
	}

	return false
}

// exactHeap is a min-heap over *state ordered by f. Unlike a Dijkstra
// queue there are no stale entries to discard on pop: distinct states
// (different t or path) are genuinely distinct open-set members, not
// updates to the same vertex's best distance.
type exactHeap []*state

func (h exactHeap) Len() int            { return len(h) }
func (h exactHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h exactHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *exactHeap) Push(x interface{}) { *h = append(*h, x.(*state)) }
func (h *exactHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// Plan runs the exact TA-PRM search: best-first over (vertex, time)
// states, Euclidean-to-goal heuristic, per-path cycle suppression, no
// closed set. Returns ErrNoPathInHorizon if the open set drains without
// reaching goal, or ErrTimeout if a Timeout option is set and elapses.
func Plan(g *roadmap.Graph, t0 float64, opts ...Option) (Result, error) {
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

	open := &exactHeap{}
	heap.Init(open)
	heap.Push(open, &state{
		f:    g.Heuristic(start),
		g:    0,
		v:    start,
		t:    t0,
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

		cur := heap.Pop(open).(*state)
		result.Expansions++

		if cur.v == goal {
			result.Path = cur.path

			return result, nil
		}

		for _, nb := range g.Neighbors(cur.v) {
			if cur.onPath(nb.Neighbor) {
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
			heap.Push(open, &state{
				f:    newG + g.Heuristic(nb.Neighbor),
				g:    newG,
				v:    nb.Neighbor,
				t:    tArrive,
				path: newPath,
			})
		}
	}

	return Result{}, ErrNoPathInHorizon
}
