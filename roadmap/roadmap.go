// Package roadmap samples free-space vertices over an environment.Instance
// and connects them with timed edges carrying per-edge temporal
// availability, producing the roadmap graph the planner package searches.
package roadmap

import (
	"errors"
	"math"
	"sync"

	"github.com/timeaware/taprm/environment"
	"github.com/timeaware/taprm/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for roadmap construction.
var (
	// ErrGraphTooSparse indicates not even one collision-free vertex could be placed.
	ErrGraphTooSparse = errors.New("roadmap: cannot place a single collision-free vertex")
	// ErrStartUnreachable indicates the start point could not connect to any existing vertex.
	ErrStartUnreachable = errors.New("roadmap: start point unreachable from roadmap")
	// ErrGoalUnreachable indicates the goal point could not connect to any existing vertex.
	ErrGoalUnreachable = errors.New("roadmap: goal point unreachable from roadmap")
)

// Vertex is a sampled 2D point in free space.
type Vertex struct {
	ID int
	P  r2.Vec
}

// conn is one endpoint of the symmetric adjacency relation: the neighbor
// vertex id and the edge id connecting to it.
type conn struct {
	Neighbor int
	Edge     int
}

// Graph is the roadmap's vertex/edge/adjacency structure. muVert guards
// vertices, the heuristic table, and the start/goal bindings; muEdgeAdj
// guards edges and adjacency.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	env *environment.Instance

	nextVertexID int
	nextEdgeID   int

	vertices map[int]Vertex
	edges    map[int]*TimedEdge
	adj      map[int][]conn
	h        map[int]float64

	start *int
	goal  *int
}

// Env returns the environment instance the graph was built against.
func (g *Graph) Env() *environment.Instance { return g.env }

// SetEnv binds the environment instance the graph plans against. The
// environment is not part of the graph's JSON representation, so a caller
// that decodes a persisted graph must bind one before planning over it.
func (g *Graph) SetEnv(env *environment.Instance) { g.env = env }

// Vertices returns a copy of the vertex id -> point map.
func (g *Graph) Vertices() map[int]Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[int]Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// Edges returns a copy of the edge id -> *TimedEdge map.
func (g *Graph) Edges() map[int]*TimedEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[int]*TimedEdge, len(g.edges))
	for id, e := range g.edges {
		out[id] = e
	}

	return out
}

// Neighbors returns the (neighbor id, edge id) pairs adjacent to v.
func (g *Graph) Neighbors(v int) []conn {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]conn, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// Heuristic returns h[v], the Euclidean distance to goal (math.Inf(1) if
// goal has not yet been connected).
func (g *Graph) Heuristic(v int) float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if val, ok := g.h[v]; ok {
		return val
	}

	return math.Inf(1)
}

// Start returns the start vertex id, if connected.
func (g *Graph) Start() (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if g.start == nil {
		return 0, false
	}

	return *g.start, true
}

// Goal returns the goal vertex id, if connected.
func (g *Graph) Goal() (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if g.goal == nil {
		return 0, false
	}

	return *g.goal, true
}

// isAdjacent reports whether u and v already share an edge.
func (g *Graph) isAdjacent(u, v int) bool {
	for _, c := range g.adj[u] {
		if c.Neighbor == v {
			return true
		}
	}

	return false
}

// addEdge creates a timed edge between u and v and symmetrically extends
// adjacency.
func (g *Graph) addEdge(u, v int, seg geometry.Segment) bool {
	free, cells := g.env.StaticCollisionFreeSegment(seg)
	if !free {
		return false
	}

	always, blocked, ivals := g.env.FreeIntervalsSegment(seg, cells)
	if blocked {
		return false
	}

	length := seg.Length()
	te := &TimedEdge{
		ID:              g.nextEdgeID,
		From:            u,
		To:              v,
		Length:          length,
		Cost:            length,
		AlwaysAvailable: always,
		Availability:    ivals,
	}
	g.nextEdgeID++

	g.edges[te.ID] = te
	g.adj[u] = append(g.adj[u], conn{Neighbor: v, Edge: te.ID})
	g.adj[v] = append(g.adj[v], conn{Neighbor: u, Edge: te.ID})

	return true
}
