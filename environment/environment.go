// Package environment compiles a mixed static/dynamic obstacle set into a
// queryable spatial-temporal index: the Environment Instance. It classifies
// obstacles against a query interval, builds a uniform grid spatial index
// over both classes, and answers point/segment collision queries plus
// per-segment free-time interval decomposition.
package environment

import (
	"errors"

	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
	"github.com/timeaware/taprm/obstacle"
)

// Sentinel errors for environment construction.
var (
	// ErrEnvConfig indicates an empty query interval or a degenerate workspace.
	ErrEnvConfig = errors.New("environment: invalid query interval or workspace")
)

// DefaultGridResolution is the default K×K grid resolution.
const DefaultGridResolution = 20

// Cell identifies a single grid cell by its (column, row) index.
type Cell struct {
	I, J int
}

// Instance is an immutable snapshot binding an obstacle set to a query
// interval and workspace rectangle. It is safe for concurrent read access
// by many planner invocations once Build returns.
type Instance struct {
	q  interval.Interval
	ws geometry.Rect
	k  int

	spacingX, spacingY float64

	static  map[int]obstacle.Obstacle
	dynamic map[int]obstacle.Obstacle

	staticGrid  [][]map[int]struct{}
	dynamicGrid [][]map[int]struct{}
}

// Query returns the environment's query interval Q.
func (e *Instance) Query() interval.Interval { return e.q }

// Workspace returns the environment's workspace rectangle.
func (e *Instance) Workspace() geometry.Rect { return e.ws }

// Resolution returns the grid's K.
func (e *Instance) Resolution() int { return e.k }

// Obstacles returns read-only snapshots of the classified static and
// dynamic obstacle sets, keyed by id.
func (e *Instance) Obstacles() (static, dynamic map[int]obstacle.Obstacle) {
	static = make(map[int]obstacle.Obstacle, len(e.static))
	for id, o := range e.static {
		static[id] = o
	}
	dynamic = make(map[int]obstacle.Obstacle, len(e.dynamic))
	for id, o := range e.dynamic {
		dynamic[id] = o
	}

	return static, dynamic
}

// Build classifies obstacles into static/dynamic sets over q and compiles
// a k×k spatial grid index over both classes.
func Build(obstacles []obstacle.Obstacle, q interval.Interval, ws geometry.Rect, k int) (*Instance, error) {
	if q.Length() <= 0 || ws.Degenerate() {
		return nil, ErrEnvConfig
	}
	if k <= 0 {
		k = DefaultGridResolution
	}

	e := &Instance{
		q:        q,
		ws:       ws,
		k:        k,
		spacingX: (ws.MaxX - ws.MinX) / float64(k),
		spacingY: (ws.MaxY - ws.MinY) / float64(k),
		static:   make(map[int]obstacle.Obstacle),
		dynamic:  make(map[int]obstacle.Obstacle),
	}

	for _, o := range obstacles {
		e.classify(o)
	}

	e.buildGrid()

	return e, nil
}

// classify sorts one obstacle into the static set, the dynamic set, or
// neither: obstacles whose footprint misses the workspace or whose active
// set never meets q are discarded; an occurrence covering all of q makes
// the obstacle effectively static for this instance.
func (e *Instance) classify(o obstacle.Obstacle) {
	if !o.Shape.IntersectsRect(e.ws, o.Radius) {
		return
	}

	if o.Interval == nil {
		e.static[o.ID] = o.Static()

		return
	}

	occ, ok := o.ActiveOccurrence(e.q)
	if !ok {
		return
	}

	if occ.Covers(e.q) {
		e.static[o.ID] = o.Static()

		return
	}

	if o.IsActiveDuring(e.q) {
		e.dynamic[o.ID] = o
	}
}
