// Package bench builds a random TA-PRM scenario and runs both planner
// variants over the identical graph, reporting preparation time, search
// time, path cost, max-open-set size, and expansion count for each so the
// two variants are directly comparable.
package bench

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/timeaware/taprm/environment"
	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
	"github.com/timeaware/taprm/obstacle"
	"github.com/timeaware/taprm/planner"
	"github.com/timeaware/taprm/roadmap"
	"gonum.org/v1/gonum/spatial/r2"
)

// Scenario describes one benchmark run: the workspace rectangle, the
// query horizon, start/goal coordinates, the number of random obstacles to
// scatter, and the roadmap sample count.
type Scenario struct {
	Workspace        geometry.Rect
	QueryStart       float64
	QueryEnd         float64
	StartTime        float64
	Start, Goal      r2.Vec
	NumObstacles     int
	NumSamples       int
	Seed             int64
	PruningPrecision int
}

// DefaultScenario returns a small obstacle-free demo: a workspace spanning
// [-5,105] on both axes, start (0,0) and goal (100,100) at opposite corners
// of the inner 100x100 square, 60 roadmap samples, and a 200-unit
// horizon (comfortably above the ~141-unit diagonal, which at unit speed
// is also the minimum traversal time).
func DefaultScenario() Scenario {
	return Scenario{
		Workspace:        geometry.Rect{MinX: -5, MinY: -5, MaxX: 105, MaxY: 105},
		QueryStart:       0,
		QueryEnd:         200,
		StartTime:        0,
		Start:            r2.Vec{X: 0, Y: 0},
		Goal:             r2.Vec{X: 100, Y: 100},
		NumObstacles:     0,
		NumSamples:       60,
		Seed:             0,
		PruningPrecision: 0,
	}
}

// Metrics is one planner variant's recorded performance for a Result.
type Metrics struct {
	PrepTime   time.Duration
	RunTime    time.Duration
	PathCost   float64
	MaxOpen    int
	Expansions int
	Err        error
}

// Report is the paired outcome of running both planner variants over one
// scenario.
type Report struct {
	Exact  Metrics
	Pruned Metrics
}

// Run builds the environment and roadmap for s, then runs both Plan and
// PlanPruned over the identical graph so their MaxOpen/Expansions/cost are
// directly comparable.
func Run(s Scenario) (Report, error) {
	prepStart := time.Now()

	obstacles := randomObstacles(s)
	q := interval.Interval{L: s.QueryStart, R: s.QueryEnd}

	env, err := environment.Build(obstacles, q, s.Workspace, environment.DefaultGridResolution)
	if err != nil {
		return Report{}, fmt.Errorf("bench: building environment: %w", err)
	}

	g, err := roadmap.Build(env, s.NumSamples, s.Seed)
	if err != nil {
		return Report{}, fmt.Errorf("bench: building roadmap: %w", err)
	}

	if err := g.ConnectStart(s.Start); err != nil {
		return Report{}, fmt.Errorf("bench: connecting start: %w", err)
	}
	if err := g.ConnectGoal(s.Goal); err != nil {
		return Report{}, fmt.Errorf("bench: connecting goal: %w", err)
	}

	prep := time.Since(prepStart)

	var report Report
	report.Exact = runVariant(g, s.StartTime, prep, func() (planner.Result, error) {
		return planner.Plan(g, s.StartTime)
	})
	report.Pruned = runVariant(g, s.StartTime, prep, func() (planner.Result, error) {
		return planner.PlanPruned(g, s.StartTime, s.PruningPrecision)
	})

	return report, nil
}

func runVariant(g *roadmap.Graph, t0 float64, prep time.Duration, run func() (planner.Result, error)) Metrics {
	start := time.Now()
	result, err := run()
	elapsed := time.Since(start)

	m := Metrics{PrepTime: prep, RunTime: elapsed, Err: err}
	if err != nil {
		return m
	}

	m.MaxOpen = result.MaxOpen
	m.Expansions = result.Expansions
	m.PathCost = pathCost(g, result.Path, t0)

	return m
}

// pathCost sums TimedEdge.CostAt along path starting from t0, the same
// cost-to-come quantity the planner's own search accumulates, rather than
// the vertex count.
func pathCost(g *roadmap.Graph, path []int, t0 float64) float64 {
	edges := g.Edges()
	total := 0.0
	cursor := t0
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		for _, nb := range g.Neighbors(u) {
			if nb.Neighbor != v {
				continue
			}

			te := edges[nb.Edge]
			total += te.CostAt(cursor)
			cursor += te.Length

			break
		}
	}

	return total
}

// randomObstacles scatters s.NumObstacles point obstacles uniformly in the
// workspace, a quarter of them permanently active (static) and the rest
// active over a random sub-window of the query horizon (dynamic).
// Obstacles whose buffered disc would swallow the start or goal point are
// re-drawn, so neither endpoint lies inside an obstacle; connectivity of
// the roadmap between them is not checked here.
func randomObstacles(s Scenario) []obstacle.Obstacle {
	if s.NumObstacles <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(s.Seed + 1))
	numStatic := s.NumObstacles / 4

	obstacles := make([]obstacle.Obstacle, 0, s.NumObstacles)
	for i := 0; i < s.NumObstacles; i++ {
		var p r2.Vec
		var radius float64
		for {
			p = r2.Vec{
				X: s.Workspace.MinX + rng.Float64()*(s.Workspace.MaxX-s.Workspace.MinX),
				Y: s.Workspace.MinY + rng.Float64()*(s.Workspace.MaxY-s.Workspace.MinY),
			}
			radius = 1 + rng.Float64()*4
			if dist(p, s.Start) > radius+1 && dist(p, s.Goal) > radius+1 {
				break
			}
		}
		shape := geometry.NewPoint(p)

		var iv *interval.Interval
		if i >= numStatic {
			a := s.QueryStart + rng.Float64()*(s.QueryEnd-s.QueryStart)
			b := a + rng.Float64()*(s.QueryEnd-a)
			window := interval.Interval{L: a, R: b}
			iv = &window
		}

		o, err := obstacle.New(i, shape, radius, iv, interval.None)
		if err != nil {
			continue
		}

		obstacles = append(obstacles, o)
	}

	return obstacles
}

func dist(a, b r2.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
