package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeaware/taprm/environment"
	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
	"github.com/timeaware/taprm/obstacle"
	"github.com/timeaware/taprm/roadmap"
	"gonum.org/v1/gonum/spatial/r2"
)

func workspace100() geometry.Rect {
	return geometry.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
}

// TestPlanEmptyEnvironmentStraightLine: no obstacles, start/goal at
// opposite corners, expected cost close to the sqrt(20000) diagonal.
func TestPlanEmptyEnvironmentStraightLine(t *testing.T) {
	env, err := environment.Build(nil, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	g, err := roadmap.Build(env, 60, 7)
	require.NoError(t, err)

	require.NoError(t, g.ConnectStart(r2.Vec{X: 0, Y: 0}))
	require.NoError(t, g.ConnectGoal(r2.Vec{X: 100, Y: 100}))

	result, err := Plan(g, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)

	start, _ := g.Start()
	goal, _ := g.Goal()
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, goal, result.Path[len(result.Path)-1])

	cost := pathCost(t, g, result.Path, 0)
	assert.InDelta(t, math.Sqrt(20000), cost, math.Sqrt(20000)*0.2)
}

// TestPlanAlwaysBlockingStaticObstacle: a square static obstacle spans the
// midline; any returned path must detour around it rather than crossing.
// A sparse roadmap may instead fail to connect the goal or find no path.
func TestPlanAlwaysBlockingStaticObstacle(t *testing.T) {
	shape, err := geometry.NewPolygon([]r2.Vec{
		{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 70}, {X: 30, Y: 70},
	})
	require.NoError(t, err)
	o, err := obstacle.New(1, shape, 0, nil, interval.None)
	require.NoError(t, err)

	env, err := environment.Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	g, err := roadmap.Build(env, 150, 11)
	require.NoError(t, err)

	require.NoError(t, g.ConnectStart(r2.Vec{X: 0, Y: 50}))

	err = g.ConnectGoal(r2.Vec{X: 100, Y: 50})
	if err != nil {
		assert.ErrorIs(t, err, roadmap.ErrGoalUnreachable)

		return
	}

	result, planErr := Plan(g, 0)
	if planErr != nil {
		assert.ErrorIs(t, planErr, ErrNoPathInHorizon)

		return
	}

	verts := g.Vertices()
	for _, vid := range result.Path {
		p := verts[vid].P
		assert.False(t, p.X > 30 && p.X < 70 && p.Y > 30 && p.Y < 70, "path vertex inside obstacle square")
	}
}

// TestPlanStartOnBlockedVertexIsUnreachable: a start point inside a static
// disc cannot be connected to the roadmap.
func TestPlanStartOnBlockedVertexIsUnreachable(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 50, Y: 50})
	o, err := obstacle.New(1, shape, 10, nil, interval.None)
	require.NoError(t, err)

	env, err := environment.Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	g, err := roadmap.Build(env, 30, 3)
	require.NoError(t, err)

	err = g.ConnectStart(r2.Vec{X: 50, Y: 50})
	assert.ErrorIs(t, err, roadmap.ErrStartUnreachable)
}

// TestPlanMissingStartOrGoal exercises the precondition checks ahead of
// search: Plan must not run against a graph with no bound start/goal.
func TestPlanMissingStartOrGoal(t *testing.T) {
	env, err := environment.Build(nil, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	g, err := roadmap.Build(env, 20, 1)
	require.NoError(t, err)

	_, err = Plan(g, 0)
	assert.ErrorIs(t, err, ErrNoStart)

	require.NoError(t, g.ConnectStart(r2.Vec{X: 0, Y: 0}))
	_, err = Plan(g, 0)
	assert.ErrorIs(t, err, ErrNoGoal)
}

// pathCost sums edge lengths along a vertex path, the same quantity Plan's
// cost-to-come accumulates (every edge here is always-available so CostAt
// equals Length).
func pathCost(t *testing.T, g *roadmap.Graph, path []int, t0 float64) float64 {
	t.Helper()

	edges := g.Edges()
	total := 0.0
	cursor := t0
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		found := false
		for _, nb := range g.Neighbors(u) {
			if nb.Neighbor == v {
				te := edges[nb.Edge]
				cost := te.CostAt(cursor)
				require.False(t, math.IsInf(cost, 1), "edge %d->%d infeasible at t=%f", u, v, cursor)
				total += cost
				cursor += te.Length
				found = true

				break
			}
		}
		require.True(t, found, "no edge between %d and %d", u, v)
	}

	return total
}
