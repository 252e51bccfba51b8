package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
	"github.com/timeaware/taprm/obstacle"
	"gonum.org/v1/gonum/spatial/r2"
)

func workspace100() geometry.Rect {
	return geometry.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
}

func TestBuildRejectsEmptyQuery(t *testing.T) {
	_, err := Build(nil, interval.Interval{L: 10, R: 10}, workspace100(), 10)
	assert.ErrorIs(t, err, ErrEnvConfig)
}

func TestBuildRejectsDegenerateWorkspace(t *testing.T) {
	_, err := Build(nil, interval.Interval{L: 0, R: 10}, geometry.Rect{MinX: 5, MaxX: 5, MinY: 0, MaxY: 10}, 10)
	assert.ErrorIs(t, err, ErrEnvConfig)
}

func TestClassifyPermanentObstacleIsStatic(t *testing.T) {
	shape, err := geometry.NewPolygon([]r2.Vec{
		{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 70}, {X: 30, Y: 70},
	})
	require.NoError(t, err)
	o, err := obstacle.New(1, shape, 0, nil, interval.None)
	require.NoError(t, err)

	env, err := Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	static, dynamic := env.Obstacles()
	assert.Len(t, static, 1)
	assert.Len(t, dynamic, 0)
}

func TestClassifyOccurrenceCoveringQueryIsStatic(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 50, Y: 50})
	iv := interval.Interval{L: 0, R: 200}
	o, err := obstacle.New(1, shape, 5, &iv, interval.None)
	require.NoError(t, err)

	env, err := Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	static, dynamic := env.Obstacles()
	assert.Len(t, static, 1)
	assert.Len(t, dynamic, 0)
}

func TestClassifyPartialOccurrenceIsDynamic(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 50, Y: 50})
	iv := interval.Interval{L: 10, R: 20}
	o, err := obstacle.New(1, shape, 10, &iv, interval.Minutely)
	require.NoError(t, err)

	env, err := Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	static, dynamic := env.Obstacles()
	assert.Len(t, static, 0)
	assert.Len(t, dynamic, 1)
}

func TestClassifyDiscardsOutsideWorkspace(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 500, Y: 500})
	o, err := obstacle.New(1, shape, 1, nil, interval.None)
	require.NoError(t, err)

	env, err := Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	static, dynamic := env.Obstacles()
	assert.Len(t, static, 0)
	assert.Len(t, dynamic, 0)
}

func TestStaticCollisionFree(t *testing.T) {
	shape, err := geometry.NewPolygon([]r2.Vec{
		{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 70}, {X: 30, Y: 70},
	})
	require.NoError(t, err)
	o, err := obstacle.New(1, shape, 0, nil, interval.None)
	require.NoError(t, err)

	env, err := Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	assert.False(t, env.StaticCollisionFree(r2.Vec{X: 50, Y: 50}, false))
	assert.True(t, env.StaticCollisionFree(r2.Vec{X: 0, Y: 0}, false))
}

func TestStaticCollisionFreeSegmentCrossingBlockingSquare(t *testing.T) {
	shape, err := geometry.NewPolygon([]r2.Vec{
		{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 70}, {X: 30, Y: 70},
	})
	require.NoError(t, err)
	o, err := obstacle.New(1, shape, 0, nil, interval.None)
	require.NoError(t, err)

	env, err := Build([]obstacle.Obstacle{o}, interval.Interval{L: 0, R: 200}, workspace100(), 10)
	require.NoError(t, err)

	seg, err := geometry.NewSegment(r2.Vec{X: 0, Y: 50}, r2.Vec{X: 100, Y: 50})
	require.NoError(t, err)

	free, _ := env.StaticCollisionFreeSegment(seg)
	assert.False(t, free)
}

// TestFreeIntervalsPeriodicGate: a point obstacle at (50,50) radius 10,
// active [10,20] repeating minutely over Q=[0,200], with a segment grazing
// the obstacle's disc. The free intervals are the gaps between the four
// occurrences that land inside Q.
func TestFreeIntervalsPeriodicGate(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 50, Y: 50})
	iv := interval.Interval{L: 10, R: 20}
	o, err := obstacle.New(1, shape, 10, &iv, interval.Minutely)
	require.NoError(t, err)

	q := interval.Interval{L: 0, R: 200}
	env, err := Build([]obstacle.Obstacle{o}, q, workspace100(), 10)
	require.NoError(t, err)

	seg, err := geometry.NewSegment(r2.Vec{X: 0, Y: 50}, r2.Vec{X: 100, Y: 50})
	require.NoError(t, err)

	_, cells := env.StaticCollisionFreeSegment(seg)
	always, blocked, free := env.FreeIntervalsSegment(seg, cells)

	assert.False(t, always)
	assert.False(t, blocked)
	require.Len(t, free, 4)
	assert.Equal(t, interval.Interval{L: 0, R: 10}, free[0])
	assert.Equal(t, interval.Interval{L: 20, R: 70}, free[1])
	assert.Equal(t, interval.Interval{L: 80, R: 130}, free[2])
	assert.Equal(t, interval.Interval{L: 140, R: 190}, free[3])
}

func TestFreeIntervalsNoDynamicObstacles(t *testing.T) {
	q := interval.Interval{L: 0, R: 200}
	env, err := Build(nil, q, workspace100(), 10)
	require.NoError(t, err)

	seg, err := geometry.NewSegment(r2.Vec{X: 0, Y: 50}, r2.Vec{X: 100, Y: 50})
	require.NoError(t, err)

	_, cells := env.StaticCollisionFreeSegment(seg)
	always, blocked, free := env.FreeIntervalsSegment(seg, cells)

	assert.True(t, always)
	assert.False(t, blocked)
	assert.Equal(t, []interval.Interval{q}, free)
}
