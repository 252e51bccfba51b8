package obstacle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeaware/taprm/geometry"
	"github.com/timeaware/taprm/interval"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestNewValidatesRadius(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 0, Y: 0})
	_, err := New(1, shape, -1, nil, interval.None)
	assert.ErrorIs(t, err, ErrNegativeRadius)
}

func TestNewValidatesOccurrenceFitsPeriod(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 0, Y: 0})
	iv := interval.Interval{L: 0, R: 120}
	_, err := New(1, shape, 1, &iv, interval.Minutely)
	assert.ErrorIs(t, err, ErrOccurrenceExceedsPeriod)
}

func TestIsActiveAtPermanent(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 0, Y: 0})
	o, err := New(1, shape, 1, nil, interval.None)
	require.NoError(t, err)

	assert.True(t, o.IsActiveAt(12345))
}

func TestStaticStripsIntervalAndRecurrence(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 0, Y: 0})
	iv := interval.Interval{L: 0, R: 10}
	o, err := New(1, shape, 1, &iv, interval.Hourly)
	require.NoError(t, err)

	s := o.Static()
	assert.Nil(t, s.Interval)
	assert.Equal(t, interval.None, s.Recurrence)
}

func TestActiveOccurrenceCoversQuery(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 0, Y: 0})
	iv := interval.Interval{L: 0, R: 200}
	o, err := New(1, shape, 1, &iv, interval.None)
	require.NoError(t, err)

	occ, ok := o.ActiveOccurrence(interval.Interval{L: 0, R: 200})
	require.True(t, ok)
	assert.Equal(t, iv, occ)
}

func TestActiveOccurrenceDynamicSubset(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 0, Y: 0})
	iv := interval.Interval{L: 10, R: 20}
	o, err := New(1, shape, 1, &iv, interval.None)
	require.NoError(t, err)

	occ, ok := o.ActiveOccurrence(interval.Interval{L: 0, R: 30})
	require.True(t, ok)
	assert.Equal(t, iv, occ)
}

func TestObstacleJSONRoundTripPoint(t *testing.T) {
	shape := geometry.NewPoint(r2.Vec{X: 50, Y: 50})
	iv := interval.Interval{L: 10, R: 20}
	o, err := New(7, shape, 10, &iv, interval.Minutely)
	require.NoError(t, err)

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var got Obstacle
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.Radius, got.Radius)
	assert.Equal(t, o.Recurrence, got.Recurrence)
	require.NotNil(t, got.Interval)
	assert.Equal(t, *o.Interval, *got.Interval)
	assert.Equal(t, geometry.KindPoint, got.Shape.Kind())
}

func TestObstacleJSONRoundTripPermanent(t *testing.T) {
	vertices := []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	shape, err := geometry.NewPolygon(vertices)
	require.NoError(t, err)

	o, err := New(3, shape, 0, nil, interval.None)
	require.NoError(t, err)

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var got Obstacle
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Nil(t, got.Interval)
	assert.Equal(t, geometry.KindPolygon, got.Shape.Kind())
}
