package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	i, err := New(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, i.L)
	assert.Equal(t, 2.0, i.R)

	_, err = New(2, 1)
	assert.ErrorIs(t, err, ErrInverted)
}

func TestContainsOverlapsCovers(t *testing.T) {
	i := Interval{L: 10, R: 20}

	assert.True(t, i.Contains(10))
	assert.True(t, i.Contains(20))
	assert.False(t, i.Contains(9.999))

	assert.True(t, i.Overlaps(Interval{L: 20, R: 30}))
	assert.True(t, i.Overlaps(Interval{L: 0, R: 10}))
	assert.False(t, i.Overlaps(Interval{L: 21, R: 30}))

	assert.True(t, i.Covers(Interval{L: 12, R: 18}))
	assert.True(t, i.Covers(i))
	assert.False(t, i.Covers(Interval{L: 9, R: 18}))
}

func TestShift(t *testing.T) {
	i := Interval{L: 0, R: 10}
	s := i.Shift(5)
	assert.Equal(t, Interval{L: 5, R: 15}, s)
}

func TestLength(t *testing.T) {
	assert.Equal(t, 10.0, Interval{L: 5, R: 15}.Length())
}
