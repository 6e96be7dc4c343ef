package sampler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntInRange_Bounds(t *testing.T) {
	s := NewSeeded(42)
	seen := make(map[int]bool)
	for range 2000 {
		v, err := s.IntInRange(3, 7)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in [3, 7] should appear")
}

func TestIntInRange_SingleValue(t *testing.T) {
	v, err := New().IntInRange(9, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestIntInRange_Inverted(t *testing.T) {
	_, err := New().IntInRange(5, 1)
	require.Error(t, err)

	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 5, rangeErr.Min)
	assert.Equal(t, 1, rangeErr.Max)
}

func TestChoice(t *testing.T) {
	s := NewSeeded(7)
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for range 300 {
		v, err := Choice(s, items)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestChoice_Empty(t *testing.T) {
	_, err := Choice(New(), []int{})
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestNewSeeded_Reproducible(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for range 50 {
		x, _ := a.IntInRange(0, 1000)
		y, _ := b.IntInRange(0, 1000)
		require.Equal(t, x, y)
	}
}

type fixedSource []int

func (f *fixedSource) IntN(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestNewFromSource(t *testing.T) {
	src := fixedSource{2, 0}
	s := NewFromSource(&src)

	v, err := s.IntInRange(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	c, err := Choice(s, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "x", c)
}
