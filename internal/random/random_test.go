package random

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(11), New(11)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
	assert.Equal(t, a.Letters(8), b.Letters(8))
	assert.Equal(t, int64(11), a.Seed())
}

func TestZeroSeedIsReplaced(t *testing.T) {
	assert.NotZero(t, New(0).Seed())
}

func TestIntBetween(t *testing.T) {
	s := New(5)
	for i := 0; i < 200; i++ {
		v := s.IntBetween(3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
	}
	assert.Equal(t, 4, s.IntBetween(4, 4))
	assert.Equal(t, int64(9), s.Int64Between(9, 2))
}

func TestSample(t *testing.T) {
	s := New(2)

	picked := s.Sample(10, 4)
	require.Len(t, picked, 4)
	seen := make(map[int]bool)
	for _, v := range picked {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
		assert.False(t, seen[v], "index %d drawn twice", v)
		seen[v] = true
	}

	assert.Len(t, s.Sample(3, 7), 3)
	assert.Empty(t, s.Sample(3, 0))
}

func TestPermutation(t *testing.T) {
	perm := New(4).Permutation(6)
	sort.Ints(perm)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, perm)
}

func TestWeighted(t *testing.T) {
	s := New(8)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, s.Weighted([]float64{0, 5, 0}))
	}
	v := s.Weighted([]float64{0, 0})
	assert.True(t, v == 0 || v == 1)
}

func TestLetters(t *testing.T) {
	assert.Regexp(t, `^[A-Z]{5}$`, New(1).Letters(5))
}

func TestDate(t *testing.T) {
	s := New(3)
	start := time.Date(2020, time.January, 30, 18, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.February, 2, 1, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d, err := s.Date(start, end)
		require.NoError(t, err)
		assert.Equal(t, Day(d), d)
		assert.False(t, d.Before(Day(start)))
		assert.False(t, d.After(Day(end)))
	}

	same, err := s.Date(end, end)
	require.NoError(t, err)
	assert.Equal(t, Day(end), same)

	_, err = s.Date(end, start)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
