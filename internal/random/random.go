package random

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrInvalidRange = errors.New("invalid range")

const upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Source is the single pseudo-random stream shared by a generation run.
// It is not safe for concurrent use.
type Source struct {
	rand *rand.Rand
	seed int64
}

// New returns a Source seeded with seed. A zero seed picks one from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (s *Source) Seed() int64 {
	return s.seed
}

func (s *Source) Intn(n int) int {
	return s.rand.Intn(n)
}

// IntBetween returns a value in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rand.Intn(hi-lo+1)
}

func (s *Source) Int64Between(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rand.Int63n(hi-lo+1)
}

func (s *Source) Float64() float64 {
	return s.rand.Float64()
}

// Pick returns a uniform index into a collection of length n.
func (s *Source) Pick(n int) int {
	return s.rand.Intn(n)
}

// Sample returns k distinct indices from [0, n) in random order.
func (s *Source) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rand.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func (s *Source) Shuffle(idx []int) {
	s.rand.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
}

// Permutation returns a random ordering of 1..n.
func (s *Source) Permutation(n int) []int {
	out := make([]int, n)
	for i, v := range s.rand.Perm(n) {
		out[i] = v + 1
	}
	return out
}

// Weighted picks an index with probability proportional to its weight.
func (s *Source) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return s.rand.Intn(len(weights))
	}
	r := s.rand.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

func (s *Source) Letters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = upperLetters[s.rand.Intn(len(upperLetters))]
	}
	return string(b)
}

// Date returns a calendar date drawn uniformly from [start, end], both ends included.
func (s *Source) Date(start, end time.Time) (time.Time, error) {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return time.Time{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.rand.Intn(days+1)), nil
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
