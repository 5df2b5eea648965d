// Package rng provides a seedable deterministic random source for the agent
// kernel, in place of a live entropy source: every draw here is a pure
// function of the seed and the number of prior draws, so two runs started
// from the same seed produce identical action sequences. See design doc
// Section 9 (seedable deterministic RNG) and Section 5 (tick determinism).
package rng

import (
	"math/rand/v2"
	"sync"
)

// Source is a thread-safe, seedable random source.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Source seeded deterministically from seed.
func New(seed uint64) *Source {
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a random float64 in [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// IntN returns a random int in [0, n). Panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Bool returns true with probability p, clamped to [0,1].
func (s *Source) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// Pick returns a deterministic random element of candidates and true, or the
// zero value and false if candidates is empty.
func Pick[T any](s *Source, candidates []T) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}
	return candidates[s.IntN(len(candidates))], true
}
