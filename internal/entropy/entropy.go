// Package entropy provides the process-wide deterministic random source.
// Every stochastic operation in the kernel — weather draws, income
// jitter, hire-selection ties, demand-shock choice, capital addition —
// routes through a single seeded generator so that two runs with the
// same seed and the same command sequence produce identical state.
package entropy

import (
	"math/rand"
	"sync"
)

// Source is a process-wide singleton wrapping a seeded PRNG. It is safe
// for concurrent use, though the kernel itself is single-threaded
// (spec.md §5) and never actually contends on the lock.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Source seeded with the given value. Two Sources created
// with the same seed and drawn from in the same order produce identical
// sequences.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a random float64 in [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Uniform returns a random float64 in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Intn returns a random int in [0, n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Bool returns true with the given probability (0 <= p <= 1).
func (s *Source) Bool(p float64) bool {
	return s.Float64() < p
}
