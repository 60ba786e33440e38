// Package rng provides the random source used by the speckle and sequence
// generators.
//
// A Source is not safe for concurrent use.
// The process-wide source returned by Default is, and may be reseeded with Seed.
// Concurrent generators should each own a Source, created with New or Split.
package rng

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Second PCG word, fixed so that a single uint64 determines the stream.
const pcgStream = 0x9e3779b97f4a7c15

// Source draws uniform and normal deviates.
type Source struct {
	r *rand.Rand
}

// New returns a source whose stream is determined by seed.
func New(seed uint64) *Source {
	return &Source{rand.New(rand.NewPCG(seed, pcgStream))}
}

// Float64 returns a uniform deviate in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a uniform deviate in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Phase returns a uniform phase in [0, 2π).
func (s *Source) Phase() float64 {
	return s.Uniform(0, 2*math.Pi)
}

// Normal returns a standard normal deviate.
func (s *Source) Normal() float64 {
	return s.r.NormFloat64()
}

// Normals fills a new slice of length n with N(0, sigma^2) deviates.
func (s *Source) Normals(n int, sigma float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = sigma * s.Normal()
	}
	return x
}

// Split returns a new source seeded from s.
// The child stream is independent of the remainder of s.
func (s *Source) Split() *Source {
	return New(s.r.Uint64())
}

// Serializes access to a PCG so that one instance can be shared.
type lockedSource struct {
	mu  sync.Mutex
	pcg *rand.PCG
}

func (l *lockedSource) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pcg.Uint64()
}

func (l *lockedSource) seed(seed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pcg.Seed(seed, pcgStream)
}

var (
	global     = &lockedSource{pcg: rand.NewPCG(uint64(time.Now().UnixNano()), pcgStream)}
	globalRand = &Source{rand.New(global)}
)

// Default returns the process-wide source.
// It is safe for concurrent use, although the interleaving of draws between
// goroutines, and therefore reproducibility, is then up to the scheduler.
func Default() *Source {
	return globalRand
}

// Seed resets the process-wide source to a deterministic stream.
func Seed(seed uint64) {
	global.seed(seed)
}

// Or returns src, or the process-wide source if src is nil.
func Or(src *Source) *Source {
	if src == nil {
		return Default()
	}
	return src
}
