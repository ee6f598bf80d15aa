// Package rng defines the uniform random primitive consumed by the sampling
// packages, plus a deterministic implementation for seeding and tests.
//
// A Source is not safe for concurrent use. Give every goroutine its own
// Source (see Split) or serialize access to a shared one.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// Source is the uniform random primitive.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntRange returns an integer in [min, max). It panics if max <= min.
	IntRange(min, max int) int
}

// PCG is a Source backed by math/rand/v2's PCG generator.
type PCG struct {
	r *rand.Rand
}

// NewPCG creates a deterministic source using the provided seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (p *PCG) Float64() float64 {
	return p.r.Float64()
}

// IntRange panics if max <= min.
func (p *PCG) IntRange(min, max int) int {
	if max <= min {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", min, max))
	}
	// The span of any valid range fits in a uint64.
	span := uint64(max) - uint64(min)
	return min + int(p.r.Uint64N(span))
}

// Split derives an independent source for the n-th worker of a run seeded
// with seed. The same (seed, n) pair always yields the same stream.
func Split(seed uint64, n int) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, uint64(n)+1))}
}

var _ Source = (*PCG)(nil)
