// Package rngtest provides scripted rng.Source implementations for tests.
package rngtest

import (
	"fmt"

	"github.com/petuhovskiy/chancekit/rng"
)

// Script replays fixed values. It panics when a script runs out, which
// turns an unexpected extra draw into a test failure.
type Script struct {
	Floats []float64
	Ints   []int

	FloatCalls int
	IntCalls   int
}

func (s *Script) Float64() float64 {
	if s.FloatCalls >= len(s.Floats) {
		panic(fmt.Sprintf("rngtest: unexpected Float64 call #%d", s.FloatCalls+1))
	}
	v := s.Floats[s.FloatCalls]
	s.FloatCalls++
	return v
}

// IntRange returns min plus the next scripted offset.
func (s *Script) IntRange(min, max int) int {
	if s.IntCalls >= len(s.Ints) {
		panic(fmt.Sprintf("rngtest: unexpected IntRange call #%d", s.IntCalls+1))
	}
	v := min + s.Ints[s.IntCalls]
	s.IntCalls++
	if v < min || v >= max {
		panic(fmt.Sprintf("rngtest: scripted value %d outside [%d,%d)", v, min, max))
	}
	return v
}

// Calls returns the total number of draws made.
func (s *Script) Calls() int {
	return s.FloatCalls + s.IntCalls
}

var _ rng.Source = (*Script)(nil)
