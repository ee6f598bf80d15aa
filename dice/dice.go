// Package dice implements dice-rolling primitives on top of an injected
// uniform source.
//
// # Independence
//
// Every roll draws from the source; nothing is cached between calls, so a
// repeated-roll sum is the sum of independent draws.
//
// # Determinism
//
// Given the same rng.Source state, an Engine produces the same sequence of
// results. Seed the source (rng.NewPCG) to replay rolls.
package dice

import (
	"fmt"

	"github.com/petuhovskiy/chancekit/rng"
	"github.com/petuhovskiy/chancekit/sample"
)

// Common die sizes.
const (
	D4   = 4
	D6   = 6
	D8   = 8
	D10  = 10
	D12  = 12
	D20  = 20
	D48  = 48
	D100 = 100
)

// Engine rolls dice. It is as safe for concurrent use as its source, which
// usually means not at all.
type Engine struct {
	src rng.Source
}

// New returns an Engine drawing from src.
func New(src rng.Source) *Engine {
	return &Engine{src: src}
}

// Roll returns an integer uniformly distributed in [1, sides].
func (e *Engine) Roll(sides int) (int, error) {
	if sides < 1 {
		return 0, fmt.Errorf("sides = %d: %w", sides, ErrInvalidArgument)
	}
	return 1 + e.src.IntRange(0, sides), nil
}

// RollN returns the sum of count independent rolls of a die with the given
// number of sides. A count of zero returns 0 without drawing.
func (e *Engine) RollN(sides, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("count = %d: %w", count, ErrInvalidArgument)
	}
	if sides < 1 {
		return 0, fmt.Errorf("sides = %d: %w", sides, ErrInvalidArgument)
	}

	total := 0
	for i := 0; i < count; i++ {
		total += 1 + e.src.IntRange(0, sides)
	}
	return total, nil
}

// RollCustom returns a uniformly chosen face.
func RollCustom[T any](e *Engine, faces []T) (T, error) {
	var zero T
	if len(faces) == 0 {
		return zero, ErrEmptyFaces
	}
	return faces[e.src.IntRange(0, len(faces))], nil
}

// RollCustomSum rolls a numeric custom die count times and sums the faces.
func RollCustomSum[N Number](e *Engine, faces []N, count int) (N, error) {
	var total N
	if count < 0 {
		return total, fmt.Errorf("count = %d: %w", count, ErrInvalidArgument)
	}
	if len(faces) == 0 {
		return total, ErrEmptyFaces
	}

	for i := 0; i < count; i++ {
		total += faces[e.src.IntRange(0, len(faces))]
	}
	return total, nil
}

// RollWeighted returns values[i] with probability weights[i] / Σweights.
// It fails with the sample package errors.
func RollWeighted[T any](e *Engine, values []T, weights []float64) (T, error) {
	return sample.Sample(e.src, values, weights)
}
