// Package sample maps a weight vector to a single randomly selected index or
// value, with probability proportional to weight.
//
// Selection walks the cumulative distribution C[i] = (W[0]+...+W[i]) / ΣW and
// returns the smallest i with r < C[i], where r is one uniform draw in [0, 1).
// The last bucket also accepts r == C[last] == 1, so rounding can never leave
// the top of the range unreachable. Interior buckets use the strict
// comparison: a draw equal to C[i] belongs to bucket i+1.
package sample

import (
	"fmt"
	"math"

	"github.com/petuhovskiy/chancekit/rng"
)

// Cumulative returns the normalized running sums of weights. The last element
// is exactly 1.
func Cumulative(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyDistribution
	}

	cdf := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight[%d] = %v: %w", i, w, ErrDegenerateDistribution)
		}
		sum += w
		cdf[i] = sum
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, ErrDegenerateDistribution
	}

	for i := range cdf {
		cdf[i] /= sum
	}
	return cdf, nil
}

// Index draws one uniform value from src and returns the selected index.
func Index(src rng.Source, weights []float64) (int, error) {
	cdf, err := Cumulative(weights)
	if err != nil {
		return 0, err
	}
	return search(cdf, src.Float64())
}

func search(cdf []float64, r float64) (int, error) {
	if !(r >= 0 && r <= 1) {
		return 0, fmt.Errorf("got %v: %w", r, ErrUniformOutOfRange)
	}

	last := len(cdf) - 1
	for i := 0; i < last; i++ {
		if r < cdf[i] {
			return i, nil
		}
	}
	// r <= cdf[last] == 1 always holds here.
	return last, nil
}

// Sample returns values[i] with probability weights[i] / Σweights.
func Sample[T any](src rng.Source, values []T, weights []float64) (T, error) {
	var zero T
	if len(values) != len(weights) {
		return zero, fmt.Errorf("%d values, %d weights: %w", len(values), len(weights), ErrLengthMismatch)
	}

	i, err := Index(src, weights)
	if err != nil {
		return zero, err
	}
	return values[i], nil
}
