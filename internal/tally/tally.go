// Package tally counts experiment outcomes. A Tally is not safe for
// concurrent use: each worker fills its own and the results are merged.
package tally

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

var (
	ErrNoDraws          = errors.New("no draws recorded")
	ErrInvalidExpected  = errors.New("invalid expected weights")
	ErrUnexpectedResult = errors.New("outcome has no expected weight")
)

type Tally struct {
	counts map[string]uint64
	total  uint64
}

func New() *Tally {
	return &Tally{counts: make(map[string]uint64)}
}

func (t *Tally) Add(key string) {
	t.AddN(key, 1)
}

func (t *Tally) AddN(key string, n uint64) {
	if n == 0 {
		return
	}
	t.counts[key] += n
	t.total += n
}

func (t *Tally) Count(key string) uint64 {
	return t.counts[key]
}

func (t *Tally) Total() uint64 {
	return t.total
}

// Keys returns the observed outcomes in lexical order.
func (t *Tally) Keys() []string {
	return slices.Sorted(maps.Keys(t.counts))
}

// Merge adds all counts of o into t.
func (t *Tally) Merge(o *Tally) {
	for k, n := range o.counts {
		t.AddN(k, n)
	}
}

// Frequencies returns the share of draws per outcome.
func (t *Tally) Frequencies() map[string]float64 {
	res := make(map[string]float64, len(t.counts))
	if t.total == 0 {
		return res
	}
	for k, n := range t.counts {
		res[k] = float64(n) / float64(t.total)
	}
	return res
}

// ChiSquare returns Pearson's statistic of the observed counts against
// expected weights (not necessarily normalized) and its degrees of freedom.
// Outcomes with zero expected weight must not be observed.
func (t *Tally) ChiSquare(expected map[string]float64) (stat float64, dof int, err error) {
	if t.total == 0 {
		return 0, 0, ErrNoDraws
	}

	var sum float64
	for k, w := range expected {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, 0, fmt.Errorf("weight of %q = %v: %w", k, w, ErrInvalidExpected)
		}
		sum += w
	}
	if sum <= 0 {
		return 0, 0, ErrInvalidExpected
	}

	for k, n := range t.counts {
		if expected[k] == 0 && n > 0 {
			return 0, 0, fmt.Errorf("%q: %w", k, ErrUnexpectedResult)
		}
	}

	for k, w := range expected {
		if w == 0 {
			continue
		}
		e := float64(t.total) * w / sum
		d := float64(t.counts[k]) - e
		stat += d * d / e
		dof++
	}
	return stat, dof - 1, nil
}
