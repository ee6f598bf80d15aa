package signal

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Wrap maps x into [min, max) with modular arithmetic:
//
//	x <  min: max - ((min - x) mod (max - min))
//	x >= max: min + ((x - min) mod (max - min))
//	else:     x
//
// A value an exact multiple of the span below min would land on max, which is
// outside the half-open range, so it maps to min instead. min >= max is
// ErrInvalidRange.
func Wrap[F constraints.Float](x, min, max F) (F, error) {
	if !(min < max) {
		return 0, fmt.Errorf("wrap [%v, %v): %w", min, max, ErrInvalidRange)
	}

	span := float64(max - min)
	var r F
	switch {
	case x < min:
		r = max - F(math.Mod(float64(min-x), span))
	case x >= max:
		r = min + F(math.Mod(float64(x-min), span))
	default:
		return x, nil
	}

	// Rounding can push the result one ulp outside the range.
	if r >= max || r < min {
		r = min
	}
	return r, nil
}

// Wrap01 wraps x into [0, 1).
func Wrap01[F constraints.Float](x F) F {
	r, _ := Wrap(x, 0, 1)
	return r
}

// WrapInt is Wrap for integers.
func WrapInt[I constraints.Integer](x, min, max I) (I, error) {
	if min >= max {
		return 0, fmt.Errorf("wrap [%v, %v): %w", min, max, ErrInvalidRange)
	}

	span := max - min
	switch {
	case x < min:
		r := max - (min-x)%span
		if r == max {
			r = min
		}
		return r, nil
	case x >= max:
		return min + (x-min)%span, nil
	default:
		return x, nil
	}
}
