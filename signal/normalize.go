package signal

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Normalize is NormalizeAround with zero = 0.
func Normalize[F constraints.Float](x, min, max F) (F, error) {
	return NormalizeAround(x, min, max, 0)
}

// NormalizeAround maps x from [min, max] into a unit range. The form is
// chosen by comparing min with zero, never by looking at x:
//
//	min >= zero: (x - min) / (max - min)          unsigned, [0, 1]
//	min <  zero: 2 * (x - min) / (max - min) - 1  signed, [-1, 1]
//
// So NormalizeAround(5, -5, 15, 0) is 0, while NormalizeAround(5, -5, 15, -10)
// is 0.5: same x, same range, different form. min >= max is ErrInvalidRange.
func NormalizeAround[F constraints.Float](x, min, max, zero F) (F, error) {
	if !(min < max) {
		return 0, fmt.Errorf("normalize [%v, %v]: %w", min, max, ErrInvalidRange)
	}

	t := (x - min) / (max - min)
	if min >= zero {
		return t, nil
	}
	return 2*t - 1, nil
}

// Denormalize inverts Normalize.
func Denormalize[F constraints.Float](y, min, max F) (F, error) {
	return DenormalizeAround(y, min, max, 0)
}

// DenormalizeAround inverts NormalizeAround for the same min, max and zero.
func DenormalizeAround[F constraints.Float](y, min, max, zero F) (F, error) {
	if !(min < max) {
		return 0, fmt.Errorf("denormalize [%v, %v]: %w", min, max, ErrInvalidRange)
	}

	t := y
	if min < zero {
		t = (y + 1) / 2
	}
	return min + t*(max-min), nil
}
