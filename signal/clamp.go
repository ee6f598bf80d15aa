package signal

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns min if x < min, max if x > max, otherwise x.
func Clamp[T cmp.Ordered](x, min, max T) (T, error) {
	if min > max {
		var zero T
		return zero, fmt.Errorf("clamp [%v, %v]: %w", min, max, ErrInvalidRange)
	}
	switch {
	case x < min:
		return min, nil
	case x > max:
		return max, nil
	default:
		return x, nil
	}
}

// Clamp01 clamps x to [0, 1].
func Clamp01[T Number](x T) T {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
