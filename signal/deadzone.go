package signal

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Default band for analog stick axes.
const (
	DefaultDeadzoneMin = 0.125
	DefaultDeadzoneMax = 0.925
)

// AxisDeadzone suppresses noise near zero and saturates near the ends:
// 0 if |x| < min, sign(x) if |x| > max, otherwise x unchanged. Values inside
// the band are not rescaled. Requires 0 <= min <= max.
func AxisDeadzone[F constraints.Float](x, min, max F) (F, error) {
	if !(min >= 0 && min <= max) {
		return 0, fmt.Errorf("deadzone [%v, %v]: %w", min, max, ErrInvalidRange)
	}

	a := x
	if a < 0 {
		a = -a
	}
	switch {
	case a < min:
		return 0, nil
	case a > max:
		if x < 0 {
			return -1, nil
		}
		return 1, nil
	default:
		return x, nil
	}
}

// DefaultAxisDeadzone applies AxisDeadzone with the default band.
func DefaultAxisDeadzone[F constraints.Float](x F) F {
	r, _ := AxisDeadzone(x, DefaultDeadzoneMin, DefaultDeadzoneMax)
	return r
}
