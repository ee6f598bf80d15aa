package signal

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Decay moves x toward target by rate*dt without crossing it. If x is
// already within rate*dt of target the result is exactly target.
// Negative rate or dt is ErrInvalidArgument.
func Decay[F constraints.Float](x, rate, target, dt F) (F, error) {
	if !(rate >= 0 && dt >= 0) {
		return 0, fmt.Errorf("decay rate=%v dt=%v: %w", rate, dt, ErrInvalidArgument)
	}

	step := rate * dt
	switch {
	case x > target:
		return max(x-step, target), nil
	case x < target:
		return min(x+step, target), nil
	default:
		return x, nil
	}
}

// DecayToZero is Decay with target 0.
func DecayToZero[F constraints.Float](x, rate, dt F) (F, error) {
	return Decay(x, rate, 0, dt)
}
