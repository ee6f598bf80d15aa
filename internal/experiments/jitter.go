package experiments

import (
	"encoding/json"
	"fmt"

	"github.com/petuhovskiy/chancekit/approx"
	"github.com/petuhovskiy/chancekit/chance"
	"github.com/petuhovskiy/chancekit/rng"
	"github.com/petuhovskiy/chancekit/signal"
)

type JitterArgs struct {
	// Deadzone bounds, default signal.DefaultDeadzoneMin/Max.
	DeadzoneMin *float64
	DeadzoneMax *float64
	// Gain applied after the deadzone, default 1.
	Gain *float64
	// Output range the signal is wrapped into, default [-1, 1).
	WrapMin *float64
	WrapMax *float64
	// Precision of the outcome keys, default is the node's DIGITS.
	Digits *int
}

// Jitter conditions uniform noise in [-1, 1] like a stick axis: the
// deadzone is applied, the signal is scaled and wrapped, and the result is
// bucketed by an approx.Comparer.
type Jitter struct {
	deadMin, deadMax float64
	gain             float64
	wrapMin, wrapMax float64
	cmp              approx.Comparer[float64]
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func NewJitter(cmp approx.Comparer[float64], j json.RawMessage) (*Jitter, error) {
	var args JitterArgs
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}

	if args.Digits != nil {
		var err error
		cmp, err = approx.NewComparer[float64](*args.Digits)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
	}

	jt := &Jitter{
		deadMin: orDefault(args.DeadzoneMin, signal.DefaultDeadzoneMin),
		deadMax: orDefault(args.DeadzoneMax, signal.DefaultDeadzoneMax),
		gain:    orDefault(args.Gain, 1),
		wrapMin: orDefault(args.WrapMin, -1),
		wrapMax: orDefault(args.WrapMax, 1),
		cmp:     cmp,
	}

	// Surface range errors before the first run.
	if _, err := signal.AxisDeadzone(0, jt.deadMin, jt.deadMax); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if _, err := signal.Wrap(0, jt.wrapMin, jt.wrapMax); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return jt, nil
}

// Condition applies the deadzone, gain and wrap to x.
func (j *Jitter) Condition(x float64) (float64, error) {
	y, err := signal.AxisDeadzone(x, j.deadMin, j.deadMax)
	if err != nil {
		return 0, err
	}
	return signal.Wrap(signal.Scale(y, j.gain), j.wrapMin, j.wrapMax)
}

func (j *Jitter) Draw(src rng.Source) (string, error) {
	x := chance.PositiveOrNegative(src, src.Float64())
	y, err := j.Condition(x)
	if err != nil {
		return "", err
	}
	return j.cmp.Key(y), nil
}
