package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/petuhovskiy/chancekit/internal/rdesc"
	"github.com/petuhovskiy/chancekit/rng"
)

// DefaultDraws is used when a descriptor does not set Draws.
const DefaultDraws = 1000

// Experiment is a fully initialized experiment that can be executed via executor.
type Experiment struct {
	desc   rdesc.Experiment
	impl   Impl
	period *Period
}

func newExperiment(desc rdesc.Experiment, impl Impl) (*Experiment, error) {
	period, err := parsePeriod(desc.Periodic)
	if err != nil {
		return nil, err
	}

	return &Experiment{
		desc:   desc,
		impl:   impl,
		period: period,
	}, nil
}

func (x *Experiment) Name() string {
	return x.desc.DisplayName()
}

func (x *Experiment) Desc() rdesc.Experiment {
	return x.desc
}

type Period struct {
	min uint
	max uint
}

// Delay returns a random delay in [min, max] seconds.
func (p *Period) Delay(src rng.Source) time.Duration {
	val := src.IntRange(int(p.min), int(p.max)+1)
	return time.Duration(val) * time.Second
}

func (p *Period) Sleep(ctx context.Context, src rng.Source) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(p.Delay(src)):
	}
}

func parsePeriod(str string) (*Period, error) {
	if str == "" {
		return nil, nil
	}

	var min, max uint

	_, err := fmt.Sscanf(str, "random(%d,%d)", &min, &max)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period: %w", err)
	}

	if min > max {
		return nil, fmt.Errorf("min(%d) > max(%d)", min, max)
	}

	return &Period{
		min: min,
		max: max,
	}, nil
}
