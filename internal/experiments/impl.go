package experiments

import (
	"context"
	"fmt"

	"github.com/petuhovskiy/chancekit/internal/app"
	"github.com/petuhovskiy/chancekit/internal/rdesc"
	"github.com/petuhovskiy/chancekit/rng"
)

// One of the experiment implementations.
type Impl interface {
	Execute(ctx context.Context) error
}

// Drawer produces one outcome per call. Draw is called concurrently, each
// worker with its own source.
type Drawer interface {
	Draw(src rng.Source) (string, error)
}

// Expecter is a Drawer with a known outcome distribution. Weights need not
// be normalized. Expected returns nil when the distribution is too large to
// compute.
type Expecter interface {
	Expected() map[string]float64
}

func loadImpl(base *app.App, executor *Executor, desc rdesc.Experiment) (Impl, error) {
	if desc.Act == rdesc.ActSchedules {
		return NewSchedules(base, executor, desc.Args)
	}

	drawer, err := loadDrawer(base, desc)
	if err != nil {
		return nil, err
	}
	return NewSampling(base, desc, drawer), nil
}

func loadDrawer(base *app.App, desc rdesc.Experiment) (Drawer, error) {
	switch desc.Act {
	case rdesc.ActWeighted:
		return NewWeighted(desc.Args)
	case rdesc.ActDice:
		return NewDice(desc.Args)
	case rdesc.ActCustomDice:
		return NewCustomDice(desc.Args)
	case rdesc.ActCoin:
		return NewCoin(desc.Args)
	case rdesc.ActCard:
		return NewCard(desc.Args)
	case rdesc.ActJitter:
		return NewJitter(base.Comparer, desc.Args)
	default:
		return nil, fmt.Errorf("unknown experiment act %s: %w", desc.Act, ErrUnknownExperiment)
	}
}
