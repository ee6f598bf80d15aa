package experiments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/chancekit/internal/app"
	"github.com/petuhovskiy/chancekit/internal/log"
	"github.com/petuhovskiy/chancekit/internal/rdesc"
	"github.com/petuhovskiy/chancekit/rng"
)

type ctxkey int

const (
	ctxkeyInsidePeriodic ctxkey = iota
)

type Executor struct {
	base *app.App
}

func NewExecutor(base *app.App) *Executor {
	return &Executor{base: base}
}

func (e *Executor) ParseJSON(data json.RawMessage) (*Experiment, error) {
	var desc rdesc.Experiment
	err := json.Unmarshal(data, &desc)
	if err != nil {
		return nil, err
	}

	return e.CreateFromDesc(desc)
}

// ParseList parses a JSON array of descriptors.
func (e *Executor) ParseList(data []byte) ([]*Experiment, error) {
	var descs []rdesc.Experiment
	err := json.Unmarshal(data, &descs)
	if err != nil {
		return nil, err
	}

	var list []*Experiment
	for i, desc := range descs {
		x, err := e.CreateFromDesc(desc)
		if err != nil {
			return nil, fmt.Errorf("experiment #%d (%s): %w", i, desc.DisplayName(), err)
		}
		list = append(list, x)
	}
	return list, nil
}

func (e *Executor) LoadFile(path string) ([]*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiments: %w", err)
	}
	return e.ParseList(data)
}

func (e *Executor) CreateFromDesc(desc rdesc.Experiment) (*Experiment, error) {
	if desc.Draws < 0 {
		return nil, fmt.Errorf("draws = %d: %w", desc.Draws, ErrInvalidArgs)
	}
	if desc.Draws == 0 {
		desc.Draws = DefaultDraws
	}
	if desc.Workers < 0 {
		return nil, fmt.Errorf("workers = %d: %w", desc.Workers, ErrInvalidArgs)
	}

	impl, err := loadImpl(e.base, e, desc)
	if err != nil {
		return nil, err
	}

	return newExperiment(desc, impl)
}

func (e *Executor) Execute(ctx context.Context, x *Experiment) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var insidePeriodic bool
	if val, ok := ctx.Value(ctxkeyInsidePeriodic).(bool); ok {
		insidePeriodic = val
	}

	// can't execute nested periodic experiments
	isPeriodic := x.period != nil && !insidePeriodic
	if isPeriodic {
		return e.executePeriodic(ctx, x, x.period)
	}
	return e.executeOnce(ctx, x)
}

func (e *Executor) executeOnce(ctx context.Context, x *Experiment) error {
	unlock := e.base.RunLocker.TryLock(x.Name())
	if unlock == nil {
		return fmt.Errorf("%s: %w", x.Name(), ErrAlreadyRunning)
	}
	defer unlock()

	ctx = log.Into(ctx, string(x.desc.Act))
	if x.desc.Timeout != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.desc.Timeout.Duration)
		defer cancel()
	}
	return x.impl.Execute(ctx)
}

func (e *Executor) executePeriodic(ctx context.Context, x *Experiment, period *Period) error {
	ctx = context.WithValue(ctx, ctxkeyInsidePeriodic, true)
	ctx = log.Into(ctx, "periodic")

	sleepSrc := rng.NewPCG(uint64(time.Now().UnixNano()))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := e.executeOnce(ctx, x)
		if err != nil {
			log.Error(ctx, "experiment execution failed", zap.String("experiment", x.Name()), zap.Error(err))
		}

		period.Sleep(ctx, sleepSrc)
	}
}
