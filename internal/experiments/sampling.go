package experiments

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/petuhovskiy/chancekit/internal/app"
	"github.com/petuhovskiy/chancekit/internal/bgjobs"
	"github.com/petuhovskiy/chancekit/internal/log"
	"github.com/petuhovskiy/chancekit/internal/models"
	"github.com/petuhovskiy/chancekit/internal/rdesc"
	"github.com/petuhovskiy/chancekit/internal/tally"
	"github.com/petuhovskiy/chancekit/rng"
)

// ctxCheckEvery is how many draws a worker makes between context checks.
const ctxCheckEvery = 1024

// Sampling runs a Drawer for a number of draws, spread across workers, and
// records the tally.
type Sampling struct {
	base   *app.App
	desc   rdesc.Experiment
	drawer Drawer
}

func NewSampling(base *app.App, desc rdesc.Experiment, drawer Drawer) *Sampling {
	return &Sampling{
		base:   base,
		desc:   desc,
		drawer: drawer,
	}
}

func (s *Sampling) Execute(ctx context.Context) error {
	seed := s.desc.Seed
	if seed == 0 {
		var err error
		seed, err = s.base.NextSeed()
		if err != nil {
			return err
		}
	}

	workers := s.desc.Workers
	if workers == 0 {
		workers = s.base.Config.Workers
	}

	name := s.desc.DisplayName()
	act := string(s.desc.Act)
	ctx = log.WithRun(ctx, name, seed)

	startedAt := time.Now()
	res, err := Run(ctx, s.base.Register, s.drawer, seed, s.desc.Draws, workers)
	finishedAt := time.Now()
	duration := finishedAt.Sub(startedAt)
	app.RunSeconds.WithLabelValues(name, act).Observe(duration.Seconds())

	run := &models.Run{
		Name:    name,
		Act:     act,
		Seed:    int64(seed),
		Draws:   s.desc.Draws,
		Workers: workers,
		RunResult: models.RunResult{
			StartedAt:  &startedAt,
			FinishedAt: &finishedAt,
			Duration:   &duration,
		},
	}

	if err != nil {
		app.RunFailures.WithLabelValues(name, act).Inc()
		run.IsFailed = true
		run.Error = err.Error()
		if saveErr := s.base.Saver.Save(run, nil); saveErr != nil {
			log.Error(ctx, "failed to save failed run", zap.Error(saveErr))
		}
		return err
	}

	app.DrawsTotal.WithLabelValues(name, act).Add(float64(res.Total()))
	run.Distinct = len(res.Keys())

	if expected := expectedOf(s.drawer); expected != nil {
		stat, dof, err := res.ChiSquare(expected)
		if err != nil {
			log.Warn(ctx, "chi-square is not available", zap.Error(err))
		} else {
			run.ChiSquare = &stat
			run.DOF = dof
			app.ChiSquare.WithLabelValues(name).Set(stat)
		}
	}

	err = s.base.Saver.Save(run, Outcomes(res))
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	fields := []zap.Field{
		zap.Uint64("draws", res.Total()),
		zap.Int("distinct", run.Distinct),
		zap.Int("workers", workers),
		zap.Duration("duration", duration),
	}
	if run.ChiSquare != nil {
		fields = append(fields, zap.Float64("chiSquare", *run.ChiSquare), zap.Int("dof", run.DOF))
	}
	log.Info(ctx, "experiment finished", fields...)
	return nil
}

// expectedOf returns the drawer's distribution, or nil when it has none.
func expectedOf(d Drawer) map[string]float64 {
	exp, ok := d.(Expecter)
	if !ok {
		return nil
	}
	return exp.Expected()
}

// Run makes draws using workers goroutines. Worker i draws from
// rng.Split(seed, i), so the tally depends only on the seed, the number of
// draws and the number of workers.
func Run(ctx context.Context, reg *bgjobs.Register, d Drawer, seed uint64, draws, workers int) (*tally.Tally, error) {
	workers = max(1, min(workers, draws))

	tallies := make([]*tally.Tally, workers)
	errs := make([]error, workers)
	wait := reg.Group(workers, func(i int) {
		n := draws / workers
		if i < draws%workers {
			n++
		}
		tallies[i], errs[i] = drawN(ctx, d, rng.Split(seed, i), n)
	})
	wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	res := tally.New()
	for _, t := range tallies {
		res.Merge(t)
	}
	return res, nil
}

func drawN(ctx context.Context, d Drawer, src rng.Source, n int) (*tally.Tally, error) {
	t := tally.New()
	for i := 0; i < n; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		key, err := d.Draw(src)
		if err != nil {
			return nil, fmt.Errorf("draw #%d: %w", i, err)
		}
		t.Add(key)
	}
	return t, nil
}

// Outcomes converts a tally into rows, ordered by key.
func Outcomes(t *tally.Tally) []models.Outcome {
	freq := t.Frequencies()
	var res []models.Outcome
	for _, k := range t.Keys() {
		res = append(res, models.Outcome{
			Key:       k,
			Count:     int64(t.Count(k)),
			Frequency: freq[k],
		})
	}
	return res
}
