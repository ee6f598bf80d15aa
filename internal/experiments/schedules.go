package experiments

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/chancekit/internal/app"
	"github.com/petuhovskiy/chancekit/internal/log"
	"github.com/petuhovskiy/chancekit/internal/models"
	"github.com/petuhovskiy/chancekit/internal/rdesc"
)

// ScheduleSource lists the enabled schedules, ordered by priority.
type ScheduleSource interface {
	AllEnabled() ([]models.Schedule, error)
}

// Schedules runs every enabled schedule from the database once per execution.
// The list is reloaded at most once per update interval.
type Schedules struct {
	executor       *Executor
	source         ScheduleSource
	updateInterval time.Duration

	mu          sync.Mutex
	lastUpdate  time.Time
	dbSchedules []models.Schedule
	loaded      []*Experiment
}

type SchedulesArgs struct {
	UpdateInterval *rdesc.Duration
}

func NewSchedules(a *app.App, executor *Executor, j json.RawMessage) (*Schedules, error) {
	if a.Repo == nil {
		return nil, fmt.Errorf("%w: schedules require POSTGRES_DSN", ErrInvalidArgs)
	}
	return newSchedules(executor, a.Repo.Schedule, a.Config.SchedulePoll, j)
}

func newSchedules(executor *Executor, source ScheduleSource, poll time.Duration, j json.RawMessage) (*Schedules, error) {
	var args SchedulesArgs
	if err := parseArgs(j, &args); err != nil {
		return nil, err
	}

	updateInterval := poll
	if args.UpdateInterval != nil {
		updateInterval = args.UpdateInterval.Duration
	}

	return &Schedules{
		executor:       executor,
		source:         source,
		updateInterval: updateInterval,
	}, nil
}

func (s *Schedules) fetch(ctx context.Context) ([]*Experiment, error) {
	ctx = log.Into(ctx, "fetchSchedules")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastUpdate.IsZero() && time.Since(s.lastUpdate) < s.updateInterval {
		return s.loaded, nil
	}

	dbSchedules, err := s.source.AllEnabled()
	if err != nil {
		return nil, err
	}
	ts := time.Now()

	if s.lastUpdate.IsZero() || !reflect.DeepEqual(s.dbSchedules, dbSchedules) {
		log.Info(ctx, "schedules updated, loading", zap.Int("count", len(dbSchedules)))

		var loaded []*Experiment
		for _, dbSchedule := range dbSchedules {
			log.Info(ctx, "loading schedule", zap.Uint("id", dbSchedule.ID), zap.ByteString("desc", dbSchedule.Desc))
			x, err := s.executor.ParseJSON(dbSchedule.Desc)
			if err != nil {
				log.Error(ctx, "failed to load schedule", zap.Uint("id", dbSchedule.ID), zap.Error(err))
				return nil, err
			}
			loaded = append(loaded, x)
		}
		s.dbSchedules = dbSchedules
		s.loaded = loaded
	}

	s.lastUpdate = ts
	return s.loaded, nil
}

func (s *Schedules) Execute(ctx context.Context) error {
	list, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	// Scheduled experiments run once per pass, even if periodic.
	ctx = context.WithValue(ctx, ctxkeyInsidePeriodic, true)
	for _, x := range list {
		err := s.executor.Execute(ctx, x)
		if err != nil {
			log.Error(ctx, "failed to execute schedule", zap.String("experiment", x.Name()), zap.Error(err))
		}
	}
	log.Info(ctx, "executed schedules", zap.Int("count", len(list)))
	return nil
}
