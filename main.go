package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/petuhovskiy/chancekit/internal/app"
	"github.com/petuhovskiy/chancekit/internal/experiments"
	"github.com/petuhovskiy/chancekit/internal/log"
)

func main() {
	defer log.DefaultGlobals()()
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base, err := app.NewAppFromEnv()
	if err != nil {
		log.Fatal(ctx, "failed to init app", zap.Error(err))
	}
	base.StartPrometheus(ctx)

	executor := experiments.NewExecutor(base)
	list, err := executor.LoadFile(base.Config.ExperimentsFile)
	if err != nil {
		log.Fatal(ctx, "failed to load experiments", zap.Error(err))
	}
	log.Info(ctx, "loaded experiments", zap.Int("count", len(list)))

	for _, x := range list {
		base.Register.Go(func() {
			err := executor.Execute(ctx, x)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Error(ctx, "experiment failed", zap.String("experiment", x.Name()), zap.Error(err))
			}
		})
	}

	base.Register.WaitAll(ctx)
}
