package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/petuhovskiy/chancekit/internal/log"
)

var (
	DrawsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chancekit_draws_total",
		Help: "Number of draws made by experiments",
	}, []string{"experiment", "act"})

	RunSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "chancekit_run_seconds",
		Help: "Time spent on each experiment run",
	}, []string{"experiment", "act"})

	RunFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chancekit_run_failures_total",
		Help: "Number of failed experiment runs",
	}, []string{"experiment", "act"})

	ChiSquare = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "chancekit_chi_square",
		Help: "Chi-square statistic of the last run against the expected weights",
	}, []string{"experiment"})
)

func (a *App) StartPrometheus(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: a.Config.PrometheusBind, Handler: mux}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "prometheus server error", zap.Error(err))
		}
	}()
}
