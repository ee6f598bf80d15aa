// Package log carries a zap logger through context.Context. A run attaches
// its experiment name and seed once and every line it logs carries them.
package log

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// DefaultGlobals installs a development logger as the global zap logger and
// returns a function restoring the previous one.
func DefaultGlobals() func() {
	logger := zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1)))
	return zap.ReplaceGlobals(logger)
}

// Sync flushes the global logger. Errors from syncing a terminal are ignored.
func Sync() {
	_ = zap.L().Sync()
}

// FromContext returns the logger stored in ctx, or the global one.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// With appends fields to the logger in ctx.
func With(ctx context.Context, fields ...zap.Field) context.Context {
	return withLogger(ctx, FromContext(ctx).With(fields...))
}

// Into names a child logger after the current scope, e.g. "periodic.dice".
func Into(ctx context.Context, name string) context.Context {
	return withLogger(ctx, FromContext(ctx).Named(name))
}

// WithRun tags the logger with the experiment and the seed of the run.
func WithRun(ctx context.Context, experiment string, seed uint64) context.Context {
	return With(ctx, zap.String("experiment", experiment), zap.Uint64("seed", seed))
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Error(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}
