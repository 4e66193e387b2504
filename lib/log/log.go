// Package log carries a slog.Logger in a context.Context.
//
// The geometry engine never logs. Rendering, rasterizing and the command
// line log through the logger found in their context.
package log

import (
	"context"
	stdlog "log"
	"os"
	"runtime/debug"
	"testing"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"cdr.dev/slog/sloggers/slogtest"

	"oss.terrastruct.com/prstgeom/lib/env"
)

var _default = slog.Make(sloghuman.Sink(os.Stderr)).Named("default")

type loggerKey struct{}

func from(ctx context.Context) slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(slog.Logger)
	if !ok {
		_default.Warn(ctx, "no slog.Logger in context, see lib/log.With", slog.F("stack", string(debug.Stack())))
		return _default
	}
	return l
}

func With(ctx context.Context, l slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithFields attaches fields to every later entry logged through ctx.
func WithFields(ctx context.Context, fields ...slog.Field) context.Context {
	return With(ctx, from(ctx).With(fields...))
}

// WithTB logs through t. DEBUG enables debug entries.
func WithTB(ctx context.Context, t testing.TB, opts *slogtest.Options) context.Context {
	return With(ctx, debugLevel(slogtest.Make(t, opts)))
}

// Stderr logs human readable entries to stderr and routes the standard
// library logger there too. DEBUG enables debug entries.
func Stderr(ctx context.Context) context.Context {
	l := debugLevel(slog.Make(sloghuman.Sink(os.Stderr)))
	stdlog.SetOutput(slog.Stdlib(ctx, l, slog.LevelInfo).Writer())
	return With(ctx, l)
}

func debugLevel(l slog.Logger) slog.Logger {
	if env.Debug() {
		return l.Leveled(slog.LevelDebug)
	}
	return l
}

func Leveled(ctx context.Context, level slog.Level) context.Context {
	return With(ctx, from(ctx).Leveled(level))
}

func Debug(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Error(ctx, msg, fields...)
}
