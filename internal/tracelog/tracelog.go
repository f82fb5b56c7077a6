//go:build !notrace

// Package tracelog carries a *slog.Logger used for parse tracing in
// a context.Context.
package tracelog

import (
	"context"
	"log/slog"
	"runtime"
)

// Enabled is false when built with -tags notrace.
const Enabled = true

type loggerKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// WithLogger returns a context carrying tlog. A context that already
// has a trace logger is returned as is.
func WithLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	if _, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, tlog)
}

// FromContext returns the trace logger in ctx, annotated with the
// name of the calling function. Without one, a logger that discards
// everything is returned.
func FromContext(ctx context.Context) *slog.Logger {
	tlog, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || tlog == nil {
		return nullLogger
	}

	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			tlog = tlog.With(slog.String("fn", fn.Name()))
		}
	}
	return tlog
}

// Event logs msg at debug level.
func Event(ctx context.Context, msg string, attrs ...slog.Attr) {
	tlog, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || tlog == nil {
		return
	}
	tlog.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Error logs err at error level.
func Error(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	tlog, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || tlog == nil {
		return
	}
	tlog.LogAttrs(ctx, slog.LevelError, msg, append(attrs, slog.String("error", err.Error()))...)
}
