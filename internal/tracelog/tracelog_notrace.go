//go:build notrace

package tracelog

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

const Enabled = false

var nullLogger = slog.New(slog.DiscardHandler)

func WithLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

func FromContext(context.Context) *slog.Logger {
	return nullLogger
}

func Event(context.Context, string, ...slog.Attr) {}

func Error(context.Context, error, string, ...slog.Attr) {}
