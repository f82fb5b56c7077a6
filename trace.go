package xni

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/xni/internal/tracelog"
)

// WithTraceLogger returns a context that makes Parse log its progress
// to tlog. If ctx already carries a trace logger, ctx is returned as is.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return tracelog.WithLogger(ctx, tlog)
}
