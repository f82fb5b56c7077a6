package tracelog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/lestrrat-go/xni/internal/tracelog"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := tracelog.WithLogger(context.Background(), newLogger(&buf))

	tlog := tracelog.FromContext(ctx)
	require.NotNil(t, tlog)
	tlog.Debug("test message")

	if !tracelog.Enabled {
		require.Empty(t, buf.String())
		return
	}
	require.Contains(t, buf.String(), "test message")
	require.Contains(t, buf.String(), "TestFromContext", "caller name is attached")
}

func TestWithLoggerKeepsFirst(t *testing.T) {
	if !tracelog.Enabled {
		t.Skip("tracing disabled")
	}

	var first, second bytes.Buffer
	ctx := tracelog.WithLogger(context.Background(), newLogger(&first))
	ctx = tracelog.WithLogger(ctx, newLogger(&second))

	tracelog.Event(ctx, "hello", slog.Int("size", 1024))
	require.Contains(t, first.String(), "hello")
	require.Contains(t, first.String(), "1024")
	require.Empty(t, second.String())
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	ctx := tracelog.WithLogger(context.Background(), newLogger(&buf))

	tracelog.Error(ctx, errors.New("test error"), "error occurred", slog.String("component", "parser"))
	if !tracelog.Enabled {
		require.Empty(t, buf.String())
		return
	}
	out := buf.String()
	require.Contains(t, out, "error occurred")
	require.Contains(t, out, "test error")
	require.Contains(t, out, "ERROR")
}

func TestNullLogger(t *testing.T) {
	ctx := context.Background()
	tlog := tracelog.FromContext(ctx)
	require.NotNil(t, tlog)
	require.NotPanics(t, func() {
		tlog.Debug("this should not output anything")
		tracelog.Event(ctx, "test event")
		tracelog.Error(ctx, errors.New("test"), "test error")
	})
}
