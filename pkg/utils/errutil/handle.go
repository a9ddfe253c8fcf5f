package errutil

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// InitSentry enables error reporting to Sentry. An empty dsn disables it.
func InitSentry(dsn, env, release string) error {
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("env", env))
	}
	return nil
}

// FlushSentry waits for buffered events to be sent
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// Handle logs err with the logger in ctx and reports it to Sentry if enabled
func Handle(ctx context.Context, err error, attrs ...any) {
	if err == nil {
		return
	}

	args := append([]any{"error", err}, attrs...)
	ctxlog.From(ctx).Error(err.Error(), args...)

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.Clone().CaptureException(err)
	}
}
