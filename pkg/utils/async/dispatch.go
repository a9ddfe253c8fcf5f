package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/hookline/pkg/utils/errutil"
)

// Dispatch runs handler in a new goroutine. The handler receives a context
// that keeps the logger of ctx but is not cancelled with it, so that work
// started by an HTTP request outlives the response. Panics are recovered
// and errors are passed to errutil.Handle.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
			}
		}()

		if err := handler(newCtx); err != nil {
			errutil.Handle(newCtx, err)
		}
	}()
}

func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
