package tool

import (
	"context"
	"time"
)

// Event reports the start or the end of a tool invocation.
type Event struct {
	InvocationID string
	Tool         string
	Finished     bool
	Duration     time.Duration
	Err          error
}

// Observer receives invocation events.
type Observer func(ctx context.Context, event *Event)

type observerKey struct{}

// WithObserver returns a context whose tool calls report to observer.
func WithObserver(ctx context.Context, observer Observer) context.Context {
	return context.WithValue(ctx, observerKey{}, observer)
}

func observe(ctx context.Context, event *Event) {
	if observer, ok := ctx.Value(observerKey{}).(Observer); ok && observer != nil {
		snapshot := *event
		observer(ctx, &snapshot)
	}
}
