package notify

import (
	"context"
	"time"
)

// Sink receives order events.
type Sink interface {
	Publish(ctx context.Context, ev Event)
}

// Fanout publishes every event to each sink in order, stamping it once so
// all sinks see the same time.
type Fanout []Sink

func (f Fanout) Publish(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	for _, s := range f {
		if s != nil {
			s.Publish(ctx, ev)
		}
	}
}
