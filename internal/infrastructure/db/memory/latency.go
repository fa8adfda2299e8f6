package memory

import (
	"context"
	"math/rand/v2"
	"time"
)

// Latency simulates a remote backend by sleeping a random duration in
// [Min, Max] before each call. The zero value adds no delay.
type Latency struct {
	Min time.Duration
	Max time.Duration
}

func (l Latency) wait(ctx context.Context) error {
	d := l.pick()
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l Latency) pick() time.Duration {
	if l.Max <= l.Min {
		return l.Min
	}
	return l.Min + rand.N(l.Max-l.Min+1)
}
