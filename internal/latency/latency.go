package latency

import (
	"context"
	"sync"
	"time"
)

// Sleeper blocks for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Real waits on a timer.
func Real(ctx context.Context, d time.Duration) error {
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

// None returns straight away unless ctx is already done.
func None(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Recorder collects the requested delays without waiting.
type Recorder struct {
	mu     sync.Mutex
	Delays []time.Duration
}

func (r *Recorder) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.Delays = append(r.Delays, d)
	r.mu.Unlock()
	return ctx.Err()
}
