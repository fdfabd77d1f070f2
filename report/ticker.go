package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ticker invokes a callback at a fixed minimum interval while in scope,
// and stops on Close or on context cancellation. Each Ticker carries a
// UUID so log lines from concurrently running tickers (e.g. one per
// engine inside a race.Race) can be correlated.
type Ticker struct {
	id       uuid.UUID
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

// ID returns the Ticker's correlation identifier.
func (t *Ticker) ID() uuid.UUID { return t.id }

// NewTicker starts a background goroutine that calls fn every interval
// (best-effort: calls are skipped, never queued, if fn is still running
// when the next tick arrives) until ctx is done or Close is called.
func NewTicker(ctx context.Context, interval time.Duration, fn func()) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		id:       uuid.New(),
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go t.loop(ctx, fn)
	return t
}

func (t *Ticker) loop(ctx context.Context, fn func()) {
	defer close(t.done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

// Close stops the Ticker and waits for its goroutine to exit. Close is
// idempotent.
func (t *Ticker) Close() {
	t.once.Do(func() {
		t.cancel()
		<-t.done
	})
}
