// Package timer drives the elapsed time of a game: a recurring callback that
// ticks a clock once per interval, for the lifetime of the view that owns it.
package timer

import (
	"context"
	"time"
)

// Ticker is advanced by one unit on every beat, fbitda.Store implements it.
type Ticker interface {
	Tick()
}

// Timer calls Tick on a Ticker at a fixed interval until stopped.
type Timer struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start starts a new Timer. It runs until Stop is called or ctx is done.
//
// The owner of the Timer must call Stop when it is torn down:
//
//	t := timer.Start(ctx, store, time.Second)
//	defer t.Stop()
func Start(ctx context.Context, ticker Ticker, interval time.Duration) *Timer {
	ctx, cancel := context.WithCancel(ctx)
	t := &Timer{cancel: cancel, done: make(chan struct{})}
	go t.run(ctx, ticker, interval)
	return t
}

func (t *Timer) run(ctx context.Context, ticker Ticker, interval time.Duration) {
	defer close(t.done)
	beat := time.NewTicker(interval)
	defer beat.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-beat.C:
			// both channels may be ready, cancellation wins.
			if ctx.Err() != nil {
				return
			}
			ticker.Tick()
		}
	}
}

// Stop cancels the Timer and waits for the running callback, if any, to
// return. Once Stop returns Tick is never called again. Stop is idempotent.
func (t *Timer) Stop() {
	t.cancel()
	<-t.done
}

// Done is closed when the Timer has stopped.
func (t *Timer) Done() <-chan struct{} { return t.done }
