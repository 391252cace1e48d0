package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type counter struct{ n atomic.Int64 }

func (c *counter) Tick() { c.n.Add(1) }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTimer_Ticks(t *testing.T) {
	var c counter
	tm := Start(context.Background(), &c, time.Millisecond)
	defer tm.Stop()

	waitFor(t, func() bool { return c.n.Load() >= 3 })
}

func TestTimer_NoTickAfterStop(t *testing.T) {
	var c counter
	tm := Start(context.Background(), &c, time.Millisecond)
	waitFor(t, func() bool { return c.n.Load() >= 1 })

	tm.Stop()
	stopped := c.n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := c.n.Load(); got != stopped {
		t.Errorf("ticks after Stop: got %d, want %d", got, stopped)
	}

	// Stop is idempotent.
	tm.Stop()
	select {
	case <-tm.Done():
	default:
		t.Error("Done() is not closed after Stop")
	}
}

func TestTimer_ContextCancel(t *testing.T) {
	var c counter
	ctx, cancel := context.WithCancel(context.Background())
	tm := Start(ctx, &c, time.Millisecond)
	cancel()

	select {
	case <-tm.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not stop when its context was cancelled")
	}
}

func TestTimer_Restart(t *testing.T) {
	// A new Timer on the same ticker keeps counting from where it was.
	var c counter
	first := Start(context.Background(), &c, time.Millisecond)
	waitFor(t, func() bool { return c.n.Load() >= 2 })
	first.Stop()
	before := c.n.Load()

	second := Start(context.Background(), &c, time.Millisecond)
	defer second.Stop()
	waitFor(t, func() bool { return c.n.Load() > before })
}
