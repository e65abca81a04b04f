package workout

import (
	"sync"
	"time"
)

// ticker counts elapsed whole seconds for a timer exercise. The count only
// moves forward on real ticks so a paused or stopped ticker never drifts.
type ticker struct {
	interval time.Duration
	onTick   func(elapsed int)

	mu      sync.Mutex
	elapsed int
	stopped bool

	quit chan struct{}
	done chan struct{}
}

// newTicker starts counting immediately. onTick may be nil; when set it is
// called with the new elapsed value on every tick and never after Stop has
// returned.
func newTicker(interval time.Duration, onTick func(elapsed int)) *ticker {
	t := &ticker{
		interval: interval,
		onTick:   onTick,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *ticker) run() {
	defer close(t.done)
	clock := time.NewTicker(t.interval)
	defer clock.Stop()
	for {
		select {
		case <-t.quit:
			return
		case <-clock.C:
			// The callback runs under the mutex so that Stop, which
			// takes the same mutex, strictly orders the final tick
			// before its return.
			t.mu.Lock()
			if t.stopped {
				t.mu.Unlock()
				return
			}
			t.elapsed++
			if t.onTick != nil {
				t.onTick(t.elapsed)
			}
			t.mu.Unlock()
		}
	}
}

// Elapsed returns the seconds counted so far.
func (t *ticker) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Stop halts the count and returns the final elapsed seconds. After Stop
// returns no further onTick call is made. Stop is idempotent.
func (t *ticker) Stop() int {
	t.mu.Lock()
	alreadyStopped := t.stopped
	t.stopped = true
	elapsed := t.elapsed
	t.mu.Unlock()
	if !alreadyStopped {
		close(t.quit)
	}
	<-t.done
	return elapsed
}
