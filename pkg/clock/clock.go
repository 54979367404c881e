package clock

import (
	"context"
	"sync"
	"time"
)

// Clock calls a function at a fixed interval. It is the gravity source of a
// game: the session itself never looks at the time.
type Clock struct {
	Interval time.Duration

	paused bool
	mu     sync.Mutex
}

func New(interval time.Duration) *Clock {
	return &Clock{Interval: interval}
}

// Run calls tick every Interval until ctx is done. Ticks are skipped while
// the clock is paused.
func (cl *Clock) Run(ctx context.Context, tick func()) {
	t := time.NewTicker(cl.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if !cl.Paused() {
				tick()
			}
		}
	}
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.paused = true
}

func (cl *Clock) Resume() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.paused = false
}

// Toggle flips the paused state and returns the new one.
func (cl *Clock) Toggle() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.paused = !cl.paused
	return cl.paused
}

func (cl *Clock) Paused() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.paused
}
