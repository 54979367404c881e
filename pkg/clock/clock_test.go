package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	cl := New(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	done := make(chan struct{})
	go func() {
		cl.Run(ctx, func() {
			if atomic.AddInt32(&ticks, 1) == 3 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("clock did not stop after cancel")
	}

	assert.GreaterOrEqual(t, atomic.LoadInt32(&ticks), int32(3))
}

func TestPaused(t *testing.T) {
	cl := New(time.Millisecond)
	cl.Pause()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var ticks int32
	cl.Run(ctx, func() { atomic.AddInt32(&ticks, 1) })

	assert.Zero(t, atomic.LoadInt32(&ticks))
}

func TestToggle(t *testing.T) {
	cl := New(time.Second)

	assert.False(t, cl.Paused())
	assert.True(t, cl.Toggle())
	assert.True(t, cl.Paused())
	assert.False(t, cl.Toggle())

	cl.Pause()
	assert.True(t, cl.Paused())
	cl.Resume()
	assert.False(t, cl.Paused())
}
