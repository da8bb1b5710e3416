package tween

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultFrameRate matches a 33ms redraw cadence.
const DefaultFrameRate = 30.0

// FrameLoop is a Scheduler that runs callbacks on a fixed cadence. Callbacks
// scheduled while a frame is running are deferred to the next frame, and all
// callbacks run one after another on the goroutine calling Run.
type FrameLoop struct {
	clock    clockz.Clock
	interval time.Duration
	origin   time.Time

	mu      sync.Mutex
	next    FrameHandle
	order   []FrameHandle
	pending map[FrameHandle]FrameCallback
}

// NewFrameLoop creates a FrameLoop ticking frameRate times per second on clock.
// A nil clock uses the real clock; a non-positive rate uses DefaultFrameRate.
func NewFrameLoop(clock clockz.Clock, frameRate float64) *FrameLoop {
	if clock == nil {
		clock = clockz.RealClock
	}
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}

	l := new(FrameLoop)
	l.clock = clock
	l.interval = time.Duration(float64(time.Second) / frameRate)
	l.origin = clock.Now()
	l.pending = make(map[FrameHandle]FrameCallback)
	return l
}

// Interval returns the time between frames.
func (l *FrameLoop) Interval() time.Duration {
	return l.interval
}

// Schedule queues cb for the next frame.
func (l *FrameLoop) Schedule(cb FrameCallback) FrameHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	l.pending[l.next] = cb
	l.order = append(l.order, l.next)
	return l.next
}

// Cancel removes a queued callback. Unknown handles are ignored.
func (l *FrameLoop) Cancel(h FrameHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pending, h)
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Frame runs every callback queued before it was called, passing the
// milliseconds elapsed since the loop was created.
func (l *FrameLoop) Frame() {
	l.mu.Lock()
	order, pending := l.order, l.pending
	l.order = nil
	l.pending = make(map[FrameHandle]FrameCallback)
	l.mu.Unlock()

	timestamp := float64(l.clock.Since(l.origin)) / float64(time.Millisecond)
	for _, h := range order {
		if cb, ok := pending[h]; ok {
			cb(timestamp)
		}
	}
}

// Run drives frames until ctx is cancelled.
func (l *FrameLoop) Run(ctx context.Context) error {
	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			l.Frame()
		}
	}
}
