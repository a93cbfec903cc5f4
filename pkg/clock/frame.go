package clock

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one frame at 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// Frame is a real-time clock that ticks its listeners at a fixed interval.
type Frame struct {
	origin    time.Time
	interval  time.Duration
	mu        sync.Mutex
	listeners listenerSet
}

// NewFrame creates a new Frame clock. Elapsed time is measured from construction.
func NewFrame(interval time.Duration) *Frame {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &Frame{
		origin:   time.Now(),
		interval: interval,
	}
}

// Now returns the time elapsed since the clock was created.
func (c *Frame) Now() time.Duration {
	return time.Since(c.origin)
}

// Subscribe adds a listener to the clock.
func (c *Frame) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = c.listeners.add(l)
}

// Unsubscribe removes a listener from the clock.
func (c *Frame) Unsubscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = c.listeners.remove(l)
}

// Listeners returns the number of subscribed listeners.
func (c *Frame) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// Run delivers ticks at the frame interval until the context is cancelled or the
// last listener unsubscribes.
func (c *Frame) Run(ctx context.Context) {
	slog.Info("starting frame clock", "interval", c.interval, "count_listeners", c.Listeners())

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if c.Listeners() == 0 {
			slog.Info("no remaining listeners, stopping frame clock")
			return
		}

		select {
		case <-ctx.Done():
			slog.Info("context cancelled, stopping frame clock")
			return
		case <-ticker.C:
			c.dispatch(c.Now())
		}
	}
}

// dispatch ticks a snapshot of the listeners so they can unsubscribe mid-frame.
func (c *Frame) dispatch(elapsed time.Duration) {
	c.mu.Lock()
	snapshot := c.listeners
	c.mu.Unlock()

	for _, l := range snapshot {
		l.Tick(elapsed)
	}
}

var _ Clock = (*Frame)(nil)
