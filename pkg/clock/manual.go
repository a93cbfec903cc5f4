package clock

import (
	"sync"
	"time"
)

// Manual is a clock whose time only moves when told to. Every Set or Advance
// delivers exactly one tick, which makes frame sequences reproducible.
type Manual struct {
	mu        sync.Mutex
	now       time.Duration
	listeners listenerSet
}

// NewManual creates a Manual clock reading start.
func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

// Now returns the current reading.
func (c *Manual) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Subscribe adds a listener to the clock.
func (c *Manual) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = c.listeners.add(l)
}

// Unsubscribe removes a listener from the clock.
func (c *Manual) Unsubscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = c.listeners.remove(l)
}

// Listeners returns the number of subscribed listeners.
func (c *Manual) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// Set moves the clock to t and ticks every listener once.
func (c *Manual) Set(t time.Duration) {
	c.mu.Lock()
	c.now = t
	snapshot := c.listeners
	c.mu.Unlock()

	for _, l := range snapshot {
		l.Tick(t)
	}
}

// Advance moves the clock forward by d and ticks every listener once.
func (c *Manual) Advance(d time.Duration) {
	c.Set(c.Now() + d)
}

var _ Clock = (*Manual)(nil)
