package clock

import "time"

// Listener receives one tick per frame from a Clock.
type Listener interface {
	// Tick is called with the clock's elapsed time for the current frame.
	Tick(elapsed time.Duration)
}

// Clock supplies elapsed time and delivers frame ticks to subscribed listeners.
type Clock interface {
	// Now returns the monotonic elapsed time of the clock.
	Now() time.Duration

	// Subscribe registers a listener for frame ticks.
	// Subscribing a listener that is already registered is a no-op.
	Subscribe(l Listener)

	// Unsubscribe removes a listener. It is safe to call from inside Tick.
	Unsubscribe(l Listener)
}

// listenerSet is an ordered set of listeners shared by the clock implementations.
type listenerSet []Listener

func (s listenerSet) add(l Listener) listenerSet {
	for _, existing := range s {
		if existing == l {
			return s
		}
	}
	return append(s, l)
}

func (s listenerSet) remove(l Listener) listenerSet {
	for i, existing := range s {
		if existing == l {
			// copy so snapshots taken before the removal stay intact
			out := make(listenerSet, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}
