package timeline

import "time"

// Unit represents an independently animatable entity that a Timeline starts at its
// scheduled offset. Its own progression after Start is driven elsewhere.
type Unit interface {
	// Start begins the unit, or resumes it if it was paused.
	Start()

	// Pause holds the unit so it does not run until started.
	Pause()

	// Duration returns how long the unit runs once started.
	Duration() time.Duration

	// ScheduledTime returns the offset from the timeline start at which the unit is due.
	ScheduledTime() time.Duration

	// SetScheduledTime records the offset resolved by the timeline.
	SetScheduledTime(at time.Duration)

	// Running reports whether the unit is currently advancing.
	Running() bool

	// Complete reports whether the unit has finished.
	Complete() bool

	// Paused reports whether the unit is held.
	Paused() bool

	// ID returns an identifier for this unit (used for logging).
	ID() string
}
