// Package tween provides a linear-progress unit that a timeline can schedule.
//
// A Tween subscribes to its clock while running and reports its progress as a
// fraction in [0, 1] on every tick. It has no notion of easing or of what is being
// animated; callers map the fraction onto whatever they drive.
package tween

import (
	"log/slog"
	"time"

	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/timeline"
)

// Tween is a unit of animation with a fixed duration.
type Tween struct {
	id         string
	duration   time.Duration
	clock      clock.Clock
	onUpdate   func(progress float64)
	onComplete func()

	scheduled time.Duration
	// origin is the clock reading at which progress would have been zero.
	origin   time.Duration
	progress float64
	running  bool
	paused   bool
	complete bool
}

// New creates a Tween. onUpdate may be nil. Negative durations are treated as zero.
func New(id string, duration time.Duration, clk clock.Clock, onUpdate func(progress float64)) *Tween {
	return &Tween{
		id:       id,
		duration: max(duration, 0),
		clock:    clk,
		onUpdate: onUpdate,
	}
}

// OnComplete registers a callback run once when the tween finishes.
func (tw *Tween) OnComplete(fn func()) {
	tw.onComplete = fn
}

// Start begins the tween, or resumes it from its current progress when paused.
// Starting a running or completed tween does nothing.
func (tw *Tween) Start() {
	if tw.complete || (tw.running && !tw.paused) {
		return
	}

	tw.origin = tw.clock.Now() - time.Duration(tw.progress*float64(tw.duration))
	tw.running = true
	tw.paused = false

	slog.Debug("tween started", "unit_id", tw.id, "progress", tw.progress)
	tw.clock.Subscribe(tw)
}

// Pause freezes the tween at its current progress.
func (tw *Tween) Pause() {
	tw.paused = true
	if tw.running {
		tw.running = false
		tw.clock.Unsubscribe(tw)
	}
}

// Reset returns the tween to a fresh, paused state.
func (tw *Tween) Reset() {
	if tw.running {
		tw.clock.Unsubscribe(tw)
	}
	tw.progress = 0
	tw.running = false
	tw.paused = true
	tw.complete = false
}

// Tick advances the tween to the given clock reading.
func (tw *Tween) Tick(elapsed time.Duration) {
	if !tw.running {
		return
	}

	progress := 1.0
	if tw.duration > 0 {
		progress = min(max(float64(elapsed-tw.origin)/float64(tw.duration), 0), 1)
	}
	tw.progress = progress

	if tw.onUpdate != nil {
		tw.onUpdate(progress)
	}

	if progress >= 1 {
		tw.running = false
		tw.complete = true
		tw.clock.Unsubscribe(tw)

		slog.Debug("tween complete", "unit_id", tw.id)
		if tw.onComplete != nil {
			tw.onComplete()
		}
	}
}

// Progress returns the last reported fraction of the duration elapsed.
func (tw *Tween) Progress() float64 { return tw.progress }

// ID returns the tween identifier.
func (tw *Tween) ID() string { return tw.id }

// Duration returns how long the tween runs.
func (tw *Tween) Duration() time.Duration { return tw.duration }

// ScheduledTime returns the offset assigned by a timeline.
func (tw *Tween) ScheduledTime() time.Duration { return tw.scheduled }

// SetScheduledTime records the offset assigned by a timeline.
func (tw *Tween) SetScheduledTime(at time.Duration) { tw.scheduled = at }

// Running reports whether the tween is advancing.
func (tw *Tween) Running() bool { return tw.running }

// Paused reports whether the tween is held.
func (tw *Tween) Paused() bool { return tw.paused }

// Complete reports whether the tween has finished.
func (tw *Tween) Complete() bool { return tw.complete }

var (
	_ clock.Listener = (*Tween)(nil)
	_ timeline.Unit  = (*Tween)(nil)
)
