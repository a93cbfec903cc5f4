package timeline

import (
	"log/slog"
	"time"

	"github.com/hackebrot/go-timeline/pkg/clock"
)

// Timeline starts units at their scheduled offsets as a clock advances and reports
// completion once the last scheduled unit has started and stopped running.
//
// A Timeline is not safe for concurrent use. All calls, including the ticks a Clock
// delivers, must be serialized.
type Timeline struct {
	clock      clock.Clock
	onComplete func()
	sched      *schedule
	total      time.Duration

	playing   bool
	startedAt time.Duration

	// current is the second whose group is held in active.
	current    int
	hasCurrent bool
	active     []Unit
}

// New creates a Timeline driven by clk. onComplete may be nil.
func New(clk clock.Clock, onComplete func()) *Timeline {
	return &Timeline{
		clock:      clk,
		onComplete: onComplete,
		sched:      newSchedule(),
	}
}

// Add schedules u to start right after every unit added so far.
func (t *Timeline) Add(u Unit) {
	t.AddAt(u, t.total)
}

// AddAt schedules u to start at the given offset from the timeline start.
// The unit is paused until the timeline starts it.
func (t *Timeline) AddAt(u Unit, at time.Duration) {
	u.SetScheduledTime(at)
	u.Pause()
	t.total += u.Duration()
	t.sched.insert(u, at)

	// keep the group under evaluation in step when it grows mid-playback
	if t.hasCurrent && bucketOf(at) == t.current {
		t.active = t.sched.group(t.current)
	}

	slog.Debug("scheduled unit", "unit_id", u.ID(), "scheduled_time", at, "bucket", bucketOf(at))
}

// Start subscribes the timeline to its clock. Offsets are measured from the clock
// reading at this call. Starting a playing timeline is a no-op; starting a completed
// one replays the schedule.
func (t *Timeline) Start() {
	if t.playing {
		return
	}

	t.startedAt = t.clock.Now()
	t.hasCurrent = false
	t.active = nil
	t.playing = true

	slog.Info("starting timeline", "count_units", t.sched.len(), "duration", t.total)
	t.clock.Subscribe(t)
}

// Tick evaluates the units due in the current second and detects the end of the
// timeline. It is called by the clock once per frame.
func (t *Timeline) Tick(elapsed time.Duration) {
	if !t.playing {
		return
	}

	rel := elapsed - t.startedAt
	idx := bucketOf(rel)

	if !t.hasCurrent || idx != t.current {
		t.active = t.sched.group(idx)
	}

	for _, u := range t.active {
		if rel < u.ScheduledTime() {
			continue
		}
		if (!u.Running() && !u.Complete()) || u.Paused() {
			slog.Debug("starting unit", "unit_id", u.ID(), "scheduled_time", u.ScheduledTime(), "relative_time", rel)
			u.Start()
		}
	}

	t.current = idx
	t.hasCurrent = true

	if t.finished(rel, idx) {
		t.finish(rel)
	}
}

// finished reports whether playback has moved past the last populated second and
// the final unit of that second is due and no longer running.
func (t *Timeline) finished(rel time.Duration, idx int) bool {
	if idx < t.sched.span() {
		return false
	}

	last := t.sched.final()
	if last == nil {
		return true
	}

	return rel >= last.ScheduledTime() && !last.Running()
}

// finish detaches from the clock and runs the completion callback.
func (t *Timeline) finish(rel time.Duration) {
	t.clock.Unsubscribe(t)
	t.playing = false

	slog.Info("timeline complete", "relative_time", rel, "count_units", t.sched.len())

	if t.onComplete != nil {
		t.onComplete()
	}
}

// Playing reports whether the timeline is subscribed to its clock.
func (t *Timeline) Playing() bool {
	return t.playing
}

// Duration returns the sum of the durations of all added units.
func (t *Timeline) Duration() time.Duration {
	return t.total
}

// StartedAt returns the clock reading captured by the most recent Start.
func (t *Timeline) StartedAt() time.Duration {
	return t.startedAt
}

// Len returns the number of scheduled units.
func (t *Timeline) Len() int {
	return t.sched.len()
}

// Buckets returns the schedule grouped by whole second, in ascending order.
func (t *Timeline) Buckets() []Bucket {
	return t.sched.snapshot()
}

var _ clock.Listener = (*Timeline)(nil)
