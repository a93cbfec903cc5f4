package report

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/timeline"
)

// StartResult records when a unit first started in a play, relative to the timeline start.
type StartResult struct {
	UnitID    string
	Scheduled time.Duration
	Started   time.Duration
}

// Lag returns how late the unit started.
func (r StartResult) Lag() time.Duration {
	return r.Started - r.Scheduled
}

// Collector records the first start of every unit it wraps.
type Collector struct {
	clk     clock.Clock
	origin  func() time.Duration
	mu      sync.Mutex
	results []StartResult
}

// NewCollector creates a Collector. origin returns the clock reading that scheduled
// offsets are measured from, usually Timeline.StartedAt.
func NewCollector(clk clock.Clock, origin func() time.Duration) *Collector {
	return &Collector{clk: clk, origin: origin}
}

// Wrap returns u with its Start instrumented.
func (c *Collector) Wrap(u timeline.Unit) timeline.Unit {
	return &recordingUnit{Unit: u, c: c}
}

// Results returns the recorded starts in the order they happened.
func (c *Collector) Results() []StartResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.results)
}

func (c *Collector) record(u timeline.Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, StartResult{
		UnitID:    u.ID(),
		Scheduled: u.ScheduledTime(),
		Started:   c.clk.Now() - c.origin(),
	})
}

// resetter is implemented by units that can be rewound for another play.
type resetter interface {
	Reset()
}

// recordingUnit reports its first start of each play to the collector.
type recordingUnit struct {
	timeline.Unit
	c       *Collector
	started bool
}

func (u *recordingUnit) Start() {
	if !u.started {
		u.started = true
		u.c.record(u.Unit)
	}
	u.Unit.Start()
}

// Reset rewinds the wrapped unit, when it supports it, so its next start is
// recorded again.
func (u *recordingUnit) Reset() {
	if r, ok := u.Unit.(resetter); ok {
		r.Reset()
	}
	u.started = false
}

// Summary holds start lag statistics.
type Summary struct {
	Count  int
	Mean   time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration
	// P95 and P99 are only set with at least 100 samples.
	P95 time.Duration
	P99 time.Duration
}

// Summarize computes lag statistics over results.
func Summarize(results []StartResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	lags := make([]time.Duration, 0, len(results))
	for _, r := range results {
		lags = append(lags, r.Lag())
	}
	slices.Sort(lags)

	var total time.Duration
	for _, d := range lags {
		total += d
	}

	s := Summary{
		Count:  len(lags),
		Mean:   total / time.Duration(len(lags)),
		Median: lags[len(lags)/2],
		Min:    lags[0],
		Max:    lags[len(lags)-1],
	}

	// Percentiles require sufficient samples to be meaningful (1% of 100 = 1 sample)
	if len(lags) >= 100 {
		s.P95 = lags[int(float64(len(lags)-1)*0.95)]
		s.P99 = lags[int(float64(len(lags)-1)*0.99)]
	}

	return s
}

// LogResults logs every start and a lag summary.
func LogResults(results []StartResult) Summary {
	for _, r := range results {
		slog.Info(
			"unit started",
			"unit_id", r.UnitID,
			"scheduled_time", r.Scheduled,
			"lag_microseconds", r.Lag().Microseconds(),
		)
	}

	s := Summarize(results)
	if s.Count == 0 {
		return s
	}

	args := []any{
		"count", s.Count,
		"mean_microseconds", s.Mean.Microseconds(),
		"median_microseconds", s.Median.Microseconds(),
		"min_microseconds", s.Min.Microseconds(),
		"max_microseconds", s.Max.Microseconds(),
	}
	if s.Count >= 100 {
		args = append(args,
			"p95_microseconds", s.P95.Microseconds(),
			"p99_microseconds", s.P99.Microseconds(),
		)
	}

	slog.Info("start lag summary", args...)
	return s
}
