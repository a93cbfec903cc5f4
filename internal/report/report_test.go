package report

import (
	"testing"
	"time"

	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/timeline"
	"github.com/hackebrot/go-timeline/pkg/tween"
)

func TestCollector_RecordsFirstStart(t *testing.T) {
	clk := clock.NewManual(time.Second)
	tl := timeline.New(clk, nil)
	c := NewCollector(clk, tl.StartedAt)

	a := tween.New("a", 2*time.Second, clk, nil)
	b := tween.New("b", time.Second, clk, nil)
	tl.AddAt(c.Wrap(a), 0)
	tl.AddAt(c.Wrap(b), 300*time.Millisecond)

	tl.Start()
	clk.Set(1100 * time.Millisecond)
	clk.Set(1400 * time.Millisecond)

	// pause and let the timeline resume it
	a.Pause()
	clk.Set(1500 * time.Millisecond)

	results := c.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].UnitID != "a" || results[0].Lag() != 100*time.Millisecond {
		t.Errorf("unexpected result for a: %+v", results[0])
	}
	if results[1].UnitID != "b" || results[1].Lag() != 100*time.Millisecond {
		t.Errorf("unexpected result for b: %+v", results[1])
	}
	if !a.Running() {
		t.Error("expected a resumed by the timeline")
	}
}

func TestSummarize(t *testing.T) {
	results := []StartResult{
		{UnitID: "a", Scheduled: 0, Started: 30 * time.Millisecond},
		{UnitID: "b", Scheduled: time.Second, Started: time.Second + 10*time.Millisecond},
		{UnitID: "c", Scheduled: time.Second, Started: time.Second + 20*time.Millisecond},
	}

	s := Summarize(results)
	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	if s.Mean != 20*time.Millisecond {
		t.Errorf("expected mean 20ms, got %v", s.Mean)
	}
	if s.Median != 20*time.Millisecond {
		t.Errorf("expected median 20ms, got %v", s.Median)
	}
	if s.Min != 10*time.Millisecond || s.Max != 30*time.Millisecond {
		t.Errorf("expected min 10ms max 30ms, got %v %v", s.Min, s.Max)
	}
	if s.P95 != 0 || s.P99 != 0 {
		t.Error("expected no percentiles below 100 samples")
	}
}

func TestSummarize_Percentiles(t *testing.T) {
	results := make([]StartResult, 0, 100)
	for i := range 100 {
		results = append(results, StartResult{Started: time.Duration(i) * time.Millisecond})
	}

	s := LogResults(results)
	if s.P95 != 94*time.Millisecond {
		t.Errorf("expected p95 94ms, got %v", s.P95)
	}
	if s.P99 != 98*time.Millisecond {
		t.Errorf("expected p99 98ms, got %v", s.P99)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if s := LogResults(nil); s.Count != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}

func TestCollector_ResetRecordsNextPlay(t *testing.T) {
	clk := clock.NewManual(0)
	tl := timeline.New(clk, nil)
	c := NewCollector(clk, tl.StartedAt)

	tw := tween.New("a", 100*time.Millisecond, clk, nil)
	u := c.Wrap(tw)
	tl.AddAt(u, 0)

	tl.Start()
	clk.Set(10 * time.Millisecond)
	clk.Set(200 * time.Millisecond)
	clk.Set(1100 * time.Millisecond)
	if tl.Playing() {
		t.Fatal("expected first play complete")
	}

	u.(interface{ Reset() }).Reset()
	if tw.Complete() || !tw.Paused() {
		t.Fatal("expected wrapped tween rewound")
	}

	tl.Start()
	clk.Set(1120 * time.Millisecond)

	results := c.Results()
	if len(results) != 2 {
		t.Fatalf("expected a start recorded per play, got %d", len(results))
	}
	if results[1].Lag() != 20*time.Millisecond {
		t.Errorf("expected second play lag 20ms, got %v", results[1].Lag())
	}
}
