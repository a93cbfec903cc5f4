package fib

import (
	"testing"
	"time"

	"github.com/hackebrot/go-fibonacci"
	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/timeline"
)

func TestTween_ComputesEveryTermOnce(t *testing.T) {
	clk := clock.NewManual(0)
	var frames []int
	var ft *Tween
	ft = NewTween("fib10", 10, fibonacci.NewRecursive(), time.Second, clk, func(float64) {
		frames = append(frames, ft.Terms())
	})

	ft.Start()
	clk.Set(500 * time.Millisecond)
	if ft.Terms() != 6 {
		t.Fatalf("expected terms 0..5 computed at half time, got %d", ft.Terms())
	}

	clk.Set(2 * time.Second)
	if ft.Terms() != 11 {
		t.Fatalf("expected all 11 terms computed, got %d", ft.Terms())
	}
	if len(frames) != 2 || frames[0] != 6 || frames[1] != 11 {
		t.Fatalf("expected updates after terms 6 and 11, got %v", frames)
	}
	if !ft.Complete() {
		t.Fatal("expected tween complete")
	}
}

func TestTween_ResetRewinds(t *testing.T) {
	clk := clock.NewManual(0)
	ft := NewTween("fib3", 3, fibonacci.NewRecursive(), 0, clk, nil)

	ft.Start()
	clk.Advance(time.Millisecond)
	if ft.Terms() != 4 {
		t.Fatalf("expected 4 terms, got %d", ft.Terms())
	}

	ft.Reset()
	if ft.Terms() != 0 || ft.Complete() {
		t.Fatal("expected reset to rewind the sequence")
	}
}

func TestTween_IsTimelineUnit(t *testing.T) {
	var _ timeline.Unit = NewTween("fib", 1, fibonacci.NewRecursive(), time.Second, clock.NewManual(0), nil)
}
