package fib

import (
	"log/slog"
	"time"

	"github.com/hackebrot/go-fibonacci"
	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/tween"
)

// Tween steps through the Fibonacci sequence from term 0 to term n over its duration,
// computing each term once as progress reaches it.
type Tween struct {
	*tween.Tween
	n        int
	strategy fibonacci.Strategy
	next     int
	// result of the highest computed term
	last     any
	onUpdate func(progress float64)
}

// NewTween creates a Fibonacci stepping tween. onUpdate may be nil and is called
// every frame once the due terms are computed.
func NewTween(id string, n int, strategy fibonacci.Strategy, duration time.Duration, clk clock.Clock, onUpdate func(progress float64)) *Tween {
	ft := &Tween{
		n:        max(n, 0),
		strategy: strategy,
		onUpdate: onUpdate,
	}
	ft.Tween = tween.New(id, duration, clk, ft.update)
	return ft
}

// update computes every term the progress has passed since the last frame.
func (t *Tween) update(progress float64) {
	target := int(progress * float64(t.n))
	for ; t.next <= target && t.next <= t.n; t.next++ {
		if t.next == 0 {
			slog.Info("starting computation", "unit_id", t.ID(), "n", t.n)
		}

		t.last = t.strategy.Compute(t.next)
		slog.Debug("computed term", "unit_id", t.ID(), "k", t.next, "result", t.last)
	}

	if t.onUpdate != nil {
		t.onUpdate(progress)
	}

	if progress >= 1 {
		slog.Info("computation complete", "unit_id", t.ID(), "n", t.n, "result", t.last)
	}
}

// Reset rewinds the tween and its sequence position.
func (t *Tween) Reset() {
	t.Tween.Reset()
	t.next = 0
	t.last = nil
}

// Terms returns how many terms have been computed.
func (t *Tween) Terms() int {
	return t.next
}
