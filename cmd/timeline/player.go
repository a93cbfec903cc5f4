package main

import (
	"log/slog"

	"github.com/hackebrot/go-fibonacci"
	"github.com/hackebrot/go-timeline/internal/config"
	"github.com/hackebrot/go-timeline/internal/fib"
	"github.com/hackebrot/go-timeline/internal/render"
	"github.com/hackebrot/go-timeline/internal/report"
	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/timeline"
	"github.com/hackebrot/go-timeline/pkg/tween"
)

// player turns script entries into units on a timeline.
type player struct {
	clk       clock.Clock
	board     *render.Board
	tl        *timeline.Timeline
	collector *report.Collector
	units     []timeline.Unit
	loops     int
	played    int
	completed bool
}

// resetter is implemented by units that can be rewound for a replay.
type resetter interface {
	Reset()
}

// newPlayer creates a player that replays the timeline loops more times after the
// first play. board may be nil to skip rendering.
func newPlayer(clk clock.Clock, board *render.Board, loops int) *player {
	p := &player{
		clk:   clk,
		board: board,
		loops: max(loops, 0),
	}
	p.tl = timeline.New(clk, p.onComplete)
	p.collector = report.NewCollector(clk, p.tl.StartedAt)
	return p
}

// onComplete rewinds every unit and restarts the timeline until the loops are
// used up.
func (p *player) onComplete() {
	p.played++
	if p.played > p.loops {
		p.completed = true
		return
	}

	slog.Info("replaying timeline", "play", p.played+1, "count_plays", p.loops+1)
	for _, u := range p.units {
		if r, ok := u.(resetter); ok {
			r.Reset()
		}
	}
	p.tl.Start()
}

// load adds every unit in script order.
func (p *player) load(units []config.ScheduledUnit) {
	for _, u := range units {
		p.add(u)
	}
}

func (p *player) add(u config.ScheduledUnit) {
	var onUpdate func(float64)
	if p.board != nil {
		onUpdate = p.board.Track(u.ID).Update
	}

	var unit timeline.Unit
	switch u.Kind {
	case config.KindFib:
		unit = fib.NewTween(u.ID, u.N, fibonacci.NewRecursive(), u.Duration, p.clk, onUpdate)
	default:
		unit = tween.New(u.ID, u.Duration, p.clk, onUpdate)
	}
	unit = p.collector.Wrap(unit)
	p.units = append(p.units, unit)

	if u.HasAt {
		p.tl.AddAt(unit, u.At)
	} else {
		p.tl.Add(unit)
	}
}
