package render

import (
	"io"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// barTotal is the resolution of a progress bar; progress fractions are scaled to it.
const barTotal = 1000

// Board renders one progress bar per timeline unit.
type Board struct {
	p    *mpb.Progress
	mu   sync.Mutex
	bars []*Bar
}

// NewBoard creates a Board drawing to w.
func NewBoard(w io.Writer) *Board {
	return &Board{
		p: mpb.New(mpb.WithWidth(64), mpb.WithOutput(w)),
	}
}

// Bar shows the progress of a single unit.
type Bar struct {
	bar *mpb.Bar
}

// Track adds a bar labelled with the unit id.
func (b *Board) Track(id string) *Bar {
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")

	bar := b.p.New(barTotal,
		barStyle,
		mpb.PrependDecorators(
			decor.Name(id, decor.WC{W: len(id) + 1, C: decor.DindentRight}),
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)

	tracked := &Bar{bar: bar}
	b.mu.Lock()
	b.bars = append(b.bars, tracked)
	b.mu.Unlock()

	return tracked
}

// Update moves the bar to the given progress fraction. A fraction of 1 completes it.
func (b *Bar) Update(progress float64) {
	b.bar.SetCurrent(int64(min(max(progress, 0), 1) * barTotal))
}

// Current returns the bar position in the range [0, 1000].
func (b *Bar) Current() int64 {
	return b.bar.Current()
}

// Wait aborts bars that never completed and waits for rendering to finish.
func (b *Board) Wait() {
	b.mu.Lock()
	for _, tracked := range b.bars {
		if !tracked.bar.Completed() {
			tracked.bar.Abort(false)
		}
	}
	b.mu.Unlock()

	b.p.Wait()
}
