package timeline

import (
	"cmp"
	"slices"
	"time"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Bucket is the group of units due within one whole second of the timeline.
type Bucket struct {
	Second int
	Units  []Unit
}

// schedule maps whole seconds to the units due in them, each group ordered by
// scheduled time.
type schedule struct {
	// bucket tree keyed by second, walked in ascending order
	buckets *rbt.Tree[int, []Unit]
	count   int
}

func newSchedule() *schedule {
	return &schedule{
		buckets: rbt.New[int, []Unit](),
	}
}

// bucketOf returns floor(d / 1s).
func bucketOf(d time.Duration) int {
	sec := d / time.Second
	if d%time.Second < 0 {
		sec--
	}
	return int(sec)
}

// insert places u in the bucket for at, keeping the bucket sorted by scheduled
// time with ties in insertion order.
func (s *schedule) insert(u Unit, at time.Duration) {
	idx := bucketOf(at)
	group, _ := s.buckets.Get(idx)
	group = append(group, u)
	slices.SortStableFunc(group, func(a, b Unit) int {
		return cmp.Compare(a.ScheduledTime(), b.ScheduledTime())
	})
	s.buckets.Put(idx, group)
	s.count++
}

// group returns the units due in the given second, or nil.
func (s *schedule) group(idx int) []Unit {
	group, _ := s.buckets.Get(idx)
	return group
}

// span returns one past the highest populated second, or zero when empty.
func (s *schedule) span() int {
	last := s.buckets.Right()
	if last == nil {
		return 0
	}
	return last.Key + 1
}

// final returns the latest-scheduled unit of the highest populated second, or nil
// when nothing was added.
func (s *schedule) final() Unit {
	last := s.buckets.Right()
	if last == nil || len(last.Value) == 0 {
		return nil
	}
	return last.Value[len(last.Value)-1]
}

// len returns the number of scheduled units.
func (s *schedule) len() int {
	return s.count
}

// snapshot returns the buckets in ascending order of second.
func (s *schedule) snapshot() []Bucket {
	out := make([]Bucket, 0, s.buckets.Size())
	it := s.buckets.Iterator()
	for it.Next() {
		out = append(out, Bucket{
			Second: it.Key(),
			Units:  slices.Clone(it.Value()),
		})
	}
	return out
}
