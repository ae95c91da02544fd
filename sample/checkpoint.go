package sample

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlsample/core"
)

// tracker captures one snapshot per checkpoint threshold as the sample's
// node count grows. Thresholds are held sorted ascending; duplicates each
// occupy their own result slot. It must be consulted immediately after every
// event that can increase the progress counter, so that several thresholds
// crossed by a single step all observe the same post-step state.
type tracker struct {
	sizes []int         // sorted ascending copy of the caller's thresholds
	slots []*core.Graph // one result per threshold; nil until captured
	cur   int           // index of the next unreached threshold
}

// newTracker validates the thresholds and returns a tracker over a sorted
// copy (the caller's slice is left untouched).
// Returns ErrBadCheckpoint for any non-positive threshold.
func newTracker(checkpointSizes []int) (*tracker, error) {
	sizes := make([]int, len(checkpointSizes))
	for i, s := range checkpointSizes {
		if s < 1 {
			return nil, fmt.Errorf("%w: sizes[%d]=%d", ErrBadCheckpoint, i, s)
		}
		sizes[i] = s
	}
	sort.Ints(sizes)
	return &tracker{
		sizes: sizes,
		slots: make([]*core.Graph, len(sizes)),
	}, nil
}

// advance captures a snapshot for every threshold newly crossed by size.
// snapshot must return a fresh graph each call; slots never share storage.
func (t *tracker) advance(size int, snapshot func() *core.Graph) {
	for t.cur < len(t.sizes) && size >= t.sizes[t.cur] {
		t.slots[t.cur] = snapshot()
		t.cur++
	}
}

// finalize fills every unreached slot with a copy of the final sample (an
// empty graph when the sample never grew) and returns the slots ordered by
// the sorted thresholds.
func (t *tracker) finalize(final *core.Graph) []*core.Graph {
	for i := range t.slots {
		if t.slots[i] == nil {
			t.slots[i] = final.Clone()
		}
	}
	return t.slots
}
