package sample

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsample/core"
)

// TestTracker_SortsCopy verifies that the tracker orders thresholds
// ascending without mutating the caller's slice.
func TestTracker_SortsCopy(t *testing.T) {
	sizes := []int{5, 1, 3}
	tr, err := newTracker(sizes)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, tr.sizes)
	assert.Equal(t, []int{5, 1, 3}, sizes, "caller's slice must stay untouched")
}

// TestTracker_Validation verifies rejection of non-positive thresholds.
func TestTracker_Validation(t *testing.T) {
	_, err := newTracker([]int{2, 0, 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadCheckpoint))

	_, err = newTracker([]int{-1})
	assert.True(t, errors.Is(err, ErrBadCheckpoint))

	tr, err := newTracker(nil)
	require.NoError(t, err)
	assert.Empty(t, tr.finalize(core.NewGraph()))
}

// TestTracker_AdvanceCrossesSeveral verifies that one growth step crossing
// several thresholds fills each slot with its own fresh snapshot.
func TestTracker_AdvanceCrossesSeveral(t *testing.T) {
	tr, err := newTracker([]int{1, 2, 2, 5})
	require.NoError(t, err)

	state := core.NewGraph()
	state.AddEdge(10, 11)

	calls := 0
	tr.advance(2, func() *core.Graph {
		calls++
		return state.Clone()
	})

	// thresholds 1, 2 and the duplicate 2 are all crossed by size 2
	assert.Equal(t, 3, calls, "one snapshot per crossed threshold")
	require.NotNil(t, tr.slots[0])
	require.NotNil(t, tr.slots[1])
	require.NotNil(t, tr.slots[2])
	assert.Nil(t, tr.slots[3])
	assert.NotSame(t, tr.slots[1], tr.slots[2], "slots never share storage")
	assert.Equal(t, 2, tr.slots[0].NodeCount())

	// size did not grow: no new captures
	tr.advance(2, func() *core.Graph { t.Fatal("unexpected snapshot"); return nil })
}

// TestTracker_FinalizeFillsUnreached verifies the finalization pass.
func TestTracker_FinalizeFillsUnreached(t *testing.T) {
	tr, err := newTracker([]int{1, 10})
	require.NoError(t, err)

	state := core.NewGraph()
	state.AddNode(7)
	tr.advance(1, state.Clone)

	final := core.NewGraph()
	final.AddEdge(7, 8)
	out := tr.finalize(final)

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].NodeCount(), "reached slot keeps its snapshot")
	assert.Equal(t, 2, out[1].NodeCount(), "unreached slot copies the final sample")
	assert.True(t, out[1].HasEdge(7, 8))

	// the fill is a copy: mutating it must not touch final
	out[1].AddNode(99)
	assert.False(t, final.HasNode(99))
}
