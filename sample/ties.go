package sample

import (
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvlsample/core"
)

// TIES performs total induced edge sampling targeting a fraction p of n
// nodes (target = max(1, ⌊p·n⌋)): it scans the source edges in a uniformly
// shuffled order, collecting endpoints into a selected set until the target
// is met or edges run out, then returns the induced subgraph on the selected
// set: every source edge with both endpoints selected.
//
// Nodes with no incident edges are never selected, so the result can stay
// below the target on sparse graphs. An empty g yields an empty sample. g is
// never mutated.
//
// Returns ErrGraphNil, ErrBadSize, or ErrBadFraction for invalid input.
func TIES(g *core.Graph, n int, p float64, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	if p <= 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%g", ErrBadFraction, p)
	}
	target := int(math.Floor(p * float64(n)))
	if target < 1 {
		target = 1
	}
	o := resolve(opts)
	return ties(g, target, nil, o), nil
}

// TIESCheckpoints scans shuffled edges collecting endpoints up to maxN nodes
// and, each time a threshold in checkpointSizes is crossed, materializes the
// induced subgraph on the selected set at that exact moment; nodes selected
// by later edges never appear in earlier snapshots. Results are ordered by
// the thresholds sorted ascending; the caller's slice is not mutated.
// Unreached thresholds receive a copy of the final induced sample, or an
// empty graph when no node was ever selected.
//
// Returns ErrGraphNil, ErrBadSize, or ErrBadCheckpoint for invalid input.
func TIESCheckpoints(g *core.Graph, maxN int, checkpointSizes []int, opts ...Option) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxN < 1 {
		return nil, fmt.Errorf("%w: maxN=%d", ErrBadSize, maxN)
	}
	tr, err := newTracker(checkpointSizes)
	if err != nil {
		return nil, err
	}
	o := resolve(opts)
	final := ties(g, maxN, tr, o)
	return tr.finalize(final), nil
}

// ties is the shared engine. tr may be nil for the single-result form.
func ties(g *core.Graph, target int, tr *tracker, o Options) *core.Graph {
	selected := mapset.NewThreadUnsafeSet[int]()

	edges := g.Edges()
	o.Rand.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	// Snapshots are induced materializations of the selection as it stands,
	// not copies of a growing sample graph.
	snapshot := func() *core.Graph { return core.Induced(g, selected.ToSlice()) }

	for _, e := range edges {
		if selected.Cardinality() >= target {
			break
		}
		before := selected.Cardinality()

		selected.Add(e[0])
		// The second endpoint is admitted only if room remains after the first.
		if selected.Cardinality() < target {
			selected.Add(e[1])
		}

		if selected.Cardinality() == before {
			continue
		}
		if tr != nil {
			tr.advance(selected.Cardinality(), snapshot)
		}
	}
	return core.Induced(g, selected.ToSlice())
}
