package sample

import (
	"fmt"

	"github.com/katalvlaran/lvlsample/core"
)

// RWEB samples up to n nodes by a random walk with edge blocking: the walk
// runs on a private clone of g, removes every edge it traverses, and
// backtracks along its stack when the current node has no remaining edges.
// The sample accumulates every traversed node and edge.
//
// The walk terminates when the sample holds n nodes or the stack empties
// (the start component is exhausted under removal), so the result can be
// smaller than n on sparse or disconnected graphs. An empty g yields an
// empty sample. g itself is never mutated.
//
// Returns ErrGraphNil or ErrBadSize for invalid input.
func RWEB(g *core.Graph, n int, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	o := resolve(opts)
	return rweb(g, n, nil, o), nil
}

// RWEBCheckpoints runs the same walk as RWEB up to maxN nodes and returns one
// snapshot of the growing sample per threshold in checkpointSizes. Results
// are ordered by the thresholds sorted ascending; the caller's slice is not
// mutated. Unreached thresholds receive a copy of the final sample, or an
// empty graph when the source graph is empty.
//
// Returns ErrGraphNil, ErrBadSize, or ErrBadCheckpoint for invalid input.
func RWEBCheckpoints(g *core.Graph, maxN int, checkpointSizes []int, opts ...Option) ([]*core.Graph, error) {
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
	final := rweb(g, maxN, tr, o)
	return tr.finalize(final), nil
}

// rweb is the shared engine. tr may be nil for the single-result form.
func rweb(g *core.Graph, maxN int, tr *tracker, o Options) *core.Graph {
	sampled := core.NewGraph()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return sampled
	}

	// Work on a private copy: traversed edges are removed from it.
	work := g.Clone()

	start := nodes[o.Rand.Intn(len(nodes))]
	stack := []int{start}
	sampled.AddNode(start)
	if tr != nil {
		tr.advance(sampled.NodeCount(), sampled.Clone)
	}

	for sampled.NodeCount() < maxN && len(stack) > 0 {
		cur := stack[len(stack)-1]

		// The working graph shrinks as edges are blocked, so this list
		// reflects only moves the walk has not consumed yet.
		nbrs, _ := work.Neighbors(cur)
		if len(nbrs) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		next := nbrs[o.Rand.Intn(len(nbrs))]

		// Edge blocking: the defining step. Removing the edge makes it
		// unavailable from either endpoint for the rest of the walk.
		_ = work.RemoveEdge(cur, next)

		grew := !sampled.HasNode(next)
		sampled.AddNode(next)
		_ = sampled.AddEdge(cur, next)
		stack = append(stack, next)

		if grew && tr != nil {
			tr.advance(sampled.NodeCount(), sampled.Clone)
		}
	}
	return sampled
}
