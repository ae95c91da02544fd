package sample

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvlsample/core"
)

// Snowball samples up to n nodes by bounded-branching BFS: starting from a
// uniformly random node, each dequeued node adopts at most k previously
// unvisited neighbors (chosen by a uniform shuffle of its neighbor list) as
// new sample nodes. Edges to neighbors already in the sample are added too,
// so the result keeps cross links the strict BFS tree would miss.
//
// k bounds breadth per node, not the total: the size cap n and queue
// exhaustion are the only hard stops, so the result can be smaller than n on
// disconnected graphs. An empty g yields an empty sample. g is never mutated.
//
// Returns ErrGraphNil, ErrBadSize, or ErrBadFanout for invalid input.
func Snowball(g *core.Graph, n, k int, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadFanout, k)
	}
	o := resolve(opts)
	return snowball(g, n, k, nil, o), nil
}

// SnowballCheckpoints runs the same expansion as Snowball up to maxN nodes
// and returns one snapshot of the growing sample per threshold in
// checkpointSizes. Results are ordered by the thresholds sorted ascending;
// the caller's slice is not mutated. Unreached thresholds receive a copy of
// the final sample, or an empty graph when the source graph is empty.
//
// Returns ErrGraphNil, ErrBadSize, ErrBadFanout, or ErrBadCheckpoint for
// invalid input.
func SnowballCheckpoints(g *core.Graph, maxN, k int, checkpointSizes []int, opts ...Option) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxN < 1 {
		return nil, fmt.Errorf("%w: maxN=%d", ErrBadSize, maxN)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadFanout, k)
	}
	tr, err := newTracker(checkpointSizes)
	if err != nil {
		return nil, err
	}
	o := resolve(opts)
	final := snowball(g, maxN, k, tr, o)
	return tr.finalize(final), nil
}

// snowball is the shared engine. tr may be nil for the single-result form.
func snowball(g *core.Graph, maxN, k int, tr *tracker, o Options) *core.Graph {
	sampled := core.NewGraph()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return sampled
	}

	visited := mapset.NewThreadUnsafeSet[int]()
	queue := make([]int, 0, maxN)

	start := nodes[o.Rand.Intn(len(nodes))]
	visited.Add(start)
	sampled.AddNode(start)
	queue = append(queue, start)
	if tr != nil {
		tr.advance(sampled.NodeCount(), sampled.Clone)
	}

	for len(queue) > 0 && sampled.NodeCount() < maxN {
		cur := queue[0]
		queue = queue[1:]

		nbrs, _ := g.Neighbors(cur)
		o.Rand.Shuffle(len(nbrs), func(i, j int) { nbrs[i], nbrs[j] = nbrs[j], nbrs[i] })

		adopted := 0
		for _, nb := range nbrs {
			if visited.Contains(nb) {
				// Cross link between already-sampled nodes; AddEdge is
				// idempotent so repeats are harmless.
				_ = sampled.AddEdge(cur, nb)
				continue
			}
			if sampled.NodeCount() >= maxN {
				break
			}
			visited.Add(nb)
			sampled.AddNode(nb)
			_ = sampled.AddEdge(cur, nb)
			queue = append(queue, nb)
			if tr != nil {
				tr.advance(sampled.NodeCount(), sampled.Clone)
			}
			adopted++
			if adopted >= k {
				break
			}
		}
	}
	return sampled
}
