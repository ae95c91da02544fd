package sample

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvlsample/core"
)

// IRWEB samples by an induced random walk with edge blocking. The walk
// follows the same stack discipline as RWEB but is non-destructive: instead
// of removing traversed edges it marks them in a walked-edge set, and a
// marked edge is excluded from future moves out of either endpoint. Every
// time the walk reaches a node for the first time, local induction adds that
// node's full closed neighborhood to the sample: the node, all its
// neighbors, and every source edge among them (neighbor-to-neighbor edges
// included).
//
// n counts distinct nodes visited by the walk itself; induced neighbors do
// not count toward n, so the returned sample is generally larger than n.
// Moving to an already-visited node is permitted, consumes the walked edge,
// and does not trigger induction again. The walk terminates when n nodes
// have been visited or the stack empties with no unwalked edges left on the
// path. An empty g yields an empty sample. g is never mutated.
//
// Returns ErrGraphNil or ErrBadSize for invalid input.
func IRWEB(g *core.Graph, n int, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	o := resolve(opts)

	sampled := core.NewGraph()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return sampled, nil
	}

	cur := nodes[o.Rand.Intn(len(nodes))]
	stack := []int{cur}

	// visited counts walk progress toward n; walked records consumed edges
	// in both orientations so a single lookup suffices.
	visited := mapset.NewThreadUnsafeSet[int]()
	walked := mapset.NewThreadUnsafeSet[[2]int]()

	visited.Add(cur)
	induceNeighborhood(g, cur, sampled)

	for visited.Cardinality() < n && len(stack) > 0 {
		nbrs, _ := g.Neighbors(cur)
		avail := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			if !walked.Contains([2]int{cur, nb}) {
				avail = append(avail, nb)
			}
		}

		if len(avail) == 0 {
			// No unwalked edge out of cur: backtrack along the path.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				cur = stack[len(stack)-1]
			}
			continue
		}

		next := avail[o.Rand.Intn(len(avail))]
		walked.Add([2]int{cur, next})
		walked.Add([2]int{next, cur})

		if visited.Contains(next) {
			// Revisit: move without counting or re-inducing.
			cur = next
			continue
		}

		visited.Add(next)
		stack = append(stack, next)
		cur = next
		induceNeighborhood(g, cur, sampled)
	}
	return sampled, nil
}

// induceNeighborhood adds node, its neighbors, and every source edge among
// that closed neighborhood to sampled: the induced subgraph on
// {node} ∪ neighbors(node), not just the star around node.
func induceNeighborhood(g *core.Graph, node int, sampled *core.Graph) {
	sampled.AddNode(node)
	nbrs, _ := g.Neighbors(node)
	for _, nb := range nbrs {
		_ = sampled.AddEdge(node, nb)
	}
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				_ = sampled.AddEdge(nbrs[i], nbrs[j])
			}
		}
	}
}
