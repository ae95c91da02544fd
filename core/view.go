// Non-mutating graph views: deep clones and induced subgraphs.
// Both leave the source graph untouched and return fresh instances.

package core

// Clone returns a deep copy of the Graph: nodes, edges and adjacency.
// Mutating the clone never affects the source.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := NewGraph()
	for u, set := range g.adj {
		bucket := make(map[int]struct{}, len(set))
		for v := range set {
			bucket[v] = struct{}{}
		}
		out.adj[u] = bucket
	}
	out.edgeCount = g.edgeCount
	return out
}

// Induced returns a new Graph induced by the node set keep: the result
// contains the listed nodes that exist in g, and every edge of g whose
// endpoints are both kept. Unknown IDs in keep are ignored; duplicates are
// harmless. The input graph is not mutated.
// Complexity: O(K + E_kept) for K = len(keep).
func Induced(g *Graph, keep []int) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	kept := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		if _, ok := g.adj[id]; ok {
			kept[id] = struct{}{}
		}
	}

	out := NewGraph()
	for u := range kept {
		out.ensureNode(u)
		for v := range g.adj[u] {
			if _, ok := kept[v]; !ok {
				continue
			}
			if _, dup := out.adj[u][v]; dup {
				continue
			}
			out.ensureNode(v)
			out.adj[u][v] = struct{}{}
			out.adj[v][u] = struct{}{}
			out.edgeCount++
		}
	}
	return out
}
