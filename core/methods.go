package core

import "sort"

// AddNode inserts node id. Adding an existing node is a no-op.
// Complexity: O(1)
func (g *Graph) AddNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)
}

// HasNode reports whether node id exists.
// Complexity: O(1)
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]
	return ok
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Adding an existing edge is a no-op; self-loops are rejected with ErrSelfLoop.
// Complexity: O(1)
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(u)
	g.ensureNode(v)
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++
	return nil
}

// RemoveEdge deletes the undirected edge {u,v}.
// Returns ErrEdgeNotFound if the edge does not exist.
// The removal is visible to every subsequent Neighbors/HasEdge call, which
// the edge-blocking walk depends on.
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--
	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]
	return ok
}

// Neighbors returns the neighbor IDs of node id in ascending order.
// Returns ErrNodeNotFound for a missing node. The sorted order makes
// seeded sampling runs reproducible.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(set))
	for nb := range set {
		out = append(out, nb)
	}
	sort.Ints(out)
	return out, nil
}

// Degree returns the number of neighbors of node id.
// Returns ErrNodeNotFound for a missing node.
// Complexity: O(1)
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	return len(set), nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Edges returns every undirected edge exactly once as a pair [u,v] with u < v,
// sorted lexicographically.
// Complexity: O(V + E log E)
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][2]int, 0, g.edgeCount)
	for u, set := range g.adj {
		for v := range set {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// ensureNode creates the adjacency bucket for id if missing.
// Caller must hold the write lock.
func (g *Graph) ensureNode(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]struct{})
	}
}
