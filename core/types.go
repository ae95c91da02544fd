// This file declares the Graph struct, sentinel errors, and the NewGraph
// constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates a self-loop was attempted; Graph stores simple graphs only.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is a mutable, simple, undirected, unweighted graph over int node IDs.
//
// Storage is an adjacency set per node, so HasEdge, AddEdge and RemoveEdge
// are O(1). The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex

	// adj[u][v] exists iff the undirected edge {u,v} exists; kept symmetric.
	adj map[int]map[int]struct{}

	// edgeCount tracks undirected edges (each stored twice in adj).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}
