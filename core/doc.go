// Package core defines the central Graph type used by the sampling engines:
// a mutable, simple, undirected, unweighted graph keyed by integer node IDs.
//
// What
//
//   - Adjacency-set storage: map[int]map[int]struct{}, so edge insertion,
//     lookup and removal are all O(1). Removal is immediately visible to the
//     next Neighbors call, which the random-walk engines rely on.
//   - Deterministic accessors: Nodes, Neighbors and Edges return sorted
//     slices, so seeded runs over the same graph are fully reproducible.
//   - Deep Clone for private working copies, and Induced for materializing
//     the subgraph spanned by a node set.
//
// Why
//
//   - The sampling engines need a working copy they can destructively alter
//     (edge blocking) without ever touching the caller's graph.
//   - Simple-graph invariants (no self-loops, no parallel edges) are enforced
//     here once, so engines can add nodes and edges idempotently.
//
// Concurrency
//
//	All methods take an internal sync.RWMutex, so a Graph may be shared
//	across goroutines. The engines themselves are single-threaded and
//	operate on private copies; the lock exists so callers can build and
//	query graphs concurrently.
//
// Errors:
//
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrSelfLoop     - attempt to add an edge from a node to itself.
package core
