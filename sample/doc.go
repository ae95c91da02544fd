// Package sample draws representative subgraphs from a core.Graph using one
// of four sampling strategies, optionally capturing intermediate snapshots
// ("checkpoints") as the sample grows.
//
// What
//
//   - RWEB: stack-based random walk with edge blocking: every traversed edge
//     is removed from a private working copy, so the walk can never reuse it.
//   - IRWEB: the same walk discipline, non-destructive: traversed edges are
//     marked instead of removed, and every first visit to a node pulls in its
//     full closed neighborhood (local induction), including the edges among
//     the neighbors themselves.
//   - Snowball: breadth-first expansion bounded by a per-node fan-out cap k
//     and a total sample-size cap.
//   - TIES: total induced edge sampling: scan uniformly shuffled edges,
//     collect endpoints up to a node target, then materialize the induced
//     subgraph on the selected set.
//
// Checkpoints
//
//	RWEBCheckpoints, SnowballCheckpoints and TIESCheckpoints accept a list of
//	node-count thresholds and return one snapshot per threshold, ordered by
//	the thresholds sorted ascending (the caller's slice is not mutated;
//	duplicates each receive their own snapshot). A threshold the run never
//	reaches receives a copy of the final sample, or an empty graph when the
//	sample never grew. When one growth step crosses several thresholds, all
//	of them are captured from the same post-step state.
//
// Guarantees
//
//   - Engines never mutate the caller's graph; RWEB clones it before
//     removing edges, the other engines only read it.
//   - Every returned sample is a simple subgraph of the source: each node
//     and each edge exists in the source graph.
//   - Samples use the caller's node IDs unchanged.
//   - An empty source graph is not an error: the result is an empty graph
//     (or a list of empty graphs for the checkpointed forms).
//
// Determinism
//
//	Each engine threads an explicit *rand.Rand through the whole run. Because
//	core.Neighbors and core.Edges return sorted slices, a fixed seed
//	(WithSeed) reproduces a run exactly. Without options the RNG is
//	time-seeded.
//
// Complexity (V = |nodes|, E = |edges|, C = |checkpoints|)
//
//   - RWEB:     O(V + E) walk over a working clone, plus O(C · sample) copies.
//   - IRWEB:    O(Σ deg(v)²) over walked nodes v (neighborhood induction).
//   - Snowball: O(V + E) bounded BFS, plus snapshot copies.
//   - TIES:     O(E) scan + O(sample + E_kept) induced extraction per snapshot.
//
// Errors:
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrBadSize        if a size target is < 1.
//   - ErrBadFanout      if the Snowball fan-out cap is < 1.
//   - ErrBadFraction    if the TIES fraction is outside (0,1].
//   - ErrBadCheckpoint  if a checkpoint threshold is < 1.
package sample
