// Package build provides deterministic graph constructors for fixtures,
// examples and benchmarks.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the graph, resolves the
//     configuration, runs constructors in order.
//   - Functional options resolve into an immutable config (no global state).
//   - Determinism: same options, seed and constructor order produce identical
//     graphs.
//   - Safety: constructors never panic; they return sentinel errors.
//
// Constructors:
//   - Cycle(n)          simple cycle 0-1-...-(n-1)-0, n >= 3
//   - Path(n)           simple path 0-1-...-(n-1), n >= 2
//   - Complete(n)       complete graph K_n, n >= 1
//   - Star(n)           hub 0 joined to 1..n-1, n >= 2
//   - RandomSparse(n,p) each pair kept with probability p; requires an RNG
//
// Usage:
//
//	g, err := build.Build(nil, build.Cycle(6))
//	r, err := build.Build([]build.Option{build.WithSeed(7)}, build.RandomSparse(100, 0.05))
package build
