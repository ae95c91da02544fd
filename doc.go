// Package lvlsample draws smaller, representative subgraphs from large
// in-memory graphs and lets you watch how subgraph properties evolve
// with sample size.
//
// 🚀 What is lvlsample?
//
//	A compact, pure-Go library that brings together:
//		• Core primitives: a mutable simple undirected graph with O(1) edge removal
//		• Four sampling engines: RWEB, IRWEB, Snowball and TIES
//		• Checkpoints: intermediate snapshots at caller-chosen sample sizes
//		• Builders: deterministic fixture graphs (cycle, path, star, complete, random)
//
// ✨ Why choose lvlsample?
//
//   - Deterministic – every stochastic run accepts an explicit RNG or seed
//   - Rock-solid guarantees – engines never mutate your source graph
//   - Pure Go – no cgo, tiny dependency surface
//   - Research-friendly – checkpointed runs return one snapshot per threshold
//
// Everything is organized under three subpackages:
//
//	core/   - the Graph type and thread-safe primitives
//	build/  - deterministic graph constructors for fixtures and benchmarks
//	sample/ - the sampling engines and the checkpoint tracker
//
// Quick example:
//
//	g, _ := build.Build(nil, build.Cycle(100))
//	snaps, _ := sample.RWEBCheckpoints(g, 50, []int{10, 25, 50}, sample.WithSeed(42))
//	// snaps[0], snaps[1], snaps[2] hold the sample at 10, 25 and 50 nodes.
//
// See each subpackage's doc.go for contracts, complexity and error taxonomy.
package lvlsample
