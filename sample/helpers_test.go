package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsample/build"
	"github.com/katalvlaran/lvlsample/core"
)

// mustBuild builds a fixture graph or fails the test.
func mustBuild(t *testing.T, opts []build.Option, cons ...build.Constructor) *core.Graph {
	t.Helper()
	g, err := build.Build(opts, cons...)
	require.NoError(t, err)
	return g
}

// assertSubgraph asserts that every node and edge of sub exists in src.
func assertSubgraph(t *testing.T, src, sub *core.Graph) {
	t.Helper()
	for _, v := range sub.Nodes() {
		assert.True(t, src.HasNode(v), "sampled node %d not in source", v)
	}
	for _, e := range sub.Edges() {
		assert.True(t, src.HasEdge(e[0], e[1]), "sampled edge %v not in source", e)
	}
}

// assertNodesSubset asserts that a's node set is a subset of b's.
func assertNodesSubset(t *testing.T, a, b *core.Graph) {
	t.Helper()
	for _, v := range a.Nodes() {
		assert.True(t, b.HasNode(v), "node %d of earlier snapshot missing from later one", v)
	}
}

// graphFingerprint captures the node and edge counts of g so tests can
// verify the engines never mutate their input.
type graphFingerprint struct {
	nodes int
	edges int
}

func fingerprint(g *core.Graph) graphFingerprint {
	return graphFingerprint{nodes: g.NodeCount(), edges: g.EdgeCount()}
}
