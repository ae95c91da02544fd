package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlsample/core"
)

// TestGraph_AddHasNode verifies node insertion and idempotence.
func TestGraph_AddHasNode(t *testing.T) {
	g := core.NewGraph()
	if g.HasNode(1) {
		t.Fatal("empty graph should not contain node 1")
	}
	g.AddNode(1)
	g.AddNode(1) // no-op
	if !g.HasNode(1) {
		t.Error("node 1 missing after AddNode")
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount = %d; want 1", got)
	}
}

// TestGraph_AddEdgeConstraints verifies endpoint auto-creation, duplicate
// edges, and self-loop rejection.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}
	if !g.HasNode(1) || !g.HasNode(2) {
		t.Error("AddEdge should auto-create endpoints")
	}
	if !g.HasEdge(1, 2) || !g.HasEdge(2, 1) {
		t.Error("edge {1,2} should exist in both directions")
	}
	// duplicate edge is a no-op
	if err := g.AddEdge(2, 1); err != nil {
		t.Errorf("duplicate AddEdge: %v", err)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
	// self-loop rejected
	if err := g.AddEdge(3, 3); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if g.HasNode(3) {
		t.Error("rejected self-loop must not create node 3")
	}
}

// TestGraph_RemoveEdge verifies O(1) removal semantics and the error path.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	if err := g.RemoveEdge(2, 1); err != nil {
		t.Fatalf("RemoveEdge(2,1): %v", err)
	}
	if g.HasEdge(1, 2) {
		t.Error("edge {1,2} should be gone")
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
	// removal must be visible to the next Neighbors call
	nbrs, err := g.Neighbors(2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(nbrs, []int{3}) {
		t.Errorf("Neighbors(2) = %v; want [3]", nbrs)
	}
	// absent edge
	if err = g.RemoveEdge(1, 2); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("missing edge: want ErrEdgeNotFound, got %v", err)
	}
}

// TestGraph_NeighborsSorted verifies the deterministic ascending order.
func TestGraph_NeighborsSorted(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []int{9, 4, 7, 1} {
		g.AddEdge(5, v)
	}
	nbrs, err := g.Neighbors(5)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 4, 7, 9}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(5) = %v; want %v", nbrs, want)
	}
	if _, err = g.Neighbors(42); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("unknown node: want ErrNodeNotFound, got %v", err)
	}
}

// TestGraph_Queries covers Nodes, Edges, Degree and the counters.
func TestGraph_Queries(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddNode(10)

	if want := []int{1, 2, 3, 10}; !reflect.DeepEqual(g.Nodes(), want) {
		t.Errorf("Nodes = %v; want %v", g.Nodes(), want)
	}
	if want := [][2]int{{1, 2}, {2, 3}}; !reflect.DeepEqual(g.Edges(), want) {
		t.Errorf("Edges = %v; want %v", g.Edges(), want)
	}
	d, err := g.Degree(2)
	if err != nil {
		t.Fatal(err)
	}
	if d != 2 {
		t.Errorf("Degree(2) = %d; want 2", d)
	}
	if d, _ = g.Degree(10); d != 0 {
		t.Errorf("Degree(10) = %d; want 0", d)
	}
	if _, err = g.Degree(99); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("unknown node: want ErrNodeNotFound, got %v", err)
	}
	if g.NodeCount() != 4 || g.EdgeCount() != 2 {
		t.Errorf("counts = (%d,%d); want (4,2)", g.NodeCount(), g.EdgeCount())
	}
}
