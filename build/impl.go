// impl.go - constructor implementations.
//
// Every constructor emits nodes in ascending index order and edges in a
// stable order, so graphs are identical across runs for equal inputs.

package build

import (
	"fmt"

	"github.com/katalvlaran/lvlsample/core"
)

const (
	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
)

// Cycle returns a Constructor that builds the n-node simple cycle C_n:
// edges i-(i+1) for i < n-1 plus the closing edge (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(i, (i+1)%n); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
			}
		}
		return nil
	}
}

// Path returns a Constructor that builds the n-node simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(i, i+1); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}
		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(i)
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
		return nil
	}
}

// Star returns a Constructor that builds the n-node star S_n with hub 0.
func Star(n int) Constructor {
	return func(g *core.Graph, _ config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(0, i); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", i, err)
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor that builds an n-node graph where each
// of the n(n-1)/2 candidate edges is kept independently with probability p.
// All n nodes are present even when isolated. Requires an RNG via WithSeed
// or WithRand (ErrNeedRandSource otherwise).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			g.AddNode(i)
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err := g.AddEdge(i, j); err != nil {
						return fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
					}
				}
			}
		}
		return nil
	}
}
