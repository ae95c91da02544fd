// api.go - public entry point and configuration for the build package.

package build

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlsample/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors must validate parameters early, return sentinel
// errors, and preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg config) error

// config is the immutable resolved configuration shared by constructors.
type config struct {
	// rng backs stochastic constructors; nil means "not provided".
	rng *rand.Rand
}

// Option configures graph construction via functional arguments.
type Option func(*config)

// WithSeed equips the build with a deterministic RNG seeded by seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG; a nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// Build creates a new core.Graph, resolves the configuration from opts, and
// applies all constructors in order. Any constructor error is wrapped with
// "build: %w" context and returned immediately; no partial cleanup is
// attempted.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}
	return g, nil
}
