package sample

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for engine invocation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("sample: graph is nil")

	// ErrBadSize is returned when a node-count target is not positive.
	ErrBadSize = errors.New("sample: size target must be positive")

	// ErrBadFanout is returned when the Snowball per-node cap is not positive.
	ErrBadFanout = errors.New("sample: fan-out cap must be positive")

	// ErrBadFraction is returned when the TIES fraction is outside (0,1].
	ErrBadFraction = errors.New("sample: fraction must be in (0,1]")

	// ErrBadCheckpoint is returned when a checkpoint threshold is not positive.
	ErrBadCheckpoint = errors.New("sample: checkpoint sizes must be positive")
)

// Option configures engine behavior via functional arguments.
type Option func(*Options)

// Options holds parameters shared by all engines.
type Options struct {
	// Rand drives every stochastic choice (start node, neighbor picks,
	// shuffles). No engine touches a package-global RNG.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a time-seeded RNG.
// Use WithSeed or WithRand for reproducible runs.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand supplies an explicit RNG; a nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed freezes the run with a deterministic RNG seeded by seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// resolve folds opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
