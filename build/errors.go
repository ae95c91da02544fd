// Sentinel errors for the build package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX).
//   - Implementations attach context with %w wrapping; sentinels themselves
//     carry no parameters.

package build

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("build: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("build: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without an RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("build: rng is required")

// ErrConstructFailed indicates the orchestrator could not apply a
// constructor (e.g. a nil Constructor was passed).
var ErrConstructFailed = errors.New("build: construction failed")
