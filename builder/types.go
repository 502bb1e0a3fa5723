// Package builder declares the sentinel errors and the functional options
// shared by the stochastic constructors.
package builder

import "errors"

// Sentinel errors for builder parameter validation. Branch with errors.Is.
var (
	// ErrTooFewVertices indicates the requested vertex count is below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
)

// defaultSeed freezes RandomSparse outputs when no seed is supplied.
const defaultSeed int64 = 1

// Option configures the stochastic constructors.
type Option func(*Options)

// Options holds configurable parameters for random graph generation.
type Options struct {
	// Seed initializes the RNG; the same seed yields the same graph.
	Seed int64
}

// DefaultOptions returns Options with Seed = 1.
func DefaultOptions() Options {
	return Options{Seed: defaultSeed}
}

// WithSeed returns an Option that fixes the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
