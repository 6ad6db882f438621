// SPDX-License-Identifier: MIT
// Package: cliquegen/sat3
//
// types.go — sentinel errors, constants, and functional options.
//
// Option policy (same as the rest of cliquegen): option constructors
// validate and panic on meaningless input; Build itself never panics and
// returns wrapped sentinels for configuration errors.

package sat3

import "errors"

// Sentinel errors for builder parameter validation.
var (
	// ErrTooFewVertices indicates a vertex target below MinVertices.
	ErrTooFewVertices = errors.New("sat3: target vertex count too small")

	// ErrBadDensity indicates a density target outside [0, 1].
	ErrBadDensity = errors.New("sat3: density target out of range")

	// ErrTooFewVariables indicates a variable count too small to host three
	// distinct clause variables.
	ErrTooFewVariables = errors.New("sat3: variable count too small")
)

const (
	methodBuild         = "Build"
	methodDeriveFormula = "DeriveFormula"

	// MaxVertices caps the vertex target; larger requests are clamped, not
	// rejected (instances beyond this size stop being clique benchmarks and
	// start being I/O benchmarks).
	MaxVertices = 500

	// MinVertices is the smallest target able to host three distinct clause
	// variables (variables = target/2 must be ≥ clauseWidth).
	MinVertices = 2 * clauseWidth

	// clauseWidth is the literal count of every derived clause.
	clauseWidth = 3

	// literalsPerVariable: each variable contributes a positive and a
	// negative literal vertex.
	literalsPerVariable = 2

	// clausesPerVariable fixes the clause/variable ratio of the instance.
	clausesPerVariable = 2

	// defaultConflictProbability is the chance an intra-clause literal pair
	// receives a soft conflict edge. Inherited from the canonical suite;
	// override through WithConflictProbability, never by editing this.
	defaultConflictProbability = 0.3
)

// buildConfig aggregates the tunable knobs of Build.
type buildConfig struct {
	conflictProbability float64
}

// Option customizes a Build call.
type Option func(*buildConfig)

// WithConflictProbability overrides the soft-conflict edge probability.
// Panics if p is outside [0, 1].
func WithConflictProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("sat3: WithConflictProbability(p) requires 0 ≤ p ≤ 1")
	}

	return func(c *buildConfig) {
		c.conflictProbability = p
	}
}

// newBuildConfig resolves defaults then applies options in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{conflictProbability: defaultConflictProbability}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
