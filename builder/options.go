// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so stochastic constructors are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithTimestamp sets the timestamp of every emitted operation. Panics on ts < 0.
func WithTimestamp(ts int64) BuilderOption {
	if ts < 0 {
		panic(fmt.Sprintf("builder: WithTimestamp(%d): negative timestamp", ts))
	}

	return func(c *builderConfig) { c.ts = ts }
}
