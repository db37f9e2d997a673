// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (stochastic constructors fail with ErrNeedRandSource)
//   • ts   = defaultTimestamp

package builder

import "math/rand"

// defaultTimestamp stamps every emitted operation unless WithTimestamp is set.
const defaultTimestamp int64 = 1

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Timestamp of every emitted AddVertex/AddEdge.
	ts int64
}

// newBuilderConfig starts from the defaults and applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		ts:   defaultTimestamp,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
