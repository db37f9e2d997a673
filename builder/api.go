// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// api.go: public entry points of the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...). Apply runs the
//     same pipeline against an existing graph.
//   • Factories are implemented in impl_*.go.
//   • Determinism: same inputs, options, seed and constructor order ⇒ Equal graphs.
//   • Safety: constructors never panic; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// Constructor applies a deterministic batch of operations to g using the
// resolved builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts and applies cons in order.
// The first failing constructor aborts; its error is wrapped with "BuildGraph: ".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons against an existing graph. Operations already applied
// before a failing constructor stay in g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
