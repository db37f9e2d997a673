// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// helpers.go: shared emission helpers. All operations use cfg.ts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// CenterVertexID is the hub label used by Star and Wheel.
const CenterVertexID = "Center"

// addVertices adds n vertices labelled cfg.idFn(0..n-1) and returns the labels.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i], cfg.ts); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addHub adds CenterVertexID.
func addHub(g *core.Graph, cfg builderConfig, method string) error {
	if err := g.AddVertex(CenterVertexID, cfg.ts); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, CenterVertexID, err)
	}

	return nil
}

// addEdge emits u→v (mirrored by core in undirected graphs).
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := g.AddEdge(u, v, cfg.ts); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, name string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
}
