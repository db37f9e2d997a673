// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// impl_random_sparse.go: RandomSparse(n, p).
//
// Model: include each admissible edge independently with probability p.
//   • Undirected: unordered pairs {i,j}, i<j.
//   • Directed: ordered pairs (i,j), i≠j.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1, cfg.rng != nil (even for p ∈ {0,1}).
//   • Trial order is fixed (i asc, j asc), so a seed determines the graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor for an Erdős–Rényi-style graph G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if g.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
