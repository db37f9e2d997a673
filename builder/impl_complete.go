// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// impl_complete.go: Complete(n).
//
// Contract:
//   • n ≥ 1.
//   • Undirected: one AddEdge per unordered pair i<j (core adds the mirror).
//   • Directed: both i→j and j→i for every pair, no self-loops.
//
// Complexity: O(n²) operations.

package builder

import "github.com/katalvlaran/lwwgraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err = addEdge(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
