// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// impl_path.go: Path(n) and Cycle(n).
//
// Contract:
//   • Path: n ≥ 2; edges i→i+1 for i=0..n-2.
//   • Cycle: n ≥ 3; edges i→(i+1)%n for i=0..n-1.
//   • Vertices are added in ascending index order before any edge.
//
// Complexity: O(n) operations, each O(log V).

package builder

import "github.com/katalvlaran/lwwgraph/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}

		return ring(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}

		return ring(g, cfg, methodCycle, n, true)
	}
}

// ring emits a path over n vertices, closing it when closed is set.
func ring(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids, err := addVertices(g, cfg, method, n)
	if err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err = addEdge(g, cfg, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, cfg, method, ids[n-1], ids[0])
	}

	return nil
}
