// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// impl_star.go: Star(n) and Wheel(n).
//
// Contract:
//   • Star: n ≥ 2; hub CenterVertexID plus n-1 leaves idFn(0..n-2); spokes Center→leaf.
//   • Wheel: n ≥ 4; a Cycle over n-1 rim vertices, then Star spokes.
//   • Emission order: hub, leaves, rim edges, spokes.

package builder

import "github.com/katalvlaran/lwwgraph/core"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for a star with n vertices including the hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := addHub(g, cfg, methodStar); err != nil {
			return err
		}
		leaves, err := addVertices(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}

		return spokes(g, cfg, methodStar, leaves)
	}
}

// Wheel returns a Constructor for the wheel W_n: C_{n-1} plus a hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := addHub(g, cfg, methodWheel); err != nil {
			return err
		}
		if err := ring(g, cfg, methodWheel, n-1, true); err != nil {
			return err
		}
		rim := make([]string, n-1)
		for i := range rim {
			rim[i] = cfg.idFn(i)
		}

		return spokes(g, cfg, methodWheel, rim)
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, leaves []string) error {
	for _, leaf := range leaves {
		if err := addEdge(g, cfg, method, CenterVertexID, leaf); err != nil {
			return err
		}
	}

	return nil
}
