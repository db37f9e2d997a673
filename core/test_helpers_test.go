// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for lwwgraph/core tests.
//
// Purpose:
//   - Keep label and timestamp literals out of test bodies.
//   - Provide replica builders for the merge and convergence tests.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""
	VertexBlank = "   "

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexF = "F"
	VertexG = "G"
	VertexH = "H"
	VertexJ = "J"
	VertexR = "R"
)

// op is one replayable graph mutation.
type op struct {
	kind     core.Operation
	edge     bool
	src, dst string
	ts       int64
}

// apply replays o on g and fails the test on error.
func (o op) apply(t testing.TB, g *core.Graph) {
	t.Helper()
	var err error
	switch {
	case o.edge && o.kind == core.OpCreate:
		err = g.AddEdge(o.src, o.dst, o.ts)
	case o.edge:
		err = g.RemoveEdge(o.src, o.dst, o.ts)
	case o.kind == core.OpCreate:
		err = g.AddVertex(o.src, o.ts)
	default:
		err = g.RemoveVertex(o.src, o.ts)
	}
	require.NoError(t, err)
}

// randomOps produces n mutations over a small label alphabet so that keys collide
// often and timestamps tie occasionally.
func randomOps(rng *rand.Rand, n int) []op {
	labels := []string{VertexA, VertexB, VertexC, VertexD, VertexE}
	out := make([]op, 0, n)
	for i := 0; i < n; i++ {
		o := op{
			kind: core.Operation(rng.Intn(2)),
			edge: rng.Intn(2) == 0,
			src:  labels[rng.Intn(len(labels))],
			dst:  labels[rng.Intn(len(labels))],
			ts:   int64(rng.Intn(40)),
		}
		out = append(out, o)
	}

	return out
}

// buildMergeReplicaOne builds the first replica of the reference merge scenario.
//
//	A:5:-1  B:6:-1  C:1:10  A-B:7:8  A-D:9:-1
func buildMergeReplicaOne(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 5))
	require.NoError(t, g.AddVertex(VertexB, 6))
	require.NoError(t, g.AddVertex(VertexC, 1))
	require.NoError(t, g.AddEdge(VertexA, VertexB, 7))
	require.NoError(t, g.AddEdge(VertexA, VertexD, 9))
	require.NoError(t, g.RemoveEdge(VertexA, VertexB, 8))
	require.NoError(t, g.RemoveVertex(VertexC, 10))

	return g
}

// buildMergeReplicaTwo builds the second replica of the reference merge scenario.
//
//	A:4:-1  B:5:-1  C:9:15  D:10:-1  A-B:6:11  A-D:12:-1  C-D:13:-1
func buildMergeReplicaTwo(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 4))
	require.NoError(t, g.AddVertex(VertexB, 5))
	require.NoError(t, g.AddVertex(VertexC, 9))
	require.NoError(t, g.AddVertex(VertexD, 10))
	require.NoError(t, g.AddEdge(VertexA, VertexB, 6))
	require.NoError(t, g.RemoveEdge(VertexA, VertexB, 11))
	require.NoError(t, g.AddEdge(VertexA, VertexD, 12))
	require.NoError(t, g.AddEdge(VertexC, VertexD, 13))
	require.NoError(t, g.RemoveVertex(VertexC, 15))

	return g
}

// buildMergeExpected is the field-wise join of the two replicas above.
func buildMergeExpected(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 5))
	require.NoError(t, g.AddVertex(VertexB, 6))
	require.NoError(t, g.AddVertex(VertexC, 9))
	require.NoError(t, g.RemoveVertex(VertexC, 15))
	require.NoError(t, g.AddVertex(VertexD, 10))
	require.NoError(t, g.AddEdge(VertexA, VertexB, 7))
	require.NoError(t, g.RemoveEdge(VertexA, VertexB, 11))
	require.NoError(t, g.AddEdge(VertexA, VertexD, 12))
	require.NoError(t, g.AddEdge(VertexC, VertexD, 13))

	return g
}

// buildPathGraph builds the nine-vertex undirected graph used by path tests:
//
//	A - B - C - G      H - J
//	   / \
//	  D   E - F
func buildPathGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, label := range []string{VertexA, VertexB, VertexC, VertexD, VertexE, VertexF, VertexG, VertexH, VertexJ} {
		require.NoError(t, g.AddVertex(label, int64(i+1)))
	}
	require.NoError(t, g.AddEdge(VertexA, VertexB, 10))
	require.NoError(t, g.AddEdge(VertexB, VertexC, 11))
	require.NoError(t, g.AddEdge(VertexC, VertexG, 12))
	require.NoError(t, g.AddEdge(VertexD, VertexB, 13))
	require.NoError(t, g.AddEdge(VertexE, VertexB, 14))
	require.NoError(t, g.AddEdge(VertexE, VertexF, 15))
	require.NoError(t, g.AddEdge(VertexH, VertexJ, 16))

	return g
}

// adjacent is AdjacentVertices for labels known to be valid.
func adjacent(t testing.TB, g *core.Graph, label string) []string {
	t.Helper()
	out, err := g.AdjacentVertices(label)
	require.NoError(t, err)

	return out
}

// path is FindPath for labels known to be valid.
func path(t testing.TB, g *core.Graph, src, dst string) []string {
	t.Helper()
	out, err := g.FindPath(src, dst)
	require.NoError(t, err)

	return out
}

// clockAt returns a clock frozen at ts.
func clockAt(ts int64) clock.Clock { return clock.Fixed(ts) }
