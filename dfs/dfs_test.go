package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/dfs"
)

// edge is a (from, to) pair for fixture builders.
type edge struct{ U, V string }

// build creates a graph whose vertices are created at ts=1 and edges at ts=2,
// so every edge is valid.
func build(t testing.TB, directed bool, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e.U, 1))
		require.NoError(t, g.AddVertex(e.V, 1))
		require.NoError(t, g.AddEdge(e.U, e.V, 2))
	}

	return g
}

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges := make([]edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, edge{"N" + strconv.Itoa(i), "N" + strconv.Itoa(i+1)})
	}

	return build(t, true, edges...)
}

// buildBinaryTree creates a complete directed binary tree T-1…T-(2^depth-1).
func buildBinaryTree(t testing.TB, depth int) *core.Graph {
	t.Helper()
	var edges []edge
	for i := 2; i < 1<<depth; i++ {
		edges = append(edges, edge{fmt.Sprintf("T-%d", i/2), fmt.Sprintf("T-%d", i)})
	}

	return build(t, true, edges...)
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	// removed vertices are not valid starts either
	require.NoError(t, g.AddVertex("X", 1))
	require.NoError(t, g.RemoveVertex("X", 2))
	_, err = dfs.DFS(g, "X")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_SelfLoop(t *testing.T) {
	g := build(t, true, edge{"A", "A"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := build(t, true, edge{"A", "B"}, edge{"B", "C"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, 2, res.Depth["C"])
}

// TestDFS_ValidTopologyOnly: removed and stale edges are not followed.
func TestDFS_ValidTopologyOnly(t *testing.T) {
	g := build(t, true, edge{"A", "B"}, edge{"B", "C"}, edge{"A", "D"})
	require.NoError(t, g.RemoveEdge("A", "D", 3))
	require.NoError(t, g.RemoveVertex("C", 3))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)

	// re-created C does not bring back the older B→C edge
	require.NoError(t, g.AddVertex("C", 4))
	res, err = dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.False(t, res.Visited["C"])
}

func TestDFS_UndirectedMirror(t *testing.T) {
	g := build(t, false, edge{"A", "B"}, edge{"B", "C"})

	res, err := dfs.DFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, "B", res.Parent["A"])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := build(t, true, edge{"A", "B"}, edge{"B", "C"})

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, res.Visited["B"])

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	_, hasParent := res.Parent["C"]
	assert.False(t, hasParent)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := build(t, true, edge{"A", "B"}, edge{"A", "C"})

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(label string) bool {
		return label != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, true, edge{"A", "B"}, edge{"C", "D"})
	require.NoError(t, g.AddVertex("E", 1))
	require.NoError(t, g.RemoveVertex("F", 1))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D", "C", "E"}, res.Order)
	assert.False(t, res.Visited["F"])
}

func TestDFS_OnExitError(t *testing.T) {
	g := build(t, true, edge{"A", "B"})

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(label string) error {
		if label == "B" {
			return errors.New("halt at B on exit")
		}

		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for \"B\"")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_OnVisitOnExitHooks(t *testing.T) {
	g := buildBinaryTree(t, 3)
	var pre, post []string

	res, err := dfs.DFS(g, "T-1",
		dfs.WithOnVisit(func(label string) error {
			pre = append(pre, label)
			if label == "T-4" {
				return errors.New("stop at T-4")
			}

			return nil
		}),
		dfs.WithOnExit(func(label string) error {
			post = append(post, label)

			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit hook for \"T-4\"")
	assert.Equal(t, []string{"T-1", "T-2", "T-4"}, pre)
	assert.Empty(t, post)
	assert.Empty(t, res.Order)
}

func TestDFS_CancellationImmediate(t *testing.T) {
	g := buildChain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no nodes should finish when canceled immediately")
}

func TestDFS_LargeChain_PostOrderDepthParent(t *testing.T) {
	const n = 10
	g := buildChain(t, n)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)

	expected := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		expected[n-1-i] = "N" + strconv.Itoa(i)
	}
	assert.Equal(t, expected, res.Order)
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
	assert.Equal(t, "N"+strconv.Itoa(n-2), res.Parent["N"+strconv.Itoa(n-1)])
}

func TestDFS_BinaryTree_Visited(t *testing.T) {
	const depth = 4
	g := buildBinaryTree(t, depth)
	res, err := dfs.DFS(g, "T-1")
	require.NoError(t, err)

	assert.Len(t, res.Visited, (1<<depth)-1)
	assert.Len(t, res.Order, (1<<depth)-1)
	assert.Equal(t, "T-1", res.Order[len(res.Order)-1], "root must finish last")
}
