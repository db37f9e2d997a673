package core_test

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// ExampleGraph demonstrates explicit timestamps, the removal tie bias and
// adjacency over valid edges.
func ExampleGraph() {
	// 1) Create an undirected graph and two vertices:
	g := core.NewGraph()
	_ = g.AddVertex("A", 1)
	_ = g.AddVertex("B", 2)

	// 2) Connect them; the undirected mirror makes A visible from B:
	_ = g.AddEdge("A", "B", 3)
	nbs, _ := g.AdjacentVertices("B")
	fmt.Println("B adjacent:", nbs)

	// 3) A removal with the creation's timestamp wins:
	_ = g.RemoveVertex("B", 2)
	fmt.Println("B exists?", g.HasVertex("B"))
	nbs, _ = g.AdjacentVertices("A")
	fmt.Println("A adjacent:", nbs)

	// Output:
	// B adjacent: [A]
	// B exists? false
	// A adjacent: []
}

// ExampleGraph_Merge shows two replicas converging after concurrent edits.
func ExampleGraph_Merge() {
	left, right := core.NewGraph(), core.NewGraph()

	_ = left.AddVertex("X", 10)
	_ = right.AddVertex("X", 5)
	_ = right.RemoveVertex("X", 7) // older than left's creation

	_ = left.Merge(right)
	_ = right.Merge(left)

	fmt.Println(left.Equal(right), left.HasVertex("X"))
	fmt.Print(left)

	// Output:
	// true true
	// X:10:7
	// ***************************************
}

// ExampleGraph_FindPath finds the first path in a directed chain.
func ExampleGraph_FindPath() {
	g := core.NewGraph(core.WithDirected(true))
	for i, l := range []string{"A", "B", "C"} {
		_ = g.AddVertex(l, int64(i))
	}
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "C", 5)

	p, _ := g.FindPath("A", "C")
	back, _ := g.FindPath("C", "A")
	fmt.Println(p, len(back))

	// Output:
	// [A B C] 0
}
