package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/builder"
	"github.com/katalvlaran/lwwgraph/core"
)

// ExampleBuildGraph composes a wheel and a path that share the rim labels.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn), builder.WithTimestamp(10)},
		builder.Wheel(5),
		builder.Path(6), // A..F: adds the tail D-E-F
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	adj, _ := g.AdjacentVertices("E")
	fmt.Println(adj)
	path, _ := g.FindPath("F", "B")
	fmt.Println(path)
	// Output:
	// [D F]
	// [F E D A B]
}

// ExampleApply revives a removed vertex by rebuilding at a later timestamp.
func ExampleApply() {
	g := core.NewGraph()
	_ = builder.Apply(g, nil, builder.Star(3))
	_ = g.RemoveVertex(builder.CenterVertexID, 5)
	fmt.Println(g.Vertices())

	_ = builder.Apply(g, []builder.BuilderOption{builder.WithTimestamp(6)}, builder.Star(3))
	fmt.Println(g.Vertices())
	// Output:
	// [0 1]
	// [0 1 Center]
}
