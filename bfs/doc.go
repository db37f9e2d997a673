// Package bfs provides breadth-first search over the valid topology of a
// core.Graph, returning hop distances, parent links and visit order.
//
// What
//
//   - Explore active vertices in non-decreasing hop distance from a start vertex.
//   - Follow only edges that core.Graph.AdjacentVertices reports as valid.
//   - Return a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - ShortestPath: fewest-hop counterpart of core.Graph.FindPath, which
//     returns the first path a depth-first search meets.
//
// Determinism
//
//	AdjacentVertices returns labels in ascending order and BFS enqueues them in
//	that order, so the visit sequence is reproducible for a given replica state.
//
// Complexity (V = active vertices, E = valid edges)
//
//   - Time:   O((V + E)·log V)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnVisit(func(label string, depth int) error { return nil }),
//	)
//	path, err := bfs.ShortestPath(ctx, g, "a", "z")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is unknown or removed.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if an adjacency lookup fails.
//   - Wrapped hook errors from OnVisit; context errors on cancellation.
package bfs
