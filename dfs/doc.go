// Package dfs implements depth-first traversal, cycle detection and
// topological sort over the currently valid topology of a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre- and post-order hooks, cancellation, depth limiting,
//     neighbor filtering and forest traversal.
//   - DetectCycles: lists the cycles closed by back edges, canonicalized with
//     Booth's minimal rotation and deduplicated.
//   - TopologicalSort: orders a directed graph's active vertices, returning
//     ErrCycleDetected if a valid cycle exists.
//
// Valid topology:
//
//	Vertices are the labels reported by core.Graph.Vertices (active records).
//	Edges are the ones core.Graph.AdjacentVertices follows: active, between
//	active endpoints, and not older than either endpoint's creation.
//
// A removed vertex therefore disappears from every traversal together with
// its edges, and re-creating it does not resurrect the old edges.
//
// Complexity:
//
//   - DFS:             Time O((V+E)·log V), Memory O(V)
//   - DetectCycles:    Time O((V+E)·log V + C·L), Memory O(V + L_max)
//   - TopologicalSort: Time O((V+E)·log V), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex unknown or removed
//   - ErrCycleDetected        cycle discovered during TopologicalSort
//   - ErrUndirectedGraph      TopologicalSort on an undirected graph
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
