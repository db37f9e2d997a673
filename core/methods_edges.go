// File: methods_edges.go
// Role: Edge lifecycle (LWW upserts) with directed/undirected mirroring.
//
// Mirroring:
//   - Directed graphs write only (src,dst).
//   - Undirected graphs write (src,dst) and (dst,src) with the same op and ts.
//     The pair is validated once, so both directions succeed or fail together.
//   - The mirrors are independent records afterwards; a merge may bring only one
//     of them forward, which is valid CRDT state.

package core

import "fmt"

// updateEdge validates the pair and applies op at ts to one or both directions.
func (g *Graph) updateEdge(src, dst string, ts int64, op Operation) error {
	if isBlank(src) || isBlank(dst) {
		return fmt.Errorf("%w: %s edge %q-%q: blank label", ErrInvalidArgument, op, src, dst)
	}
	if ts < 0 {
		return fmt.Errorf("%w: %s edge %q-%q: negative timestamp %d", ErrInvalidArgument, op, src, dst, ts)
	}
	g.edges.upsert(src, dst, ts, op)
	if !g.directed {
		g.edges.upsert(dst, src, ts, op)
	}

	return nil
}

// AddEdge records the creation of the edge src→dst at ts (and dst→src when
// undirected). Endpoints are not required to exist: validity is decided at read
// time by AdjacentVertices.
//
// Errors:
//   - ErrInvalidArgument: blank label or ts < 0.
//
// Complexity: O(log E).
func (g *Graph) AddEdge(src, dst string, ts int64) error {
	return g.updateEdge(src, dst, ts, OpCreate)
}

// AddEdgeNow is AddEdge stamped with the graph's clock.
func (g *Graph) AddEdgeNow(src, dst string) error {
	return g.AddEdge(src, dst, g.clock.Now())
}

// RemoveEdge records the removal of the edge src→dst at ts (and dst→src when
// undirected). Removing an unseen edge stores a tombstone.
//
// Errors:
//   - ErrInvalidArgument: blank label or ts < 0.
//
// Complexity: O(log E).
func (g *Graph) RemoveEdge(src, dst string, ts int64) error {
	return g.updateEdge(src, dst, ts, OpRemove)
}

// RemoveEdgeNow is RemoveEdge stamped with the graph's clock.
func (g *Graph) RemoveEdgeNow(src, dst string) error {
	return g.RemoveEdge(src, dst, g.clock.Now())
}

// HasEdge reports whether the (src,dst) record exists and is active.
// Endpoint validity is not considered; see AdjacentVertices for that.
func (g *Graph) HasEdge(src, dst string) bool {
	e, ok := g.edges.get(src, dst)

	return ok && e.IsActive()
}

// EdgeCreationTimestamp returns the stored creation timestamp of (src,dst), or NoTimestamp.
func (g *Graph) EdgeCreationTimestamp(src, dst string) int64 {
	return g.edges.creationTime(src, dst)
}

// EdgeRemovalTimestamp returns the stored removal timestamp of (src,dst), or NoTimestamp.
func (g *Graph) EdgeRemovalTimestamp(src, dst string) int64 {
	return g.edges.removalTime(src, dst)
}
