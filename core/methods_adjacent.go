// File: methods_adjacent.go
// Role: Adjacency over currently valid edges.
// Determinism:
//   - AdjacentVertices returns destinations sorted lexicographically ascending
//     (edge store order). Callers must still treat the result as a set.

package core

import "fmt"

// edgeValid applies the validity rule to an edge record:
// active edge, active endpoints, and an edge at least as new as both endpoints.
func (g *Graph) edgeValid(e Edge) bool {
	if !e.IsActive() {
		return false
	}
	src, ok := g.vertices.get(e.From)
	if !ok || !src.IsActive() {
		return false
	}
	dst, ok := g.vertices.get(e.To)
	if !ok || !dst.IsActive() {
		return false
	}

	return e.Created >= src.Created && e.Created >= dst.Created
}

// AdjacentVertices returns the labels reachable from src over one valid edge.
//
// Implementation:
//   - Stage 1: Reject a blank label (ErrInvalidArgument).
//   - Stage 2: Return early when src has no active vertex record.
//   - Stage 3: Scan the (src, *) range of the edge store and keep edges for which
//     edgeValid holds.
//
// Behavior highlights:
//   - An edge created strictly before either endpoint's latest creation is
//     excluded until the edge itself is re-created with a later timestamp.
//   - In undirected graphs the mirrored record makes src visible from dst.
//
// Returns:
//   - []string: sorted destination labels; nil when there are none.
//   - error: ErrInvalidArgument for a blank label, nil otherwise (unknown labels are not errors).
//
// Complexity: O(d·log V), d = number of (src, *) records.
func (g *Graph) AdjacentVertices(src string) ([]string, error) {
	if isBlank(src) {
		return nil, fmt.Errorf("%w: adjacent vertices: blank label", ErrInvalidArgument)
	}

	return g.adjacent(src), nil
}

// adjacent is AdjacentVertices without input validation.
func (g *Graph) adjacent(src string) []string {
	if !g.vertices.exists(src) {
		return nil
	}
	var out []string
	for _, e := range g.edges.outgoing(src) {
		if g.edgeValid(e) {
			out = append(out, e.To)
		}
	}

	return out
}

// ValidEdges returns every edge record that AdjacentVertices would currently
// follow, sorted by (From, To). Undirected graphs report both mirrors.
// Complexity: O(E·log V).
func (g *Graph) ValidEdges() []Edge {
	var out []Edge
	for _, e := range g.edges.items() {
		if g.edgeValid(e) {
			out = append(out, e)
		}
	}

	return out
}
