// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: configuration getters, record enumeration,
//       structural equality, cloning and stats.
// Policy:
//   - No LWW rules here; mutation and validity logic live in methods_*.go.
//   - Every enumeration is sorted (store order) and returns detached copies.

package core

import "slices"

// Directed reports the directedness fixed at construction.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Now returns a timestamp from the graph's clock.
// It is what the *Now mutation variants use.
func (g *Graph) Now() int64 { return g.clock.Now() }

// Vertex returns a copy of the record stored for label, tombstones included.
//
// Returns:
//   - (Vertex, true) if any operation ever referenced label.
//   - (Vertex{}, false) otherwise.
//
// Complexity: O(log V).
func (g *Graph) Vertex(label string) (Vertex, bool) { return g.vertices.get(label) }

// Edge returns a copy of the record stored for the ordered pair (from, to).
// In undirected graphs the mirror (to, from) is a separate record.
// Complexity: O(log E).
func (g *Graph) Edge(from, to string) (Edge, bool) { return g.edges.get(from, to) }

// Vertices returns the labels of currently active vertices, sorted ascending.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	var out []string
	for _, v := range g.vertices.items() {
		if v.IsActive() {
			out = append(out, v.Label)
		}
	}

	return out
}

// VertexRecords returns every vertex record (tombstones included) sorted by label.
// Complexity: O(V).
func (g *Graph) VertexRecords() []Vertex { return g.vertices.items() }

// EdgeRecords returns every edge record (tombstones and both undirected
// mirrors included) sorted by (From, To).
// Complexity: O(E).
func (g *Graph) EdgeRecords() []Edge { return g.edges.items() }

// Equal reports structural equality: same directedness and identical vertex and
// edge stores, tombstones included. Two graphs with the same active topology
// but different history are not equal.
//
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if g.directed != other.directed {
		return false
	}
	if g.vertices.len() != other.vertices.len() || g.edges.len() != other.edges.len() {
		return false
	}

	return slices.Equal(g.vertices.items(), other.vertices.items()) &&
		slices.Equal(g.edges.items(), other.edges.items())
}

// Clone returns a deep copy of the graph: flags, clock and both stores.
// Later mutations of either graph are invisible to the other.
//
// Clone updates copy-on-write bookkeeping inside g, so for synchronization it
// counts as a write, not a read.
//
// Complexity: O(1) thanks to copy-on-write trees; writes after the clone pay
// for the nodes they touch.
func (g *Graph) Clone() *Graph {
	return &Graph{
		directed: g.directed,
		clock:    g.clock,
		vertices: g.vertices.copy(),
		edges:    g.edges.copy(),
	}
}

// Stats returns counts of records, active records and adjacency-visible edges.
// Complexity: O((V + E)·log V).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Directed:      g.directed,
		VertexRecords: g.vertices.len(),
		EdgeRecords:   g.edges.len(),
	}
	for _, v := range g.vertices.items() {
		if v.IsActive() {
			stats.ActiveVertices++
		}
	}
	for _, e := range g.edges.items() {
		if !e.IsActive() {
			continue
		}
		stats.ActiveEdges++
		if g.edgeValid(e) {
			stats.ValidEdges++
		}
	}

	return stats
}
