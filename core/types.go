// Package core defines the record types, options and sentinel errors of the
// LWW-Element-Graph, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument    - blank label, negative timestamp or malformed record.
//	ErrIncompatibleGraphs - merge between a directed and an undirected graph.
//	ErrGraphNil           - nil graph argument.
package core

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lwwgraph/clock"
)

// NoTimestamp marks a creation or removal that has not happened (yet).
const NoTimestamp int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a blank label, a negative timestamp, or a malformed record.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrIncompatibleGraphs indicates a merge between graphs of different directedness.
	ErrIncompatibleGraphs = errors.New("core: incompatible graphs")

	// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Operation selects which timestamp of a record an upsert raises.
type Operation uint8

const (
	// OpCreate raises the creation timestamp.
	OpCreate Operation = iota
	// OpRemove raises the removal timestamp.
	OpRemove
)

// String returns "create" or "remove".
func (op Operation) String() string {
	if op == OpRemove {
		return "remove"
	}

	return "create"
}

// Vertex is the LWW record of one vertex.
//
// Vertex is a value type: the graph hands out copies and replaces its stored
// value on every update, so a Vertex obtained from a Graph never changes.
type Vertex struct {
	// Label uniquely identifies the vertex.
	Label string

	// Created is the latest creation timestamp seen, or NoTimestamp.
	Created int64

	// Removed is the latest removal timestamp seen, or NoTimestamp.
	Removed int64
}

// IsActive reports Created > Removed. Equal timestamps favour removal.
func (v Vertex) IsActive() bool { return v.Created > v.Removed }

// apply returns v with the field selected by op raised to ts (never lowered).
func (v Vertex) apply(op Operation, ts int64) Vertex {
	if op == OpCreate {
		v.Created = max(v.Created, ts)
	} else {
		v.Removed = max(v.Removed, ts)
	}

	return v
}

// join returns the field-wise maximum of v and o. Labels must match.
func (v Vertex) join(o Vertex) Vertex {
	v.Created = max(v.Created, o.Created)
	v.Removed = max(v.Removed, o.Removed)

	return v
}

// Edge is the LWW record of one directed (From, To) pair.
// Undirected graphs hold one Edge per direction.
type Edge struct {
	// From is the source vertex label.
	From string

	// To is the destination vertex label.
	To string

	// Created is the latest creation timestamp seen, or NoTimestamp.
	Created int64

	// Removed is the latest removal timestamp seen, or NoTimestamp.
	Removed int64
}

// IsActive reports Created > Removed. Equal timestamps favour removal.
func (e Edge) IsActive() bool { return e.Created > e.Removed }

func (e Edge) apply(op Operation, ts int64) Edge {
	if op == OpCreate {
		e.Created = max(e.Created, ts)
	} else {
		e.Removed = max(e.Removed, ts)
	}

	return e
}

func (e Edge) join(o Edge) Edge {
	e.Created = max(e.Created, o.Created)
	e.Removed = max(e.Removed, o.Removed)

	return e
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected fixes the directedness of the graph (default: undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithClock sets the timestamp source used by the *Now methods.
// A nil clock is ignored.
func WithClock(c clock.Clock) GraphOption {
	return func(g *Graph) {
		if c != nil {
			g.clock = c
		}
	}
}

// Graph is a single replica's LWW-Element-Graph state.
//
// vertices and edges are grow-only stores; directed is immutable after
// construction. A Graph is not safe for concurrent mutation.
type Graph struct {
	directed bool
	clock    clock.Clock

	vertices *vertexStore
	edges    *edgeStore
}

// NewGraph creates an empty Graph. By default it is undirected and stamps
// *Now operations with clock.Wall.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		clock:    clock.Wall{},
		vertices: newVertexStore(),
		edges:    newEdgeStore(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary of a graph's stores.
type GraphStats struct {
	Directed       bool
	VertexRecords  int // all vertex records, tombstones included
	ActiveVertices int
	EdgeRecords    int // all edge records (both mirrors counted)
	ActiveEdges    int // edge records with Created > Removed, regardless of endpoints
	ValidEdges     int // edge records visible through AdjacentVertices
}

// isBlank reports whether a label is empty or whitespace only.
func isBlank(label string) bool { return strings.TrimSpace(label) == "" }
