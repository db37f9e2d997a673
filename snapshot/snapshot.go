// Package snapshot is the wire and file form of a full replica state.
//
// A State carries every vertex and edge record, tombstones included, so that
// rebuilding a graph from it and merging is equivalent to merging the source
// graph directly.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// ErrMalformed wraps decoding failures and records rejected by the graph.
var ErrMalformed = errors.New("snapshot: malformed state")

// VertexRecord is the serialized form of core.Vertex.
type VertexRecord struct {
	Label   string `json:"label" yaml:"label"`
	Created int64  `json:"created" yaml:"created"`
	Removed int64  `json:"removed" yaml:"removed"`
}

// EdgeRecord is the serialized form of core.Edge (one direction).
type EdgeRecord struct {
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	Created int64  `json:"created" yaml:"created"`
	Removed int64  `json:"removed" yaml:"removed"`
}

// State is a full replica state.
type State struct {
	ReplicaID string         `json:"replica_id,omitempty" yaml:"replica_id,omitempty"`
	Directed  bool           `json:"directed" yaml:"directed"`
	Vertices  []VertexRecord `json:"vertices" yaml:"vertices"`
	Edges     []EdgeRecord   `json:"edges" yaml:"edges"`
}

// Capture copies every record of g into a State. Records come out sorted.
func Capture(g *core.Graph, replicaID string) State {
	vs := g.VertexRecords()
	es := g.EdgeRecords()
	st := State{
		ReplicaID: replicaID,
		Directed:  g.Directed(),
		Vertices:  make([]VertexRecord, 0, len(vs)),
		Edges:     make([]EdgeRecord, 0, len(es)),
	}
	for _, v := range vs {
		st.Vertices = append(st.Vertices, VertexRecord{Label: v.Label, Created: v.Created, Removed: v.Removed})
	}
	for _, e := range es {
		st.Edges = append(st.Edges, EdgeRecord{From: e.From, To: e.To, Created: e.Created, Removed: e.Removed})
	}

	return st
}

// Graph rebuilds a graph from s. Directedness comes from s and overrides any
// core.WithDirected in opts. Every record is validated; the first invalid one
// aborts with ErrMalformed wrapping core.ErrInvalidArgument.
func (s State) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(append(opts, core.WithDirected(s.Directed))...)
	for i, v := range s.Vertices {
		err := g.JoinVertex(core.Vertex{Label: v.Label, Created: v.Created, Removed: v.Removed})
		if err != nil {
			return nil, fmt.Errorf("%w: vertices[%d]: %w", ErrMalformed, i, err)
		}
	}
	for i, e := range s.Edges {
		err := g.JoinEdge(core.Edge{From: e.From, To: e.To, Created: e.Created, Removed: e.Removed})
		if err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrMalformed, i, err)
		}
	}

	return g, nil
}

// MaxTimestamp returns the largest timestamp in s, or core.NoTimestamp when empty.
// Replicas with a logical clock observe it after merging.
func (s State) MaxTimestamp() int64 {
	m := core.NoTimestamp
	for _, v := range s.Vertices {
		m = max(m, v.Created, v.Removed)
	}
	for _, e := range s.Edges {
		m = max(m, e.Created, e.Removed)
	}

	return m
}
