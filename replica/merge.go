package replica

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/metrics"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

// sourceUnknown labels merges whose origin carries no replica id.
const sourceUnknown = "unknown"

// MergeGraph joins other into the replica. other must not be mutated
// concurrently; pass a Clone when in doubt. source names the origin in logs
// and metrics.
//
// Errors: core.ErrGraphNil, core.ErrIncompatibleGraphs.
func (r *Replica) MergeGraph(other *core.Graph, source string) error {
	if source == "" {
		source = sourceUnknown
	}
	if other == nil {
		r.recordMerge(source, metrics.ResultInvalid)

		return core.ErrGraphNil
	}

	r.mu.Lock()
	before := r.graph.Stats()
	err := r.graph.Merge(other)
	after := r.graph.Stats()
	r.mu.Unlock()

	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, core.ErrIncompatibleGraphs) {
			result = metrics.ResultIncompatible
		}
		r.recordMerge(source, result)
		r.log.Warn("merge rejected", "source", source, "error", err)

		return err
	}

	r.observe(maxTimestamp(other))
	r.recordMerge(source, metrics.ResultOK)
	metrics.ObserveRecords(r.id, after.VertexRecords, after.ActiveVertices, after.EdgeRecords, after.ActiveEdges)
	r.log.Info("merged",
		"source", source,
		"new_vertex_records", after.VertexRecords-before.VertexRecords,
		"new_edge_records", after.EdgeRecords-before.EdgeRecords,
		"active_vertices", after.ActiveVertices,
		"valid_edges", after.ValidEdges,
	)

	return nil
}

// MergeFrom joins the state of another replica. Merging a replica into itself
// is a no-op.
func (r *Replica) MergeFrom(other *Replica) error {
	if other == nil {
		return core.ErrGraphNil
	}
	if other == r {
		return nil
	}

	// other's lock is released before ours is taken.
	return r.MergeGraph(other.Graph(), other.ID())
}

// MergeState rebuilds st into a graph and joins it. Malformed states are
// rejected as a whole and leave the replica untouched.
//
// Errors: snapshot.ErrMalformed, core.ErrIncompatibleGraphs.
func (r *Replica) MergeState(st snapshot.State) error {
	source := st.ReplicaID
	if source == "" {
		source = sourceUnknown
	}
	g, err := st.Graph()
	if err != nil {
		r.recordMerge(source, metrics.ResultInvalid)
		r.log.Warn("merge rejected", "source", source, "error", err)

		return fmt.Errorf("replica %s: %w", r.id, err)
	}

	return r.MergeGraph(g, source)
}

func (r *Replica) recordMerge(source, result string) {
	metrics.Merges.WithLabelValues(r.id, source, result).Inc()
}

// observe lets a logical clock catch up with merged timestamps.
func (r *Replica) observe(ts int64) {
	if lc, ok := r.clock.(*clock.Logical); ok && ts != core.NoTimestamp {
		lc.Observe(ts)
	}
}

func maxTimestamp(g *core.Graph) int64 {
	m := core.NoTimestamp
	for _, v := range g.VertexRecords() {
		m = max(m, v.Created, v.Removed)
	}
	for _, e := range g.EdgeRecords() {
		m = max(m, e.Created, e.Removed)
	}

	return m
}
