// Package replica wraps a core.Graph into a goroutine-safe replica with an
// identity, structured logging, Prometheus metrics and state exchange.
//
// core.Graph has a single logical writer. A Replica serializes writers behind
// a sync.RWMutex and lets readers run concurrently, so HTTP handlers and the
// anti-entropy syncer can share one replica.
package replica

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/lwwgraph/bfs"
	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/dfs"
	"github.com/katalvlaran/lwwgraph/logging"
	"github.com/katalvlaran/lwwgraph/metrics"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

// Operation names used as the "op" metric label.
const (
	OpAddVertex    = "add_vertex"
	OpRemoveVertex = "remove_vertex"
	OpAddEdge      = "add_edge"
	OpRemoveEdge   = "remove_edge"
)

// Option configures a Replica.
type Option func(*Replica)

// WithID sets the replica id. Empty ids are ignored (a UUID is generated).
func WithID(id string) Option {
	return func(r *Replica) {
		if id != "" {
			r.id = id
		}
	}
}

// WithDirected fixes the directedness of the underlying graph.
func WithDirected(directed bool) Option {
	return func(r *Replica) { r.directed = directed }
}

// WithClock sets the timestamp source of the *Now operations. nil is ignored.
func WithClock(c clock.Clock) Option {
	return func(r *Replica) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Replica) {
		if l != nil {
			r.log = l
		}
	}
}

// Replica is a goroutine-safe LWW-Element-Graph replica.
type Replica struct {
	id       string
	directed bool
	clock    clock.Clock
	log      *slog.Logger

	mu    sync.RWMutex
	graph *core.Graph
}

// New creates an empty replica. Defaults: random UUID id, undirected,
// clock.Wall, a discarding logger.
func New(opts ...Option) *Replica {
	r := &Replica{
		id:    uuid.NewString(),
		clock: clock.Wall{},
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("replica_id", r.id)
	r.graph = core.NewGraph(core.WithDirected(r.directed), core.WithClock(r.clock))

	return r
}

// ID returns the replica id.
func (r *Replica) ID() string { return r.id }

// Directed reports the directedness of the replica's graph.
func (r *Replica) Directed() bool { return r.directed }

// Close drops the replica's metric series. The replica stays usable.
func (r *Replica) Close() error {
	metrics.Forget(r.id)

	return nil
}

// mutate runs fn under the write lock and records its outcome.
func (r *Replica) mutate(op string, fn func(g *core.Graph) error) error {
	r.mu.Lock()
	err := fn(r.graph)
	r.mu.Unlock()

	if err != nil {
		metrics.Operations.WithLabelValues(r.id, op, metrics.ResultInvalid).Inc()
		r.log.Warn("operation rejected", "op", op, "error", err)

		return err
	}
	metrics.Operations.WithLabelValues(r.id, op, metrics.ResultOK).Inc()

	return nil
}

// AddVertex records the creation of label at ts.
func (r *Replica) AddVertex(label string, ts int64) error {
	return r.mutate(OpAddVertex, func(g *core.Graph) error { return g.AddVertex(label, ts) })
}

// AddVertexNow records the creation of label at the replica clock's time.
func (r *Replica) AddVertexNow(label string) error {
	return r.mutate(OpAddVertex, func(g *core.Graph) error { return g.AddVertexNow(label) })
}

// RemoveVertex records the removal of label at ts.
func (r *Replica) RemoveVertex(label string, ts int64) error {
	return r.mutate(OpRemoveVertex, func(g *core.Graph) error { return g.RemoveVertex(label, ts) })
}

// RemoveVertexNow records the removal of label at the replica clock's time.
func (r *Replica) RemoveVertexNow(label string) error {
	return r.mutate(OpRemoveVertex, func(g *core.Graph) error { return g.RemoveVertexNow(label) })
}

// AddEdge records the creation of src→dst at ts.
func (r *Replica) AddEdge(src, dst string, ts int64) error {
	return r.mutate(OpAddEdge, func(g *core.Graph) error { return g.AddEdge(src, dst, ts) })
}

// AddEdgeNow records the creation of src→dst at the replica clock's time.
func (r *Replica) AddEdgeNow(src, dst string) error {
	return r.mutate(OpAddEdge, func(g *core.Graph) error { return g.AddEdgeNow(src, dst) })
}

// RemoveEdge records the removal of src→dst at ts.
func (r *Replica) RemoveEdge(src, dst string, ts int64) error {
	return r.mutate(OpRemoveEdge, func(g *core.Graph) error { return g.RemoveEdge(src, dst, ts) })
}

// RemoveEdgeNow records the removal of src→dst at the replica clock's time.
func (r *Replica) RemoveEdgeNow(src, dst string) error {
	return r.mutate(OpRemoveEdge, func(g *core.Graph) error { return g.RemoveEdgeNow(src, dst) })
}

// HasVertex reports whether label is currently active.
func (r *Replica) HasVertex(label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.HasVertex(label)
}

// Vertex returns the stored record for label.
func (r *Replica) Vertex(label string) (core.Vertex, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.Vertex(label)
}

// Edge returns the stored record for (from, to).
func (r *Replica) Edge(from, to string) (core.Edge, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.Edge(from, to)
}

// VertexCreationTimestamp returns the stored creation timestamp or core.NoTimestamp.
func (r *Replica) VertexCreationTimestamp(label string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.VertexCreationTimestamp(label)
}

// VertexRemovalTimestamp returns the stored removal timestamp or core.NoTimestamp.
func (r *Replica) VertexRemovalTimestamp(label string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.VertexRemovalTimestamp(label)
}

// EdgeCreationTimestamp returns the stored creation timestamp or core.NoTimestamp.
func (r *Replica) EdgeCreationTimestamp(src, dst string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.EdgeCreationTimestamp(src, dst)
}

// EdgeRemovalTimestamp returns the stored removal timestamp or core.NoTimestamp.
func (r *Replica) EdgeRemovalTimestamp(src, dst string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.EdgeRemovalTimestamp(src, dst)
}

// AdjacentVertices returns the sorted labels reachable from src over one valid edge.
func (r *Replica) AdjacentVertices(src string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.AdjacentVertices(src)
}

// FindPath returns the first path found by depth-first search, or nil.
func (r *Replica) FindPath(src, dst string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.FindPath(src, dst)
}

// ShortestPath returns a fewest-hop path, or nil when dst is unreachable.
// Blank labels are rejected with core.ErrInvalidArgument; an inactive src
// yields nil like FindPath does.
func (r *Replica) ShortestPath(ctx context.Context, src, dst string) ([]string, error) {
	if isBlank(src) || isBlank(dst) {
		return nil, fmt.Errorf("%w: shortest path %q-%q: blank label", core.ErrInvalidArgument, src, dst)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if src != dst && !r.graph.HasVertex(src) {
		return nil, nil
	}

	return bfs.ShortestPath(ctx, r.graph, src, dst)
}

// Reachable returns every active vertex reachable from src (src included),
// sorted. An inactive src yields nil.
func (r *Replica) Reachable(ctx context.Context, src string) ([]string, error) {
	if isBlank(src) {
		return nil, fmt.Errorf("%w: reachable: blank label", core.ErrInvalidArgument)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.graph.HasVertex(src) {
		return nil, nil
	}
	res, err := dfs.DFS(r.graph, src, dfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	out := slices.Clone(res.Order)
	slices.Sort(out)

	return out, nil
}

// Vertices returns the sorted labels of active vertices.
func (r *Replica) Vertices() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.Vertices()
}

// Dump writes the textual dump of the replica's graph to w.
func (r *Replica) Dump(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.Dump(w)
}

// String returns the textual dump.
func (r *Replica) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graph.String()
}

// Graph returns an independent copy of the replica's graph.
func (r *Replica) Graph() *core.Graph {
	r.mu.Lock() // Clone writes copy-on-write bookkeeping
	defer r.mu.Unlock()

	return r.graph.Clone()
}

// Snapshot captures the full state, tagged with the replica id.
func (r *Replica) Snapshot() snapshot.State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return snapshot.Capture(r.graph, r.id)
}

// Stats returns store counts and refreshes the records gauges.
func (r *Replica) Stats() core.GraphStats {
	r.mu.RLock()
	st := r.graph.Stats()
	r.mu.RUnlock()

	metrics.ObserveRecords(r.id, st.VertexRecords, st.ActiveVertices, st.EdgeRecords, st.ActiveEdges)

	return st
}

func isBlank(label string) bool { return strings.TrimSpace(label) == "" }
