package replica_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/metrics"
	"github.com/katalvlaran/lwwgraph/replica"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

// newReplica returns a replica with a fresh id whose metric series are
// dropped at the end of the test.
func newReplica(t *testing.T, opts ...replica.Option) *replica.Replica {
	t.Helper()
	r := replica.New(append([]replica.Option{replica.WithID(uuid.NewString())}, opts...)...)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestNew_Defaults(t *testing.T) {
	r := replica.New()
	defer r.Close()

	_, err := uuid.Parse(r.ID())
	require.NoError(t, err, "default id is a UUID")
	assert.False(t, r.Directed())
	assert.Empty(t, r.Vertices())

	named := replica.New(replica.WithID(""), replica.WithClock(nil), replica.WithLogger(nil))
	defer named.Close()
	assert.NotEmpty(t, named.ID())
	require.NoError(t, named.AddVertexNow("A"))
	assert.True(t, named.HasVertex("A"))
}

func TestReplica_Operations(t *testing.T) {
	r := newReplica(t)

	require.NoError(t, r.AddVertex("A", 1))
	require.NoError(t, r.AddVertex("B", 1))
	require.NoError(t, r.AddVertex("C", 1))
	require.NoError(t, r.AddEdge("A", "B", 2))
	require.NoError(t, r.AddEdge("B", "C", 2))

	assert.Equal(t, int64(1), r.VertexCreationTimestamp("A"))
	assert.Equal(t, core.NoTimestamp, r.VertexRemovalTimestamp("A"))
	assert.Equal(t, int64(2), r.EdgeCreationTimestamp("B", "A"), "undirected mirror")
	assert.Equal(t, core.NoTimestamp, r.EdgeRemovalTimestamp("A", "B"))

	adj, err := r.AdjacentVertices("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, adj)

	p, err := r.FindPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p)

	require.NoError(t, r.RemoveEdge("B", "C", 3))
	p, err = r.FindPath("A", "C")
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, r.RemoveVertex("A", 4))
	assert.False(t, r.HasVertex("A"))
	v, ok := r.Vertex("A")
	require.True(t, ok)
	assert.Equal(t, core.Vertex{Label: "A", Created: 1, Removed: 4}, v)
	e, ok := r.Edge("C", "B")
	require.True(t, ok)
	assert.Equal(t, int64(3), e.Removed)
	assert.Equal(t, []string{"B", "C"}, r.Vertices())
}

func TestReplica_NowOperations(t *testing.T) {
	r := newReplica(t, replica.WithDirected(true), replica.WithClock(clock.NewLogical(0)))

	require.NoError(t, r.AddVertexNow("A"))    // 1
	require.NoError(t, r.AddVertexNow("B"))    // 2
	require.NoError(t, r.AddEdgeNow("A", "B")) // 3
	assert.Equal(t, int64(3), r.EdgeCreationTimestamp("A", "B"))
	assert.Equal(t, core.NoTimestamp, r.EdgeCreationTimestamp("B", "A"), "directed")

	require.NoError(t, r.RemoveEdgeNow("A", "B")) // 4
	require.NoError(t, r.RemoveVertexNow("B"))    // 5
	assert.Equal(t, int64(4), r.EdgeRemovalTimestamp("A", "B"))
	assert.Equal(t, int64(5), r.VertexRemovalTimestamp("B"))
}

func TestReplica_RejectedOperations(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newReplica(t, replica.WithLogger(log))

	require.ErrorIs(t, r.AddVertex(" ", 1), core.ErrInvalidArgument)
	require.ErrorIs(t, r.AddEdge("A", "B", -5), core.ErrInvalidArgument)
	require.NoError(t, r.AddVertex("A", 1))

	_, err := r.AdjacentVertices("")
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues(r.ID(), replica.OpAddVertex, metrics.ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues(r.ID(), replica.OpAddVertex, metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues(r.ID(), replica.OpAddEdge, metrics.ResultInvalid)))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"msg":"operation rejected"`))
	assert.Contains(t, out, `"replica_id":"`+r.ID()+`"`)
	assert.Contains(t, out, `"op":"add_edge"`)
}

func TestReplica_ShortestPathAndReachable(t *testing.T) {
	r := newReplica(t)
	for _, l := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, r.AddVertex(l, 1))
	}
	// A-B-C-D plus a shortcut A-D; E is isolated.
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}} {
		require.NoError(t, r.AddEdge(e[0], e[1], 2))
	}
	ctx := context.Background()

	p, err := r.ShortestPath(ctx, "B", "D")
	require.NoError(t, err)
	assert.Len(t, p, 3)
	assert.Equal(t, "B", p[0])
	assert.Equal(t, "D", p[2])

	p, err = r.ShortestPath(ctx, "A", "E")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = r.ShortestPath(ctx, "Z", "A")
	require.NoError(t, err)
	assert.Nil(t, p, "inactive source")

	p, err = r.ShortestPath(ctx, "Z", "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, p)

	_, err = r.ShortestPath(ctx, "A", "\t")
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	reach, err := r.Reachable(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, reach)

	reach, err = r.Reachable(ctx, "Z")
	require.NoError(t, err)
	assert.Nil(t, reach)

	_, err = r.Reachable(ctx, "")
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestReplica_MergeFrom(t *testing.T) {
	a := newReplica(t)
	b := newReplica(t)

	require.NoError(t, a.AddVertex("X", 1))
	require.NoError(t, a.AddVertex("Y", 1))
	require.NoError(t, a.AddEdge("X", "Y", 2))
	require.NoError(t, b.AddVertex("Y", 3))
	require.NoError(t, b.RemoveVertex("X", 5))

	require.NoError(t, a.MergeFrom(b))
	require.NoError(t, b.MergeFrom(a))
	assert.True(t, a.Graph().Equal(b.Graph()))
	assert.False(t, a.HasVertex("X"))
	assert.Equal(t, int64(3), a.VertexCreationTimestamp("Y"))

	require.NoError(t, a.MergeFrom(a), "self merge")
	require.ErrorIs(t, a.MergeFrom(nil), core.ErrGraphNil)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Merges.WithLabelValues(a.ID(), b.ID(), metrics.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Merges.WithLabelValues(b.ID(), a.ID(), metrics.ResultOK)))
}

func TestReplica_MergeIncompatible(t *testing.T) {
	var buf bytes.Buffer
	a := newReplica(t, replica.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	b := newReplica(t, replica.WithDirected(true))
	require.NoError(t, b.AddVertex("A", 1))

	require.ErrorIs(t, a.MergeFrom(b), core.ErrIncompatibleGraphs)
	assert.Empty(t, a.Vertices())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Merges.WithLabelValues(a.ID(), b.ID(), metrics.ResultIncompatible)))
	assert.Contains(t, buf.String(), "merge rejected")

	require.ErrorIs(t, a.MergeGraph(nil, ""), core.ErrGraphNil)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Merges.WithLabelValues(a.ID(), "unknown", metrics.ResultInvalid)))
}

func TestReplica_MergeState(t *testing.T) {
	var buf bytes.Buffer
	r := newReplica(t, replica.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
	require.NoError(t, r.AddVertex("A", 1))

	src := core.NewGraph()
	require.NoError(t, src.AddVertex("B", 2))
	require.NoError(t, src.AddEdge("A", "B", 3))
	require.NoError(t, r.MergeState(snapshot.Capture(src, "peer-1")))

	adj, err := r.AdjacentVertices("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, adj)
	assert.Contains(t, buf.String(), `"msg":"merged"`)
	assert.Contains(t, buf.String(), `"source":"peer-1"`)
	assert.Contains(t, buf.String(), `"new_edge_records":2`)

	bad := snapshot.State{Vertices: []snapshot.VertexRecord{
		{Label: "C", Created: 4, Removed: -1},
		{Label: "", Created: 1, Removed: -1},
	}}
	err = r.MergeState(bad)
	require.ErrorIs(t, err, snapshot.ErrMalformed)
	assert.False(t, r.HasVertex("C"), "malformed states are rejected whole")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Merges.WithLabelValues(r.ID(), "unknown", metrics.ResultInvalid)))

	// a snapshot round-trips through a second replica
	other := newReplica(t)
	require.NoError(t, other.MergeState(r.Snapshot()))
	assert.True(t, other.Graph().Equal(r.Graph()))
	assert.Equal(t, r.ID(), r.Snapshot().ReplicaID)
}

func TestReplica_LogicalClockObservesMerges(t *testing.T) {
	lc := clock.NewLogical(0)
	r := newReplica(t, replica.WithClock(lc))

	src := core.NewGraph()
	require.NoError(t, src.AddVertex("A", 100))
	require.NoError(t, r.MergeGraph(src, "peer"))

	// a local removal now beats the merged creation
	require.NoError(t, r.RemoveVertexNow("A"))
	assert.Equal(t, int64(101), r.VertexRemovalTimestamp("A"))
	assert.False(t, r.HasVertex("A"))
}

func TestReplica_Stats(t *testing.T) {
	r := newReplica(t)
	require.NoError(t, r.AddVertex("A", 1))
	require.NoError(t, r.AddVertex("B", 1))
	require.NoError(t, r.AddEdge("A", "B", 2))
	require.NoError(t, r.RemoveVertex("B", 3))

	st := r.Stats()
	assert.Equal(t, core.GraphStats{
		VertexRecords:  2,
		ActiveVertices: 1,
		EdgeRecords:    2,
		ActiveEdges:    2,
		ValidEdges:     0,
	}, st)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Records.WithLabelValues(r.ID(), metrics.KindVertex, metrics.StateActive)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Records.WithLabelValues(r.ID(), metrics.KindEdge, metrics.StateTotal)))

	require.NoError(t, r.Close())
	assert.Zero(t, metrics.Records.DeletePartialMatch(prometheus.Labels{"replica": r.ID()}), "Close drops the series")
}

func TestReplica_Dump(t *testing.T) {
	r := newReplica(t)
	require.NoError(t, r.AddVertex("A", 1))

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf))
	assert.Equal(t, buf.String(), r.String())
	assert.Contains(t, r.String(), "A")
}

// TestReplica_Concurrent runs writers, readers, merges and snapshots in
// parallel; run with -race.
func TestReplica_Concurrent(t *testing.T) {
	a := newReplica(t, replica.WithClock(clock.NewLogical(0)))
	b := newReplica(t, replica.WithClock(clock.NewLogical(0)))
	ctx := context.Background()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				u := fmt.Sprintf("v%d-%d", w, i)
				v := fmt.Sprintf("v%d-%d", w, i+1)
				target := a
				if i%2 == 1 {
					target = b
				}
				_ = target.AddVertexNow(u)
				_ = target.AddVertexNow(v)
				_ = target.AddEdgeNow(u, v)
				_, _ = target.AdjacentVertices(u)
				_, _ = target.FindPath(u, v)
				_, _ = target.ShortestPath(ctx, u, v)
				_ = target.Snapshot()
				_ = target.Stats()
				if i%10 == 0 {
					_ = a.MergeFrom(b)
					_ = b.MergeFrom(a)
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, a.MergeFrom(b))
	require.NoError(t, b.MergeFrom(a))
	assert.True(t, a.Graph().Equal(b.Graph()))
	assert.Len(t, a.Vertices(), 4*51)
}
