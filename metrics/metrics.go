// Package metrics defines the Prometheus collectors of lwwgraph replicas.
//
// Collectors are registered on the default registry through promauto and
// exposed by httpsync on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by replica and httpsync.
const (
	ResultOK           = "ok"
	ResultInvalid      = "invalid"
	ResultIncompatible = "incompatible"
	ResultError        = "error"

	KindVertex = "vertex"
	KindEdge   = "edge"

	StateTotal  = "total"
	StateActive = "active"
)

var (
	// Operations counts local mutations by operation and outcome.
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lwwgraph_operations_total",
			Help: "Local graph mutations by operation and result",
		},
		[]string{"replica", "op", "result"},
	)

	// Merges counts state merges by source and outcome.
	Merges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lwwgraph_merges_total",
			Help: "State merges by source replica and result",
		},
		[]string{"replica", "source", "result"},
	)

	// Records tracks store sizes (tombstones included in "total").
	Records = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lwwgraph_records",
			Help: "Vertex and edge records held by a replica",
		},
		[]string{"replica", "kind", "state"},
	)

	// SyncPullDuration measures snapshot pulls from peers.
	SyncPullDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lwwgraph_sync_pull_duration_seconds",
			Help:    "Duration of snapshot pulls from peers in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"peer"},
	)
)

// ObserveRecords sets the Records gauges of replica from store counts.
func ObserveRecords(replica string, vertices, activeVertices, edges, activeEdges int) {
	Records.WithLabelValues(replica, KindVertex, StateTotal).Set(float64(vertices))
	Records.WithLabelValues(replica, KindVertex, StateActive).Set(float64(activeVertices))
	Records.WithLabelValues(replica, KindEdge, StateTotal).Set(float64(edges))
	Records.WithLabelValues(replica, KindEdge, StateActive).Set(float64(activeEdges))
}

// Forget drops every series labelled with replica. Used when a replica is
// closed so that short-lived replicas (tests, CLI merges) do not accumulate.
func Forget(replica string) {
	labels := prometheus.Labels{"replica": replica}
	Operations.DeletePartialMatch(labels)
	Merges.DeletePartialMatch(labels)
	Records.DeletePartialMatch(labels)
}
