// Package lwwgraph is a last-writer-wins element graph: a state-based CRDT
// whose replicas accept vertex and edge additions and removals independently
// and converge once they have merged each other's state.
//
// What is an LWW-Element-Graph?
//
//	Every vertex and edge carries two timestamps, when it was last added and
//	when it was last removed. An element is present when its add timestamp is
//	strictly greater than its remove timestamp, so removal wins a tie. Merging
//	two replicas keeps the larger timestamp of each kind per element, which
//	makes merge commutative, associative and idempotent.
//
// Packages:
//
//	core/         Graph, Vertex and Edge records, local operations, Merge, Dump
//	clock/        timestamp sources for the *Now operations (wall, logical)
//	dfs/          first-found path and reachability over valid edges
//	bfs/          shortest (fewest hops) path over valid edges
//	builder/      deterministic topologies (path, cycle, star, wheel, grid, ...)
//	snapshot/     JSON and YAML state files for replica exchange
//	replica/      a named, instrumented, concurrency-safe graph replica
//	httpsync/     HTTP API, client and periodic peer sync
//	config/       YAML configuration for the server
//	logging/      slog handler construction
//	metrics/      Prometheus collectors
//	cmd/lwwgraph  CLI: serve, merge, dump, path, generate, pull, push
//
// Quick ASCII example:
//
//	replica 1:  A───B          replica 2:  A   B───C   (A removed later)
//
//	merged:     B───C          A is gone, so A───B is no longer valid
//
//	go get github.com/katalvlaran/lwwgraph
package lwwgraph
