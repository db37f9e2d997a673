// Package builder generates deterministic LWW graph topologies for tests,
// benchmarks, examples and the lwwgraph CLI.
//
// Every constructor emits ordinary AddVertex/AddEdge operations against a
// core.Graph, stamped with the configured timestamp (WithTimestamp, default 1).
// Vertices and edges share that timestamp, so every emitted edge is valid.
// Running a constructor twice on the same graph is a no-op: LWW updates at an
// equal timestamp do not change a record.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): create a graph and apply constructors in order.
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Options: WithIDScheme, WithSeed, WithRand, WithTimestamp.
//   - ID schemes: DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…).
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed); core errors are wrapped with the
// constructor name.
package builder
