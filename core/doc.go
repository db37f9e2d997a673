// Package core implements a Last-Write-Wins Element Graph (LWW-Element-Graph):
// a state-based CRDT graph whose vertices and edges can be added and removed
// concurrently on independent replicas and reconciled with Merge.
//
// Every vertex and every edge is a grow-only record carrying two timestamps:
//
//	Vertex{Label, Created, Removed}
//	Edge{From, To, Created, Removed}     keyed by the ordered pair (From, To)
//
// A record is active iff Created > Removed. Ties resolve towards removal.
// Operations never lower a timestamp: AddVertex/AddEdge raise Created,
// RemoveVertex/RemoveEdge raise Removed, both with max(existing, new).
// Records are never deleted; removal is a tombstone.
//
// Validity of structure is derived from timestamps, not presence:
//
//	dst ∈ AdjacentVertices(src)  ⇔  edge(src,dst) active
//	                              ∧ src active ∧ dst active
//	                              ∧ edge.Created ≥ max(src.Created, dst.Created)
//
// An edge created before one of its endpoints existed stays invisible until the
// edge itself is re-created with a later timestamp.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Fixed at construction. Undirected graphs write mirrored (dst,src) records
//	    together with every (src,dst) write.
//
//	– WithClock(c clock.Clock)
//	    Timestamp source for the *Now convenience methods (default clock.Wall).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label string, ts int64) error         // O(log V)
//	RemoveVertex(label string, ts int64) error      // O(log V)
//	HasVertex(label string) bool                    // O(log V)
//
//	// Edge lifecycle
//	AddEdge(src, dst string, ts int64) error        // O(log E), ×2 when undirected
//	RemoveEdge(src, dst string, ts int64) error     // O(log E), ×2 when undirected
//
//	// Query
//	AdjacentVertices(src string) ([]string, error)  // O(d·log V), sorted
//	FindPath(src, dst string) ([]string, error)     // O((V+E)·log V), first DFS path
//
//	// Join
//	Merge(other *Graph) error                       // O((V+E)·log(V+E))
//	JoinVertex(v Vertex) error / JoinEdge(e Edge) error
//
//	// Inspection
//	Equal(other *Graph) bool, Clone() *Graph, Stats() GraphStats, String(), Dump(w)
//
// Merge is field-wise: Created and Removed are maxed independently, which makes
// it commutative, associative and idempotent.
//
// Errors:
//
//	ErrInvalidArgument     – blank label, negative timestamp or malformed record
//	ErrIncompatibleGraphs  – Merge across directed/undirected graphs
//	ErrGraphNil            – nil *Graph passed to Merge
//
// Every failing call is a no-op. Unknown labels are not errors: getters return
// NoTimestamp (-1) and queries return empty results.
//
// Concurrency: a Graph has a single logical writer and no internal locks.
// Share one across goroutines through replica.Replica.
package core
