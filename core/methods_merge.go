// File: methods_merge.go
// Role: State-based join of two replicas and record-level joins.
//
// Join rule (per vertex label and per edge key):
//
//	absent in g  → copy other's record
//	present      → Created = max(Created, other.Created)
//	               Removed = max(Removed, other.Removed)
//
// The two fields are maxed independently. Replacing the whole record with the
// one carrying the later single timestamp would not be associative.

package core

import "fmt"

// Merge joins other's state into g. other is only read.
//
// Implementation:
//   - Stage 1: Validate other (ErrGraphNil) and directedness (ErrIncompatibleGraphs).
//   - Stage 2: Snapshot other's records, then join them into g's stores.
//
// Behavior highlights:
//   - Commutative, associative and idempotent with respect to Equal.
//   - g.Merge(g) is a no-op.
//   - On error nothing is modified.
//
// Complexity: O((V' + E')·log(V + E)) for other's V' vertices and E' edges.
func (g *Graph) Merge(other *Graph) error {
	if other == nil {
		return ErrGraphNil
	}
	if other.directed != g.directed {
		return fmt.Errorf("%w: merge directed=%t into directed=%t", ErrIncompatibleGraphs, other.directed, g.directed)
	}
	if other == g {
		return nil
	}
	// items() detaches the records, so g and other never share tree nodes mid-iteration.
	for _, v := range other.vertices.items() {
		g.vertices.join(v)
	}
	for _, e := range other.edges.items() {
		g.edges.join(e)
	}

	return nil
}

// JoinVertex merges a single vertex record into g with the join rule.
// It is how snapshots are rebuilt from their wire form.
//
// Errors:
//   - ErrInvalidArgument: blank label, a timestamp below NoTimestamp, or both
//     timestamps equal to NoTimestamp (no operation produces such a record).
func (g *Graph) JoinVertex(v Vertex) error {
	if err := checkRecord("vertex", v.Label, "", v.Created, v.Removed); err != nil {
		return err
	}
	g.vertices.join(v)

	return nil
}

// JoinEdge merges a single edge record into g with the join rule. Only the
// given direction is touched, even in undirected graphs.
//
// Errors:
//   - ErrInvalidArgument: blank label or malformed timestamps (see JoinVertex).
func (g *Graph) JoinEdge(e Edge) error {
	if isBlank(e.To) {
		return fmt.Errorf("%w: edge record %q-%q: blank label", ErrInvalidArgument, e.From, e.To)
	}
	if err := checkRecord("edge", e.From, e.To, e.Created, e.Removed); err != nil {
		return err
	}
	g.edges.join(e)

	return nil
}

// checkRecord validates a record's label and timestamp pair.
func checkRecord(kind, label, to string, created, removed int64) error {
	if isBlank(label) {
		return fmt.Errorf("%w: %s record: blank label", ErrInvalidArgument, kind)
	}
	name := label
	if to != "" {
		name = label + "-" + to
	}
	if created < NoTimestamp || removed < NoTimestamp {
		return fmt.Errorf("%w: %s record %q: timestamps (%d, %d) below %d",
			ErrInvalidArgument, kind, name, created, removed, NoTimestamp)
	}
	if created == NoTimestamp && removed == NoTimestamp {
		return fmt.Errorf("%w: %s record %q: no timestamps", ErrInvalidArgument, kind, name)
	}

	return nil
}
