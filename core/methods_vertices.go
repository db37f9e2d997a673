// File: methods_vertices.go
// Role: Vertex lifecycle (LWW upserts) and vertex queries.
//
// Invariants:
//   - Created/Removed only ever increase (max rule); equal timestamps are a no-op.
//   - A rejected call leaves the graph untouched.

package core

import "fmt"

// updateVertex validates its input and applies op at ts to the vertex record.
//
// Implementation:
//   - Stage 1: Reject blank labels and negative timestamps (ErrInvalidArgument).
//   - Stage 2: Create the record lazily or raise the selected field.
func (g *Graph) updateVertex(label string, ts int64, op Operation) error {
	if isBlank(label) {
		return fmt.Errorf("%w: %s vertex: blank label", ErrInvalidArgument, op)
	}
	if ts < 0 {
		return fmt.Errorf("%w: %s vertex %q: negative timestamp %d", ErrInvalidArgument, op, label, ts)
	}
	g.vertices.upsert(label, ts, op)

	return nil
}

// AddVertex records the creation of label at ts.
//
// Behavior highlights:
//   - Creating an unseen label stores {Created: ts, Removed: -1}.
//   - Re-adding with an older or equal ts changes nothing; a newer ts re-creates
//     a removed vertex.
//
// Errors:
//   - ErrInvalidArgument: blank label or ts < 0.
//
// Complexity: O(log V).
func (g *Graph) AddVertex(label string, ts int64) error {
	return g.updateVertex(label, ts, OpCreate)
}

// AddVertexNow is AddVertex stamped with the graph's clock.
func (g *Graph) AddVertexNow(label string) error {
	return g.AddVertex(label, g.clock.Now())
}

// RemoveVertex records the removal of label at ts.
//
// Removing a label never seen before stores a tombstone {Created: -1, Removed: ts},
// so a creation delivered later with ts' <= ts stays hidden. Removal wins ties.
//
// Errors:
//   - ErrInvalidArgument: blank label or ts < 0.
//
// Complexity: O(log V).
func (g *Graph) RemoveVertex(label string, ts int64) error {
	return g.updateVertex(label, ts, OpRemove)
}

// RemoveVertexNow is RemoveVertex stamped with the graph's clock.
func (g *Graph) RemoveVertexNow(label string) error {
	return g.RemoveVertex(label, g.clock.Now())
}

// HasVertex reports whether label has a record and that record is active.
// Complexity: O(log V).
func (g *Graph) HasVertex(label string) bool { return g.vertices.exists(label) }

// VertexCreationTimestamp returns the stored creation timestamp, or NoTimestamp.
func (g *Graph) VertexCreationTimestamp(label string) int64 {
	return g.vertices.creationTime(label)
}

// VertexRemovalTimestamp returns the stored removal timestamp, or NoTimestamp.
func (g *Graph) VertexRemovalTimestamp(label string) int64 {
	return g.vertices.removalTime(label)
}
