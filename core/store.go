// File: store.go
// Role: Grow-only record stores backing Graph (VertexStore, EdgeStore).
// Determinism:
//   - Both stores are ordered B-trees: vertices by Label, edges by (From, To).
//     Every enumeration (adjacency, dump, merge, snapshots) is therefore sorted.
// Concurrency:
//   - Trees are created with NoLocks; Graph has a single writer by contract.
// Invariants:
//   - Records are only inserted or replaced by a value with >= timestamps.
//     Nothing is ever deleted from a store.

package core

import "github.com/tidwall/btree"

// storeOptions disables the per-tree RWMutex; locking lives in replica.Replica.
var storeOptions = btree.Options{NoLocks: true}

// vertexStore maps label → Vertex.
type vertexStore struct {
	tree *btree.BTreeG[Vertex]
}

func vertexLess(a, b Vertex) bool { return a.Label < b.Label }

func newVertexStore() *vertexStore {
	return &vertexStore{tree: btree.NewBTreeGOptions(vertexLess, storeOptions)}
}

// get returns the record for label, if any.
func (s *vertexStore) get(label string) (Vertex, bool) {
	return s.tree.Get(Vertex{Label: label})
}

// upsert applies op at ts to the record for label, creating it lazily with the
// other field at NoTimestamp. Inputs must already be validated.
func (s *vertexStore) upsert(label string, ts int64, op Operation) {
	v, ok := s.get(label)
	if !ok {
		v = Vertex{Label: label, Created: NoTimestamp, Removed: NoTimestamp}
	}
	next := v.apply(op, ts)
	if ok && next == v {
		return // strict max: equal or older timestamps change nothing
	}
	s.tree.Set(next)
}

// join merges a whole record field-wise.
func (s *vertexStore) join(v Vertex) {
	cur, ok := s.get(v.Label)
	if !ok {
		s.tree.Set(v)
		return
	}
	if next := cur.join(v); next != cur {
		s.tree.Set(next)
	}
}

// creationTime returns Created, or NoTimestamp when absent.
func (s *vertexStore) creationTime(label string) int64 {
	if v, ok := s.get(label); ok {
		return v.Created
	}

	return NoTimestamp
}

// removalTime returns Removed, or NoTimestamp when absent.
func (s *vertexStore) removalTime(label string) int64 {
	if v, ok := s.get(label); ok {
		return v.Removed
	}

	return NoTimestamp
}

// exists reports presence and activity.
func (s *vertexStore) exists(label string) bool {
	v, ok := s.get(label)

	return ok && v.IsActive()
}

// items returns every record in label order (a detached copy).
func (s *vertexStore) items() []Vertex { return s.tree.Items() }

func (s *vertexStore) len() int { return s.tree.Len() }

// copy is O(1): the tree is copy-on-write and records are plain values.
func (s *vertexStore) copy() *vertexStore { return &vertexStore{tree: s.tree.Copy()} }

// edgeStore maps (from, to) → Edge.
type edgeStore struct {
	tree *btree.BTreeG[Edge]
}

func edgeLess(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

func newEdgeStore() *edgeStore {
	return &edgeStore{tree: btree.NewBTreeGOptions(edgeLess, storeOptions)}
}

func (s *edgeStore) get(from, to string) (Edge, bool) {
	return s.tree.Get(Edge{From: from, To: to})
}

func (s *edgeStore) upsert(from, to string, ts int64, op Operation) {
	e, ok := s.get(from, to)
	if !ok {
		e = Edge{From: from, To: to, Created: NoTimestamp, Removed: NoTimestamp}
	}
	next := e.apply(op, ts)
	if ok && next == e {
		return
	}
	s.tree.Set(next)
}

func (s *edgeStore) join(e Edge) {
	cur, ok := s.get(e.From, e.To)
	if !ok {
		s.tree.Set(e)
		return
	}
	if next := cur.join(e); next != cur {
		s.tree.Set(next)
	}
}

func (s *edgeStore) creationTime(from, to string) int64 {
	if e, ok := s.get(from, to); ok {
		return e.Created
	}

	return NoTimestamp
}

func (s *edgeStore) removalTime(from, to string) int64 {
	if e, ok := s.get(from, to); ok {
		return e.Removed
	}

	return NoTimestamp
}

// outgoing returns every record whose From is from, ordered by To.
// The pivot Edge{From: from} sorts before any (from, to) with a non-empty to.
func (s *edgeStore) outgoing(from string) []Edge {
	var out []Edge
	s.tree.Ascend(Edge{From: from}, func(e Edge) bool {
		if e.From != from {
			return false
		}
		out = append(out, e)

		return true
	})

	return out
}

func (s *edgeStore) items() []Edge { return s.tree.Items() }

func (s *edgeStore) len() int { return s.tree.Len() }

func (s *edgeStore) copy() *edgeStore { return &edgeStore{tree: s.tree.Copy()} }
