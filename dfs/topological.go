// TopologicalSort computes a linear ordering of the active vertices such that
// for every valid edge u→v, u appears before v.
//
// Complexity:
//
//   - Time:   O((V + E)·log V)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lwwgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int // White, Gray or Black
	order []string       // post-order
}

// TopologicalSort orders the currently valid directed topology of g.
//
// Removed vertices and edges hidden by the validity rule do not take part, so
// a cycle broken by a removal no longer blocks the sort.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrUndirectedGraph: g is undirected.
//   - ErrCycleDetected: a valid cycle exists (self-loops included).
//   - context errors when cancelled via WithCancelContext.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from label, marking states and detecting back edges.
func (t *topoSorter) visit(label string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[label] {
	case Gray:
		return fmt.Errorf("%w: at %q", ErrCycleDetected, label)
	case Black:
		return nil
	}
	t.state[label] = Gray

	nbs, err := t.graph.AdjacentVertices(label)
	if err != nil {
		return fmt.Errorf("dfs: AdjacentVertices(%q): %w", label, err)
	}
	for _, nb := range nbs {
		if err = t.visit(nb); err != nil {
			return err
		}
	}

	t.state[label] = Black
	t.order = append(t.order, label)

	return nil
}
