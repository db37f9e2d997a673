// Package dfs implements depth-first search (single-source and forest) over
// the currently valid edges of a core.Graph.
//
// Only active vertices are traversed, and only edges that core.Graph.AdjacentVertices
// reports are followed, so a traversal sees exactly the topology a reader of
// the replica sees at that moment.
//
// Complexity:
//
//   - Time:   O((V + E)·log V) (adjacency lookups are ordered-tree scans).
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is not an active vertex.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every active vertex in label order and start may be empty.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: the start must be active
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range vertices {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits label at depth, recursing into unvisited valid neighbors.
func (w *dfsWalker) traverse(label string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[label] = true
	w.res.Depth[label] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(label); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", label, err)
		}
	}

	nbs, err := w.graph.AdjacentVertices(label)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: AdjacentVertices(%q): %w", label, err)
	}

	for _, nb := range nbs {
		if nb == label {
			continue // self-loop
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb] {
			continue
		}
		// a neighbor cut off by MaxDepth stays unvisited and gets no parent
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb] = label
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(label); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", label, err)
		}
	}

	w.res.Order = append(w.res.Order, label)

	return nil
}
