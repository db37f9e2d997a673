// Package bfs provides breadth-first search over the valid topology of a
// core.Graph, returning hop distances, parent links and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// queueItem pairs a vertex label with its BFS depth and its parent's label.
type queueItem struct {
	label  string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
	stop    string // label that ends the search once enqueued; "" for none
}

// errStop ends the loop early once the target of ShortestPath is enqueued.
var errStop = errors.New("bfs: target reached")

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for lookup failures,
// or any hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns a fewest-hop path src → … → dst over valid edges.
//
// Behavior highlights:
//   - src == dst returns [src] without consulting the graph, like core.Graph.FindPath.
//   - An unreachable dst returns (nil, nil).
//   - Ties between equal-length paths go to the lexicographically smaller
//     neighbor at each level.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, context errors.
func ShortestPath(ctx context.Context, g *core.Graph, src, dst string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if src == dst {
		return []string{src}, nil
	}
	w, err := newWalker(g, src, []Option{WithContext(ctx)})
	if err != nil {
		return nil, err
	}
	w.stop = dst
	if err = w.loop(); err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if _, ok := w.res.Depth[dst]; !ok {
		return nil, nil
	}

	return w.res.PathTo(dst)
}

func newWalker(g *core.Graph, start string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")

	return w, nil
}

// enqueue marks label visited at depth d, records its parent and queues it.
func (w *walker) enqueue(label string, d int, parent string) {
	w.visited[label] = true
	w.res.Depth[label] = d
	if parent != "" {
		w.res.Parent[label] = parent
	}
	w.opts.OnEnqueue(label, d)
	w.queue = append(w.queue, queueItem{label: label, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.label, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.label)
	if err := w.opts.OnVisit(item.label, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.label, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// valid neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.AdjacentVertices(item.label)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, item.label, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.label, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.label)
		if nbr == w.stop {
			return errStop
		}
	}

	return nil
}
