// File: methods_path.go
// Role: First-found path search (depth-first) over valid adjacency.
//
// The search is iterative with an explicit frame stack, so deep graphs cannot
// overflow the goroutine stack. Visiting order matches a recursive DFS that
// expands neighbors in ascending label order.

package core

import "fmt"

// pathFrame is one level of the explicit DFS stack.
type pathFrame struct {
	label string   // vertex on the current path
	next  []string // its valid neighbors, ascending
	i     int      // index of the next neighbor to try
}

// FindPath returns a path src → … → dst along valid edges, or an empty result
// when dst is unreachable.
//
// Implementation:
//   - Stage 1: Reject blank labels (ErrInvalidArgument).
//   - Stage 2: src == dst returns [src] regardless of vertex state.
//   - Stage 3: Iterative DFS: a vertex is marked visited when pushed; the first
//     time dst is pushed, the labels on the stack form the path.
//
// Behavior highlights:
//   - Returns the first path discovered, not the shortest (see bfs.ShortestPath).
//   - The path includes both endpoints.
//
// Errors:
//   - ErrInvalidArgument: blank src or dst.
//
// Complexity: O((V + E)·log V) time, O(V) space.
func (g *Graph) FindPath(src, dst string) ([]string, error) {
	if isBlank(src) || isBlank(dst) {
		return nil, fmt.Errorf("%w: find path %q-%q: blank label", ErrInvalidArgument, src, dst)
	}
	if src == dst {
		return []string{src}, nil
	}

	visited := map[string]bool{src: true}
	stack := []pathFrame{{label: src, next: g.adjacent(src)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i == len(top.next) {
			stack = stack[:len(stack)-1] // exhausted: backtrack
			continue
		}
		nb := top.next[top.i]
		top.i++
		if visited[nb] {
			continue
		}
		visited[nb] = true
		if nb == dst {
			path := make([]string, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.label)
			}

			return append(path, nb), nil
		}
		stack = append(stack, pathFrame{label: nb, next: g.adjacent(nb)})
	}

	return nil, nil
}
