// DetectCycles enumerates the simple cycles of the currently valid topology
// using three-color marking and back-edge detection. Each cycle is reported
// once, in a canonical rotation, and the list is sorted.
//
// Complexity:
//
//   - Time:   O((V + E)·log V + C·L)   (C = #cycles found, L = avg length)
//   - Memory: O(V + L_max)
package dfs

import (
	"slices"
	"strings"

	"github.com/katalvlaran/lwwgraph/core"
)

// cycleFinder holds the state of one DetectCycles run.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int
	path   []string            // current DFS stack
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// DetectCycles reports whether g's valid topology has cycles and lists them.
//
// Behavior highlights:
//   - Directed graphs: every back edge closes a cycle; a valid self-loop is
//     reported as [v, v].
//   - Undirected graphs: the mirror of the tree edge (u→parent) is ignored and
//     so are two-vertex cycles, which every undirected edge would otherwise form.
//   - Like every DFS-based enumeration, cycles sharing a back edge may be
//     reported only once; the result is exhaustive for back edges, not for
//     all simple cycles of dense graphs.
//
// Returns (false, nil, nil) for a nil or acyclic graph.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}
	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v, ""); err != nil {
				return false, nil, err
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, func(a, b []string) int {
		return strings.Compare(joinSig(a), joinSig(b))
	})

	return true, f.cycles, nil
}

func (f *cycleFinder) visit(label, parent string) error {
	f.state[label] = Gray
	f.path = append(f.path, label)

	nbs, err := f.graph.AdjacentVertices(label)
	if err != nil {
		return err
	}
	undirected := !f.graph.Directed()
	for _, nb := range nbs {
		if undirected && nb == parent {
			continue
		}
		switch f.state[nb] {
		case White:
			if err = f.visit(nb, label); err != nil {
				return err
			}
		case Gray:
			idx := slices.Index(f.path, nb)
			if undirected && len(f.path)-idx == 2 {
				continue
			}
			f.record(f.path[idx:])
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[label] = Black

	return nil
}

// record closes seq into a cycle and stores it unless already seen.
func (f *cycleFinder) record(seq []string) {
	sig, canon := canonical(seq)
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, canon)
}

// canonical returns the signature and closed form [v0 … v0] of the smallest
// rotation of base or of its reversal.
func canonical(base []string) (string, []string) {
	rotF := minimalRotation(base)
	rev := slices.Clone(base)
	slices.Reverse(rev)
	rotB := minimalRotation(rev)

	pick := rotF
	if slices.Compare(rotB, rotF) < 0 {
		pick = rotB
	}
	closed := append(slices.Clone(pick), pick[0])

	return joinSig(closed), closed
}

func joinSig(c []string) string { return strings.Join(c, ",") }

// minimalRotation is Booth's algorithm: the lexicographically smallest rotation of s in O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			fail[j-k] = -1
		} else {
			fail[j-k] = i + 1
		}
	}

	return slices.Clone(doubled[k : k+n])
}
