// SPDX-License-Identifier: MIT

package netgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hopsim/topology"
)

// Unreachable marks vertices BFS never reached.
const Unreachable = -1

// walker holds the mutable state of one BFS run.
type walker struct {
	g     *Graph
	queue []int
	dist  []int
}

// Distances runs breadth-first search from src and returns the hop count to
// every vertex, with dist[src] == 0 and Unreachable for vertices not reached.
func Distances(g *Graph, src int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := len(g.adj)
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}

	w := &walker{
		g:     g,
		queue: make([]int, 0, n),
		dist:  make([]int, n),
	}
	for i := range w.dist {
		w.dist[i] = Unreachable
	}
	w.enqueue(src, 0)
	w.loop()

	return w.dist, nil
}

// enqueue records depth d for v and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.dist[v] = d
	w.queue = append(w.queue, v)
}

// loop drains the queue, enqueuing each unseen neighbor one level deeper.
// The queue is consumed by index so its backing array is reused.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		v := w.queue[head]
		next := w.dist[v] + 1
		for _, nbr := range w.g.adj[v] {
			if w.dist[nbr] == Unreachable {
				w.enqueue(nbr, next)
			}
		}
	}
}

// CheckTable verifies that every row of t is, as a multiset, the BFS
// distances from the matching vertex of g to all other vertices.
// Column order is ignored, as topology does not track target identity.
//
// Errors:
//   - ErrNilGraph, or topology.ErrMalformedTable from t.Validate.
//   - ErrTableMismatch when kinds, sizes or any row differ.
//
// Complexity: O(n·(n+E) + n² log n).
func CheckTable(t *topology.DistanceTable, g *Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Kind() != g.Kind() {
		return fmt.Errorf("%w: table is %s, graph is %s", ErrTableMismatch, t.Kind(), g.Kind())
	}
	if t.N() != g.VertexCount() {
		return fmt.Errorf("%w: table has %d nodes, graph has %d", ErrTableMismatch, t.N(), g.VertexCount())
	}

	want := make([]int, 0, t.RowLen())
	for v := 0; v < t.N(); v++ {
		dist, err := Distances(g, v)
		if err != nil {
			return err
		}

		want = want[:0]
		for u, d := range dist {
			if u == v {
				continue
			}
			if d == Unreachable {
				return fmt.Errorf("%w: vertex %d cannot reach %d", ErrTableMismatch, v, u)
			}
			want = append(want, d)
		}
		slices.Sort(want)

		got := t.Row(v)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			return fmt.Errorf("%w: row %d is %v, bfs gives %v", ErrTableMismatch, v, got, want)
		}
	}
	return nil
}
