// SPDX-License-Identifier: MIT
// Package: hopsim/netgraph
//
// graph.go - int-indexed adjacency lists for each topology kind.
//
// Contract:
//   - Vertices are 0..n-1; hub of a star is 0, matching topology.Star.
//   - Edges are emitted in stable increasing order, so neighbor lists are
//     deterministic.
//   - Undirected kinds store each edge in both endpoint lists; the one-way
//     ring stores only i → (i+1) mod n.
//   - No self-loops, no duplicate arcs (the undirected 2-node ring has one
//     edge; the one-way 2-node ring has the two arcs 0 → 1 and 1 → 0).

package netgraph

import (
	"fmt"

	"github.com/katalvlaran/hopsim/topology"
)

// Graph is an immutable adjacency-list graph over vertices 0..n-1.
type Graph struct {
	kind     topology.Kind
	directed bool
	adj      [][]int
}

// New builds the reference graph of the given kind with n vertices.
// It reports the same sentinel errors as topology.Build so both sides
// agree on what a valid request is.
func New(kind topology.Kind, n int) (*Graph, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("netgraph: %w: %s", topology.ErrUnknownTopology, kind)
	}
	if n < topology.MinNodes {
		return nil, fmt.Errorf("netgraph(%s): n=%d < min=%d: %w", kind, n, topology.MinNodes, topology.ErrInvalidNodeCount)
	}
	if n > topology.MaxNodes {
		return nil, fmt.Errorf("netgraph(%s): n=%d > max=%d: %w", kind, n, topology.MaxNodes, topology.ErrTooManyNodes)
	}

	g := &Graph{
		kind:     kind,
		directed: kind == topology.DirectedRing,
		adj:      make([][]int, n),
	}

	switch kind {
	case topology.Ring, topology.DirectedRing:
		if n == 2 && !g.directed {
			g.addEdge(0, 1)
			break
		}
		// Close the ring: i → (i+1) % n for every i.
		for i := 0; i < n; i++ {
			g.addEdge(i, (i+1)%n)
		}
	case topology.Star:
		for leaf := 1; leaf < n; leaf++ {
			g.addEdge(0, leaf)
		}
	case topology.Line:
		for i := 1; i < n; i++ {
			g.addEdge(i-1, i)
		}
	}

	return g, nil
}

// addEdge appends u → v, plus v → u unless the graph is directed.
func (g *Graph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	if !g.directed {
		g.adj[v] = append(g.adj[v], u)
	}
}

// Kind returns the topology the graph models.
func (g *Graph) Kind() topology.Kind { return g.kind }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges; undirected edges count once.
func (g *Graph) EdgeCount() int {
	arcs := 0
	for _, nbrs := range g.adj {
		arcs += len(nbrs)
	}
	if g.directed {
		return arcs
	}
	return arcs / 2
}

// Neighbors returns a copy of the out-neighbors of v in emission order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, v, len(g.adj))
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}
