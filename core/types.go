// Package core declares the Graph type and the sentinel errors shared by
// every construction and query operation.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a graph was requested with a negative
	// vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrInvalidVertex indicates an operation referenced a vertex id
	// outside the graph's range 0..N-1.
	ErrInvalidVertex = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide. The graph is
	// irreflexive: self-loops are rejected, never silently dropped.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is a simple undirected graph over the dense vertex range 0..N-1.
//
// Adjacency is one Bitset per vertex; the symmetry invariant
// v ∈ adj[u] ⇔ u ∈ adj[v] is maintained by AddEdge. A Graph carries no
// locks: build it single-goroutine, then share it read-only.
type Graph struct {
	n     int       // number of vertices
	adj   []*Bitset // adj[v] = neighbor set of v
	edges int       // unordered pair count
}

// New creates a graph with n isolated vertices and no edges.
// Returns ErrNegativeOrder if n < 0.
// Complexity: O(n²/64) for the adjacency bitsets.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	adj := make([]*Bitset, n)
	for v := 0; v < n; v++ {
		adj[v] = NewBitset(n)
	}

	return &Graph{n: n, adj: adj}, nil
}

// FromEdges creates a graph with n vertices and inserts every edge in order.
// Edge insertion follows AddEdge semantics (self-loops rejected, duplicates
// idempotent).
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
