package core

import "fmt"

// AddEdge inserts the undirected edge {u, v}.
//
// Policy (documented, not inferred): self-loops are rejected with
// ErrSelfLoop; inserting an edge that already exists is an idempotent no-op.
// Endpoints outside 0..N-1 fail with ErrInvalidVertex.
//
// Complexity: O(1)
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrInvalidVertex)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrInvalidVertex)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.adj[u].Has(v) {
		return nil // duplicate edge, idempotent
	}

	g.adj[u].Add(v)
	g.adj[v].Add(u)
	g.edges++

	return nil
}

// Order returns the number of vertices N.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges, counting each unordered pair once.
func (g *Graph) Size() int { return g.edges }

// Vertices returns every vertex id in ascending order, isolated vertices
// included.
// Complexity: O(n)
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for v := range out {
		out[v] = v
	}

	return out
}

// HasEdge reports whether the edge {u, v} exists. Out-of-range endpoints
// and u == v report false.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}

	return g.adj[u].Has(v)
}

// Neighbors returns a copy of v's neighbor set, so callers can mutate the
// result (the clique search does, destructively) without touching the graph.
// Returns ErrInvalidVertex for v outside 0..N-1.
// Complexity: O(n/64)
func (g *Graph) Neighbors(v int) (*Bitset, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrInvalidVertex)
	}

	return g.adj[v].Clone(), nil
}

// NeighborIDs returns v's neighbors as ascending vertex ids.
// Returns ErrInvalidVertex for v outside 0..N-1.
// Complexity: O(n/64 + deg(v))
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", v, ErrInvalidVertex)
	}

	return g.adj[v].Members(), nil
}

// Degree returns the number of neighbors of v.
// Returns ErrInvalidVertex for v outside 0..N-1.
// Complexity: O(n/64)
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrInvalidVertex)
	}

	return g.adj[v].Count(), nil
}
