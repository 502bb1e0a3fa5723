package core

import "gonum.org/v1/gonum/mat"

// DenseAdjacency returns the adjacency relation as a gonum symmetric 0/1
// matrix: entry (u, v) is 1 iff {u, v} is an edge. The diagonal is zero
// (the graph is irreflexive). Useful for handing the graph to numeric code
// or for eyeballing small instances with mat.Formatted.
//
// Returns nil for the empty graph (mat.NewSymDense panics on n == 0).
//
// Complexity: O(n²) time and space.
func (g *Graph) DenseAdjacency() *mat.SymDense {
	if g.n == 0 {
		return nil
	}

	m := mat.NewSymDense(g.n, nil)
	for u := 0; u < g.n; u++ {
		g.adj[u].ForEach(func(v int) {
			if v > u {
				m.SetSym(u, v, 1)
			}
		})
	}

	return m
}
