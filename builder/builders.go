package builder

import (
	"fmt"
	"math/rand"

	"github.com/zmalkmus/maxclique/core"
)

// Constructor minima; each shape has its own defined domain.
const (
	minCompleteVertices = 1
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minRandomVertices   = 1
)

// Complete builds the complete simple graph K_n: every unordered pair
// {i, j} with i < j is an edge. n ≥ 1.
//
// Complexity: O(n²)
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}

	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Path builds the path 0–1–…–(n-1). n ≥ 1; n = 1 is a single vertex.
//
// Complexity: O(n)
func Path(n int) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}

	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
		}
	}

	return g, nil
}

// Cycle builds the n-cycle 0–1–…–(n-1)–0. n ≥ 3 (anything smaller would
// need a multi-edge or a self-loop, both outside the simple-graph model).
//
// Complexity: O(n)
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	g, err := Path(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	if err = g.AddEdge(n-1, 0); err != nil {
		return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", n-1, 0, err)
	}

	return g, nil
}

// Star builds the star with center 0 and leaves 1..n-1. n ≥ 2.
//
// Complexity: O(n)
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
	}

	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for leaf := 1; leaf < n; leaf++ {
		if err = g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(0,%d): %w", leaf, err)
		}
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi graph G(n, p): each unordered pair
// {i, j} with i < j becomes an edge independently with probability p.
// Trials run in a fixed order (i asc, j > i asc), so a fixed seed
// reproduces the identical graph. n ≥ 1, 0 ≤ p ≤ 1.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v not in [0,1]: %w", p, ErrInvalidProbability)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("RandomSparse: %w", err)
	}
	rng := rand.New(rand.NewSource(o.Seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
