package clique

import (
	"fmt"

	"github.com/zmalkmus/maxclique/core"
)

// IsClique reports whether candidate is a clique of g: every unordered pair
// of distinct members must be adjacent. Vacuously true for the empty set
// and for any single valid vertex; duplicate members collapse to one.
//
// Returns ErrGraphNil for a nil graph and core.ErrInvalidVertex if any
// member lies outside the graph's vertex range. Pure: neither the graph
// nor the candidate slice is mutated.
//
// Complexity: O(|candidate|²) pair checks, each O(1) on the bitset-backed
// graph.
func IsClique(g *core.Graph, candidate []int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.Order()
	for _, v := range candidate {
		if v < 0 || v >= n {
			return false, fmt.Errorf("clique: candidate member %d: %w", v, core.ErrInvalidVertex)
		}
	}

	for i := 0; i < len(candidate); i++ {
		for j := i + 1; j < len(candidate); j++ {
			a, b := candidate[i], candidate[j]
			if a == b {
				continue // duplicate member, not a missing edge
			}
			if !g.HasEdge(a, b) {
				return false, nil
			}
		}
	}

	return true, nil
}
