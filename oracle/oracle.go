package oracle

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/zmalkmus/maxclique/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to MaxClique.
var ErrGraphNil = errors.New("oracle: graph is nil")

// Func is the oracle collaborator contract: given a graph, return a clique
// as vertex ids — a best effort, not necessarily the true maximum. The
// crossval orchestrator calls a Func once per comparison and validates the
// result itself.
type Func func(g *core.Graph) ([]int, error)

// MaxClique returns a maximum clique of g computed independently of the
// clique package, as ascending vertex ids. The graph is mirrored into a
// gonum simple.UndirectedGraph and gonum's maximal-clique enumeration does
// the search; the largest clique wins, ties by smallest member sequence so
// the result is deterministic.
//
// The empty graph yields the empty clique. Never mutates g.
func MaxClique(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Order()
	if n == 0 {
		return []int{}, nil
	}

	// Mirror the graph. Isolated vertices must be added explicitly or the
	// enumeration would never see them.
	ug := simple.NewUndirectedGraph()
	for v := 0; v < n; v++ {
		ug.AddNode(simple.Node(v))
	}
	for u := 0; u < n; u++ {
		ids, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range ids {
			if v > u {
				ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	best := []int{}
	for _, nodes := range topo.BronKerbosch(ug) {
		members := make([]int, len(nodes))
		for i, nd := range nodes {
			members[i] = int(nd.ID())
		}
		sort.Ints(members)

		if len(members) > len(best) ||
			(len(members) == len(best) && lessIntSlice(members, best)) {
			best = members
		}
	}

	return best, nil
}

// lessIntSlice orders equal-length ascending slices lexicographically.
func lessIntSlice(a, b []int) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
