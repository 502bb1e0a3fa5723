package clique

import (
	"fmt"
	"sort"

	"github.com/zmalkmus/maxclique/core"
)

// searcher encapsulates state during one Bron–Kerbosch run.
type searcher struct {
	nbr  []*core.Bitset // neighbor sets, snapshotted once, read-only
	opts Options        // search options
	r    []int          // R: clique on the current path, stack discipline
	best []int          // largest maximal clique seen, ascending
}

// FindMaxClique returns a maximum clique of g as ascending vertex ids.
// The empty graph yields the empty clique; any graph with at least one
// vertex yields size ≥ 1. Deterministic: candidates are tried in ascending
// id order and only a strictly larger clique replaces the best, so ties go
// to the first found.
//
// Returns ErrGraphNil for a nil graph, the context's error if canceled via
// WithContext, or an error propagated from the OnClique hook. The graph is
// never mutated.
func FindMaxClique(g *core.Graph, opts ...Option) ([]int, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Snapshot every neighbor set up front: the recursion intersects
	//    against them constantly and must never see graph internals.
	n := g.Order()
	s := &searcher{
		nbr:  make([]*core.Bitset, n),
		opts: o,
		r:    make([]int, 0, n),
		best: []int{},
	}
	var err error
	for v := 0; v < n; v++ {
		if s.nbr[v], err = g.Neighbors(v); err != nil {
			return nil, err
		}
	}

	// 4. Top-level call: R = ∅, P = all vertices, X = ∅.
	p := core.NewBitset(n)
	for v := 0; v < n; v++ {
		p.Add(v)
	}
	x := core.NewBitset(n)

	if err = s.search(p, x); err != nil {
		return nil, err
	}

	return s.best, nil
}

// Maximal enumerates every maximal clique of g, each as ascending vertex
// ids, in the deterministic order the search reports them. A user-supplied
// OnClique hook still fires, before each clique is collected.
//
// The empty graph has exactly one maximal clique, the empty set.
func Maximal(g *core.Graph, opts ...Option) ([][]int, error) {
	var out [][]int
	collect := func(members []int) error {
		out = append(out, members)
		return nil
	}

	// Chain the collector after any user hook.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	user := o.OnClique
	chained := append(append([]Option{}, opts...), WithOnClique(func(members []int) error {
		if user != nil {
			if err := user(members); err != nil {
				return err
			}
		}
		return collect(members)
	}))

	if _, err := FindMaxClique(g, chained...); err != nil {
		return nil, err
	}

	return out, nil
}

// search is one Bron–Kerbosch frame. p and x are owned by this frame and
// mutated destructively as the candidate loop progresses; children receive
// fresh intersections. s.r follows stack discipline across frames.
func (s *searcher) search(p, x *core.Bitset) error {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	// 2. Report: P and X both empty certifies R is maximal.
	if p.Empty() && x.Empty() {
		return s.report()
	}

	// 3. Materialize the branch candidates before any mutation of p.
	//    Plain mode branches on every member of P; pivot mode branches
	//    only on P \ N(u) for the pivot u.
	var cand []int
	if s.opts.Pivot {
		cand = s.pivotCandidates(p, x)
	} else {
		cand = p.Members()
	}

	// 4. Branch on each candidate, then retire it from P into X.
	for _, v := range cand {
		s.r = append(s.r, v)
		err := s.search(p.Intersect(s.nbr[v]), x.Intersect(s.nbr[v]))
		s.r = s.r[:len(s.r)-1]
		if err != nil {
			return err
		}

		p.Remove(v)
		x.Add(v)
	}

	return nil
}

// report records the current R as a maximal clique: fires the hook and
// keeps R as best iff strictly larger than the best so far.
func (s *searcher) report() error {
	members := append([]int(nil), s.r...)
	sort.Ints(members)

	if s.opts.OnClique != nil {
		if err := s.opts.OnClique(members); err != nil {
			return fmt.Errorf("clique: OnClique hook: %w", err)
		}
	}

	if len(members) > len(s.best) {
		s.best = members
	}

	return nil
}

// pivotCandidates picks the pivot u ∈ P ∪ X maximizing |P ∩ N(u)| and
// returns the members of P \ N(u) in ascending order. Neighbors of the
// pivot need no branch of their own: any maximal clique containing one is
// reached through a non-neighbor of u (or through u itself, which is in
// P \ N(u) when u ∈ P).
func (s *searcher) pivotCandidates(p, x *core.Bitset) []int {
	pivot, bestDeg := -1, -1
	consider := func(u int) {
		if d := p.IntersectionCount(s.nbr[u]); d > bestDeg {
			pivot, bestDeg = u, d
		}
	}
	p.ForEach(consider)
	x.ForEach(consider)

	cand := make([]int, 0, p.Count())
	p.ForEach(func(v int) {
		if pivot < 0 || !s.nbr[pivot].Has(v) {
			cand = append(cand, v)
		}
	})

	return cand
}
