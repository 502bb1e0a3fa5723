// Package clique implements exact maximum-clique search on a core.Graph via
// Bron–Kerbosch backtracking, plus maximal-clique enumeration and a
// pairwise-adjacency clique validator.
//
// What
//
//   - FindMaxClique: depth-first Bron–Kerbosch over three working sets —
//     R (clique on the current path), P (candidates that extend R),
//     X (already-explored vertices) — keeping the largest maximal clique
//     reported. Supports:
//   - WithContext for cooperative cancellation
//   - WithPivot for Tomita-style pivot pruning (identical output, smaller tree)
//   - WithOnClique hook invoked at every maximal clique
//   - Maximal: enumerate every maximal clique of the graph.
//   - IsClique: validate that a candidate vertex set is pairwise adjacent.
//
// Why
//
//   - Maximum clique is the canonical NP-hard subgraph problem; an exact,
//     deterministic engine is the reference the rest of this module (the
//     crossval orchestrator in particular) is measured against.
//
// Algorithm
//
//	search(R, P, X):
//	    if P = ∅ and X = ∅:           # R is maximal
//	        keep R if strictly larger than best
//	        return
//	    for v in a snapshot of P:     # P is never mutated mid-iteration
//	        search(R ∪ {v}, P ∩ N(v), X ∩ N(v))
//	        P := P \ {v}
//	        X := X ∪ {v}
//
// Every vertex added to R comes from P, which is intersected with N(v) at
// each extension, so R is a clique at every call. P ∪ X always holds exactly
// the common neighbors of R not yet tried on this branch, which is why an
// empty P and X certify maximality. Each child strictly shrinks P, so the
// recursion is finite.
//
// Determinism
//
//	Candidates are visited in ascending vertex id; ties between equal-size
//	maximal cliques are broken first-found. Two runs on the same graph
//	return the same clique.
//
// Complexity (V = |Vertices|)
//
//   - Time:   O(3^(V/3)) worst case (Moon–Moser bound); exponential, no
//     polynomial bound exists unless P = NP.
//   - Memory: O(V²/64) for the per-frame candidate bitsets along one
//     root-to-leaf path.
//
// Errors
//
//   - ErrGraphNil        graph pointer is nil
//   - context.Canceled   search canceled via WithContext
//   - hook errors        propagated from OnClique
package clique
