// Package builder provides deterministic graph constructors for fixtures,
// benchmarks, and instance generation.
//
// What
//
//   - Complete(n): K_n, every pair adjacent — max clique is trivially n.
//   - Path(n): 0–1–…–(n-1) — max clique is any adjacent pair.
//   - Cycle(n): the n-cycle, n ≥ 3.
//   - Star(n): center 0 joined to every leaf.
//   - RandomSparse(n, p, opts...): Erdős–Rényi G(n,p), each admissible
//     unordered pair included independently with probability p.
//
// Determinism
//
//	Shape constructors are fully deterministic. RandomSparse trials run in
//	a fixed order (i ascending, then j > i ascending), so a fixed seed via
//	WithSeed reproduces the identical graph; the default seed is 1.
//
// Error policy
//
//	Parameters are validated early and failures surface as sentinel errors
//	(ErrTooFewVertices, ErrInvalidProbability) wrapped with the
//	constructor's name; no constructor panics.
package builder
