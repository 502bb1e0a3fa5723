// Package oracle supplies an independent maximum-clique solver for
// cross-validation of the engine in package clique.
//
// What
//
//   - Func: the collaborator contract — given a graph, return some clique,
//     not necessarily the true maximum. The crossval orchestrator accepts
//     any Func (an ILP formulation over a MIP solver is the classic one).
//   - MaxClique: the in-repo Func, backed by gonum's graph/topo maximal
//     clique enumeration over graph/simple.
//
// Why
//
//	Cross-validation only means something when the two methods share no
//	code. MaxClique mirrors the core.Graph into a gonum
//	simple.UndirectedGraph and lets gonum's own Bron–Kerbosch (pivoting,
//	independently implemented and tested upstream) enumerate maximal
//	cliques; none of this package touches package clique.
//
// Errors
//
//	ErrGraphNil - graph pointer is nil.
package oracle
