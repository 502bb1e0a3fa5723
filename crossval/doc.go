// Package crossval cross-validates the Bron–Kerbosch engine against an
// independent clique oracle and reports agreement or divergence.
//
// What
//
//   - Compare(g, a, b): validate two candidate cliques against the graph
//     and compare their sizes, yielding an Outcome — BothValidSameSize, or
//     Mismatch with the reasons enumerated (invalid A, invalid B, sizes
//     differ).
//   - Run(g, oracle): the full pipeline — run the engine, call the oracle,
//     time both, Compare the results, and return a Report.
//
// Why
//
//	An exact NP-hard solver is easy to get subtly wrong. Two methods that
//	share no code and still agree on every instance are strong evidence
//	both are right; a divergence is a reportable finding, which is why a
//	Mismatch is data carried in the Outcome, never an error.
//
// The orchestrator treats the oracle as a black box satisfying only the
// oracle.Func contract ("given a graph, returns a clique, not necessarily
// the true maximum") and never adjudicates beyond validity and size.
//
// Errors
//
//	ErrGraphNil  - graph pointer is nil.
//	ErrOracleNil - Run called without an oracle.
package crossval
