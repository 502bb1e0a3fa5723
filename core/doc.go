// Package core provides the fundamental in-memory Graph for maximum-clique
// search: a simple undirected graph over the dense vertex range 0..N-1 with
// bitset-backed adjacency.
//
// What
//
//   - Graph: symmetric, irreflexive adjacency built once from an edge list
//     and read-only thereafter.
//   - Bitset: fixed-width bit-vector vertex sets with O(N/64) intersection,
//     the representation behind neighbor sets (and the search engine's
//     working sets in package clique).
//   - DenseAdjacency: gonum mat.SymDense view of the adjacency relation for
//     interop with numeric code.
//
// Why bitsets?
//
//	Clique search is dominated by set intersections (P ∩ N(v)). A hashed set
//	pays per-element overhead; a bit-vector intersects a whole word of
//	vertices per machine instruction, which is decisive on graphs with
//	hundreds to thousands of vertices.
//
// Invariants
//
//   - v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v) (symmetry).
//   - No self-loops: AddEdge(v, v) is rejected with ErrSelfLoop.
//   - Duplicate edges are idempotent no-ops.
//
// Concurrency
//
//	Graph carries no locks. Build it on one goroutine; once built it is
//	safely shareable read-only across concurrent searches, since no query
//	method mutates it and the returned bitsets are copies.
//
// Errors
//
//	ErrNegativeOrder  - graph requested with a negative vertex count.
//	ErrInvalidVertex  - vertex id outside the range 0..N-1.
//	ErrSelfLoop       - edge with identical endpoints.
package core
