// Package maxclique is an exact maximum-clique toolkit for undirected graphs —
// from the core adjacency primitives to a Bron–Kerbosch search engine and a
// cross-validation harness against an independent oracle.
//
// 🚀 What is maxclique?
//
//	A small, focused library that brings together:
//		• Core primitives: immutable simple graphs over dense integer vertices,
//		  bitset-backed adjacency for fast set intersection
//		• Search: exact maximum-clique via Bron–Kerbosch backtracking,
//		  with optional Tomita pivoting
//		• Validation: pairwise-adjacency clique checking
//		• Cross-validation: run the engine against an independent
//		  gonum-backed oracle and report agreement or divergence
//		• Builders: deterministic graph generators (complete, path, cycle,
//		  star, Erdős–Rényi) for fixtures and benchmarks
//		• File I/O: the classic "n m" header + "u v w" edge-list format
//
// Everything is organized under top-level subpackages:
//
//	core/      — Graph, Bitset, dense adjacency view
//	clique/    — Bron–Kerbosch engine, maximal-clique enumeration, IsClique
//	oracle/    — independent maximum-clique oracle (gonum graph/topo)
//	crossval/  — orchestrator comparing engine vs. oracle results
//	builder/   — deterministic graph constructors
//	graphfile/ — edge-list readers and writers
//	cmd/       — the maxclique command-line driver
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │        K4 plus a pendant vertex: the maximum
//	    2───3───4    clique is {0,1,2,3}, size 4.
//
// Finding a maximum clique is NP-hard; the engine is exact and runs to
// completion, so expect exponential worst-case time on adversarial inputs.
//
//	go get github.com/zmalkmus/maxclique
package maxclique
