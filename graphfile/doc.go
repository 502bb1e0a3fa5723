// Package graphfile reads and writes undirected graphs in the plain
// edge-list text format:
//
//	n m
//	u v w
//	u v w
//	...
//
// The header gives the vertex count n and an advisory edge count m (it is
// recorded by writers but never enforced by the reader, matching the format
// as found in the wild). Each following row names one edge; the trailing
// weight column is accepted and ignored on read, and written as 1. Blank
// lines are skipped. Vertices are 0-based ids below n.
//
// Errors
//
//	ErrBadHeader   - missing or malformed "n m" header line.
//	ErrBadEdgeLine - edge row that is not three integers.
//	core errors    - self-loop or out-of-range endpoints, wrapped.
package graphfile
