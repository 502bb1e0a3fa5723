package core

import "math/bits"

// wordBits is the width of one Bitset word.
const wordBits = 64

// Bitset is a fixed-width bit-vector over the vertex range 0..n-1.
// Bit v set means vertex v is a member. The zero value is unusable;
// construct with NewBitset.
//
// Mutating methods operate in place so the clique search can reuse
// frames without reallocating; use Clone where a snapshot is needed.
type Bitset struct {
	n     int
	words []uint64
}

// NewBitset returns an empty Bitset able to hold vertices 0..n-1.
// Complexity: O(n/64)
func NewBitset(n int) *Bitset {
	if n < 0 {
		n = 0
	}

	return &Bitset{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the vertex-range width n the set was created with.
func (s *Bitset) Len() int { return s.n }

// Add sets bit v. Out-of-range v is ignored.
// Complexity: O(1)
func (s *Bitset) Add(v int) {
	if v < 0 || v >= s.n {
		return
	}
	s.words[v/wordBits] |= 1 << (uint(v) % wordBits)
}

// Remove clears bit v. Out-of-range v is ignored.
// Complexity: O(1)
func (s *Bitset) Remove(v int) {
	if v < 0 || v >= s.n {
		return
	}
	s.words[v/wordBits] &^= 1 << (uint(v) % wordBits)
}

// Has reports whether bit v is set.
// Complexity: O(1)
func (s *Bitset) Has(v int) bool {
	if v < 0 || v >= s.n {
		return false
	}

	return s.words[v/wordBits]&(1<<(uint(v)%wordBits)) != 0
}

// Count returns the number of set bits.
// Complexity: O(n/64)
func (s *Bitset) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// Empty reports whether no bit is set.
// Complexity: O(n/64)
func (s *Bitset) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
// Complexity: O(n/64)
func (s *Bitset) Clone() *Bitset {
	c := &Bitset{n: s.n, words: make([]uint64, len(s.words))}
	copy(c.words, s.words)

	return c
}

// IntersectWith replaces s by s ∩ other in place. Both sets must have been
// created for the same vertex range; the shorter word slice bounds the loop.
// Complexity: O(n/64)
func (s *Bitset) IntersectWith(other *Bitset) {
	for i := range s.words {
		if i < len(other.words) {
			s.words[i] &= other.words[i]
		} else {
			s.words[i] = 0
		}
	}
}

// Intersect returns a fresh set holding s ∩ other.
// Complexity: O(n/64)
func (s *Bitset) Intersect(other *Bitset) *Bitset {
	c := s.Clone()
	c.IntersectWith(other)

	return c
}

// IntersectionCount returns |s ∩ other| without allocating.
// Complexity: O(n/64)
func (s *Bitset) IntersectionCount(other *Bitset) int {
	c := 0
	for i, w := range s.words {
		if i < len(other.words) {
			c += bits.OnesCount64(w & other.words[i])
		}
	}

	return c
}

// ForEach calls fn for every member in ascending order. Iteration reads a
// snapshot of each word, so fn may mutate s without corrupting the walk.
// Complexity: O(n/64 + |s|)
func (s *Bitset) ForEach(fn func(v int)) {
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(i*wordBits + b)
			w &^= 1 << uint(b)
		}
	}
}

// Members returns all set vertices in ascending order.
// Complexity: O(n/64 + |s|)
func (s *Bitset) Members() []int {
	out := make([]int, 0, s.Count())
	s.ForEach(func(v int) { out = append(out, v) })

	return out
}
