// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trigramset implements a sparse set of 24-bit trigram values:
// the classic Briggs-Torczon sparse set, whose Reset is O(1) because it
// never needs to clear the backing array. One Set is reused across an
// entire build, cleared between chunks, to collect each chunk's
// distinct trigrams before they're flushed to the inventory.
package trigramset

// Set is a sparse set of uint32 values in [0, max).
type Set struct {
	dense []uint32
	idx   []uint32
	n     int
}

// NewSet returns an empty set over values in [0, max).
func NewSet(max int) *Set {
	return &Set{idx: make([]uint32, max)}
}

// Reset empties the set in O(1), without touching the backing arrays.
func (s *Set) Reset() {
	s.n = 0
}

// Len reports how many distinct values are currently in the set.
func (s *Set) Len() int {
	return s.n
}

// Add inserts v, a no-op if v is already present.
func (s *Set) Add(v uint32) {
	i := s.idx[v]
	if int(i) < s.n && int(i) < len(s.dense) && s.dense[i] == v {
		return
	}
	if s.n < len(s.dense) {
		s.dense[s.n] = v
	} else {
		s.dense = append(s.dense, v)
	}
	s.idx[v] = uint32(s.n)
	s.n++
}

// Dense returns the distinct values currently in the set, in
// insertion order.
func (s *Set) Dense() []uint32 {
	return s.dense[:s.n]
}
