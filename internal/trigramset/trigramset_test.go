// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trigramset

import "testing"

func TestAddDedupsAndPreservesInsertionOrder(t *testing.T) {
	s := NewSet(1 << 24)
	for _, v := range []uint32{5, 2, 5, 9, 2, 2, 1} {
		s.Add(v)
	}
	want := []uint32{5, 2, 9, 1}
	got := s.Dense()
	if len(got) != len(want) {
		t.Fatalf("Dense() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Dense()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
}

func TestResetIsFree(t *testing.T) {
	s := NewSet(1 << 24)
	s.Add(1)
	s.Add(2)
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset() = %d, want 0", s.Len())
	}
	s.Add(1)
	if got := s.Dense(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("Dense() after Reset()+Add(1) = %v, want [1]", got)
	}
}
