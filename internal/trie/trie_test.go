// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

import "testing"

func TestBuilderLookupRoundTrip(t *testing.T) {
	var b Builder
	b.Insert('t', 'o', 'm', 42)
	b.Insert('d', 'e', 'f', 7)
	b.Insert('t', 'o', 'p', 99)

	tr, err := Parse(b.Finish())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		b0, b1, b2 byte
		want       uint32
		wantOK     bool
	}{
		{'t', 'o', 'm', 42, true},
		{'t', 'o', 'p', 99, true},
		{'d', 'e', 'f', 7, true},
		{'t', 'o', 'x', 0, false},
		{'t', 'x', 'm', 0, false},
		{'x', 'o', 'm', 0, false},
	}
	for _, c := range cases {
		got, ok := tr.Lookup(c.b0, c.b1, c.b2)
		if ok != c.wantOK {
			t.Fatalf("Lookup(%c,%c,%c) ok=%v, want %v", c.b0, c.b1, c.b2, ok, c.wantOK)
		}
		if ok && got != c.want {
			t.Fatalf("Lookup(%c,%c,%c) = %d, want %d", c.b0, c.b1, c.b2, got, c.want)
		}
	}
}

func TestLayerIterationOrder(t *testing.T) {
	var b Builder
	b.Insert('z', 'a', 'a', 1)
	b.Insert('a', 'a', 'a', 2)
	b.Insert('m', 'a', 'a', 3)

	tr, err := Parse(b.Finish())
	if err != nil {
		t.Fatal(err)
	}
	var got []byte
	for k := range tr.root.All() {
		got = append(got, k)
	}
	want := []byte{'a', 'm', 'z'}
	if string(got) != string(want) {
		t.Fatalf("iteration order = %v, want %v", got, want)
	}
}
