// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunkends

import "testing"

func TestBuilderParseRoundTrip(t *testing.T) {
	var b Builder
	vals := []uint32{10, 25, 40, 41, 1000}
	for _, v := range vals {
		b.Add(v)
	}
	buf := b.Finish()
	arr, n, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
	if arr.Len() != len(vals) {
		t.Fatalf("Len() = %d, want %d", arr.Len(), len(vals))
	}
	for i, v := range vals {
		if got := arr.Get(i); got != v {
			t.Fatalf("Get(%d) = %d, want %d", i, got, v)
		}
	}
}

func TestParseTruncated(t *testing.T) {
	var b Builder
	b.Add(1)
	b.Add(2)
	buf := b.Finish()
	if _, _, err := Parse(buf[:len(buf)-1]); err == nil {
		t.Fatal("expected error on truncated array")
	}
}

func TestAddNotAscendingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	var b Builder
	b.Add(5)
	b.Add(5)
}
