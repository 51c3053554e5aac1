// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delta

import "testing"

func TestWriterReaderRoundTrip(t *testing.T) {
	vals := []uint64{1, 2, 3, 10, 11, 12, 1000, 1001, 100000}
	var w Writer
	for _, v := range vals {
		w.Add(v)
	}
	r := NewReader(w.Bytes())
	for i, want := range vals {
		got, ok, err := r.Next()
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !ok {
			t.Fatalf("#%d: stream ended early", i)
		}
		if got != want {
			t.Fatalf("#%d: got %d, want %d", i, got, want)
		}
	}
	if _, ok, _ := r.Next(); ok {
		t.Fatalf("stream should be exhausted")
	}
}

func TestAddNotAscendingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	var w Writer
	w.Add(5)
	w.Add(5)
}

func TestDedupWriterCollapsesRepeats(t *testing.T) {
	var w DedupWriter
	for _, v := range []uint64{1, 1, 1, 2, 2, 3} {
		w.Add(v)
	}
	r := NewReader(w.Bytes())
	want := []uint64{1, 2, 3}
	for i, wantV := range want {
		got, ok, err := r.Next()
		if err != nil || !ok {
			t.Fatalf("#%d: %v, ok=%v", i, err, ok)
		}
		if got != wantV {
			t.Fatalf("#%d: got %d, want %d", i, got, wantV)
		}
	}
	if _, ok, _ := r.Next(); ok {
		t.Fatal("stream should be exhausted")
	}
}
