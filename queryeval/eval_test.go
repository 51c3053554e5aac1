// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryeval

import (
	"reflect"
	"testing"

	"github.com/hakonhall/grop/internal/postings"
	"github.com/hakonhall/grop/query"
)

func postingsOf(ids ...uint64) []byte {
	var b postings.Builder
	for _, id := range ids {
		b.Add(id)
	}
	return b.Finish()
}

func trigramLeaf(ids ...uint64) *query.Node[[]byte] {
	return query.NewTrigram([3]byte{'a', 'b', 'c'}, postingsOf(ids...))
}

func collectOrFail(t *testing.T, c Cursor) []uint64 {
	t.Helper()
	got, err := Collect(c)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestLeafCursorStreamsPostings(t *testing.T) {
	c := newLeafCursor(postingsOf(1, 3, 7))
	got := collectOrFail(t, c)
	want := []uint64{1, 3, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMatchAllCursorProducesEveryChunk(t *testing.T) {
	c := newMatchAllCursor(3)
	got := collectOrFail(t, c)
	want := []uint64{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMatchAllCursorEmptyWhenNoChunks(t *testing.T) {
	c := newMatchAllCursor(-1)
	got := collectOrFail(t, c)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestMatchNoneCursorIsAlwaysEmpty(t *testing.T) {
	got := collectOrFail(t, matchNoneCursor{})
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestOrCursorMergesAndDedups(t *testing.T) {
	a := newLeafCursor(postingsOf(1, 2, 5))
	b := newLeafCursor(postingsOf(2, 3, 5, 9))
	c := newOrCursor([]Cursor{a, b})
	got := collectOrFail(t, c)
	want := []uint64{1, 2, 3, 5, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestOrCursorWithEmptyChild(t *testing.T) {
	a := newLeafCursor(postingsOf(4))
	b := matchNoneCursor{}
	c := newOrCursor([]Cursor{a, b})
	got := collectOrFail(t, c)
	want := []uint64{4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAndCursorIntersects(t *testing.T) {
	a := newLeafCursor(postingsOf(1, 2, 3, 5, 8))
	b := newLeafCursor(postingsOf(2, 3, 4, 8, 9))
	c := newAndCursor([]Cursor{a, b})
	got := collectOrFail(t, c)
	want := []uint64{2, 3, 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAndCursorThreeWayIntersects(t *testing.T) {
	a := newLeafCursor(postingsOf(1, 2, 3, 4, 5))
	b := newLeafCursor(postingsOf(2, 3, 4))
	c := newLeafCursor(postingsOf(3, 4, 5))
	got := collectOrFail(t, newAndCursor([]Cursor{a, b, c}))
	want := []uint64{3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAndCursorEmptyWhenOneChildEmpty(t *testing.T) {
	a := newLeafCursor(postingsOf(1, 2, 3))
	b := matchNoneCursor{}
	got := collectOrFail(t, newAndCursor([]Cursor{a, b}))
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestAndCursorNoOverlap(t *testing.T) {
	a := newLeafCursor(postingsOf(1, 3, 5))
	b := newLeafCursor(postingsOf(2, 4, 6))
	got := collectOrFail(t, newAndCursor([]Cursor{a, b}))
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestNewCursorBuildsFromResolvedTree(t *testing.T) {
	tree := query.Or(trigramLeaf(1, 2), query.NewTrigram([3]byte{'x', 'y', 'z'}, postingsOf(5, 6)))
	cur := NewCursor(tree, 10)
	got := collectOrFail(t, cur)
	want := []uint64{1, 2, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
