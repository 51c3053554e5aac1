// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"testing"

	"github.com/hakonhall/grop/internal/gropdb"
	"github.com/hakonhall/grop/query"
)

func buildTestDB(t *testing.T) *gropdb.Database {
	t.Helper()
	b := gropdb.NewBuilder()
	b.AddTrigram([3]byte{'a', 'b', 'c'}, 0)
	b.AddTrigram([3]byte{'b', 'c', 'd'}, 1)
	b.AddChunkEnd(10, 1)
	b.AddChunkEnd(20, 2)
	db, err := gropdb.Parse(b.Finish())
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestResolvePresentTrigramKeepsMeta(t *testing.T) {
	db := buildTestDB(t)
	n := query.NewTrigram[query.Unresolved]([3]byte{'a', 'b', 'c'}, query.Unresolved{})
	got := Resolve(n, db)
	if got.Op != query.OpTrigram {
		t.Fatalf("got %v, want trigram", got)
	}
	if len(got.Meta) == 0 {
		t.Fatal("expected non-empty resolved chunk-list bytes")
	}
}

func TestResolveAbsentTrigramIsMatchNone(t *testing.T) {
	db := buildTestDB(t)
	n := query.NewTrigram[query.Unresolved]([3]byte{'x', 'y', 'z'}, query.Unresolved{})
	got := Resolve(n, db)
	if got.Op != query.OpMatchNone {
		t.Fatalf("got %v, want MatchNone", got)
	}
}

func TestResolveAndCollapsesWhenOneChildAbsent(t *testing.T) {
	db := buildTestDB(t)
	n := query.And(
		query.NewTrigram[query.Unresolved]([3]byte{'a', 'b', 'c'}, query.Unresolved{}),
		query.NewTrigram[query.Unresolved]([3]byte{'x', 'y', 'z'}, query.Unresolved{}),
	)
	got := Resolve(n, db)
	if got.Op != query.OpMatchNone {
		t.Fatalf("got %v, want MatchNone", got)
	}
}

func TestResolveOrSurvivesWhenOneChildAbsent(t *testing.T) {
	db := buildTestDB(t)
	n := query.Or(
		query.NewTrigram[query.Unresolved]([3]byte{'a', 'b', 'c'}, query.Unresolved{}),
		query.NewTrigram[query.Unresolved]([3]byte{'x', 'y', 'z'}, query.Unresolved{}),
	)
	got := Resolve(n, db)
	if got.Op != query.OpTrigram || string(got.Tri[:]) != "abc" {
		t.Fatalf("got %v, want the surviving abc leaf", got)
	}
}

func TestResolveMatchAllPassesThrough(t *testing.T) {
	db := buildTestDB(t)
	got := Resolve(query.MatchAll[query.Unresolved](), db)
	if got.Op != query.OpMatchAll {
		t.Fatalf("got %v, want MatchAll", got)
	}
}
