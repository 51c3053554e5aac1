// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite resolves an unresolved query tree's trigram leaves
// against a database's trigram trie, producing a tree whose leaves
// carry the trigram's raw chunk-list bytes (or collapse to MatchNone
// when the trigram never occurs at all). The lookup result is attached
// to a new tree rather than driving a merge immediately, so that
// queryeval can build a fresh posting iterator over each leaf whenever
// it walks the resolved tree.
package rewrite

import (
	"github.com/hakonhall/grop/internal/gropdb"
	"github.com/hakonhall/grop/query"
)

// Resolve rewrites n, replacing every OpTrigram leaf with either a
// resolved trigram leaf carrying that trigram's chunk-list bytes, or
// MatchNone if the trigram does not occur in db at all. Or/And parents
// are rebuilt through query.Or/query.And so the result stays
// canonical (a trigram absent from db can turn a whole And subtree
// into MatchNone, which may in turn collapse an enclosing Or).
func Resolve(n *query.Node[query.Unresolved], db *gropdb.Database) *query.Node[[]byte] {
	switch n.Op {
	case query.OpMatchAll:
		return query.MatchAll[[]byte]()

	case query.OpMatchNone:
		return query.MatchNone[[]byte]()

	case query.OpTrigram:
		data, ok := db.ChunkListBytes(n.Tri)
		if !ok {
			return query.MatchNone[[]byte]()
		}
		return query.NewTrigram(n.Tri, data)

	case query.OpOr:
		children := make([]*query.Node[[]byte], len(n.Children))
		for i, c := range n.Children {
			children[i] = Resolve(c, db)
		}
		return query.Or(children...)

	case query.OpAnd:
		children := make([]*query.Node[[]byte], len(n.Children))
		for i, c := range n.Children {
			children[i] = Resolve(c, db)
		}
		return query.And(children...)

	default:
		panic("rewrite: unknown query.Op")
	}
}
