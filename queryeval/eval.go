// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryeval

import "github.com/hakonhall/grop/query"

// NewCursor builds a Cursor evaluating a resolved query tree (as
// produced by internal/rewrite) over a database with the given number
// of chunks. Walking the resolved tree into its evaluator is the
// mirror image of query.Compile walking a regexp/syntax tree into a
// query tree: each Op maps onto exactly one Cursor implementation.
func NewCursor(n *query.Node[[]byte], chunkCount uint32) Cursor {
	maxID := int64(chunkCount) - 1
	return build(n, maxID)
}

func build(n *query.Node[[]byte], maxID int64) Cursor {
	switch n.Op {
	case query.OpMatchAll:
		return newMatchAllCursor(maxID)
	case query.OpMatchNone:
		return matchNoneCursor{}
	case query.OpTrigram:
		return newLeafCursor(n.Meta)
	case query.OpOr:
		children := make([]Cursor, len(n.Children))
		for i, c := range n.Children {
			children[i] = build(c, maxID)
		}
		return newOrCursor(children)
	case query.OpAnd:
		children := make([]Cursor, len(n.Children))
		for i, c := range n.Children {
			children[i] = build(c, maxID)
		}
		return newAndCursor(children)
	default:
		panic("queryeval: unknown query.Op")
	}
}

// Collect drains c and returns every chunk id it produces, in
// ascending order. Intended for tests and small result sets; callers
// evaluating against a real database should drive the Cursor directly
// so results can stream to a consumer.
func Collect(c Cursor) ([]uint64, error) {
	var out []uint64
	for {
		ok, err := c.Advance()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, c.Current())
	}
}
