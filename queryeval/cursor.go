// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queryeval walks a resolved query tree (query.Node[[]byte],
// as produced by internal/rewrite) and produces a strictly ascending,
// deduplicated stream of candidate chunk ids. Or and And both drive a
// shared min-heap of child cursors (heap.go), differing only in how
// they drain it.
package queryeval

import "github.com/hakonhall/grop/internal/postings"

// Cursor produces a strictly ascending stream of chunk ids.
// Advance must be called once before the first Current.
type Cursor interface {
	// Advance moves to the next id. It returns false once the stream
	// is exhausted, or a non-nil error if the underlying data is
	// corrupt.
	Advance() (bool, error)
	// Current returns the id Advance most recently produced. Its
	// result is undefined before the first successful Advance.
	Current() uint64
}

// leafCursor wraps a single trigram's posting list.
type leafCursor struct {
	it  *postings.Iterator
	cur uint64
}

func newLeafCursor(data []byte) *leafCursor {
	return &leafCursor{it: postings.NewIterator(data)}
}

func (c *leafCursor) Advance() (bool, error) {
	v, ok, err := c.it.Next()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	c.cur = v
	return true, nil
}

func (c *leafCursor) Current() uint64 {
	return c.cur
}

// matchAllCursor produces every chunk id in [0, maxID].
// maxID == -1 means there are no chunks at all, so the stream is
// immediately empty.
type matchAllCursor struct {
	cur     int64
	maxID   int64
	started bool
}

func newMatchAllCursor(maxID int64) *matchAllCursor {
	return &matchAllCursor{maxID: maxID}
}

func (c *matchAllCursor) Advance() (bool, error) {
	if c.maxID < 0 {
		return false, nil
	}
	if !c.started {
		c.started = true
		c.cur = 0
	} else {
		c.cur++
	}
	return c.cur <= c.maxID, nil
}

func (c *matchAllCursor) Current() uint64 {
	return uint64(c.cur)
}

// matchNoneCursor never produces anything.
type matchNoneCursor struct{}

func (matchNoneCursor) Advance() (bool, error) { return false, nil }
func (matchNoneCursor) Current() uint64        { return 0 }
