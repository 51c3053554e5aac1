// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryeval

import "container/heap"

// orCursor is the union of its children: the smallest value held by
// any live child, deduplicated across children that agree on it.
type orCursor struct {
	children []Cursor
	h        *cursorHeap
	primed   bool
	cur      uint64
}

func newOrCursor(children []Cursor) *orCursor {
	return &orCursor{children: children}
}

func (o *orCursor) Advance() (bool, error) {
	if !o.primed {
		h, err := primeAll(o.children)
		if err != nil {
			return false, err
		}
		o.h = h
		o.primed = true
	}
	if o.h.Len() == 0 {
		return false, nil
	}

	top := heap.Pop(o.h).(Cursor)
	val := top.Current()
	if _, err := advanceAndRequeue(o.h, top); err != nil {
		return false, err
	}

	// Drain every other child currently sitting on the same value, so
	// the stream never repeats a chunk id.
	for o.h.Len() > 0 && o.h.cursors[0].Current() == val {
		c := heap.Pop(o.h).(Cursor)
		if _, err := advanceAndRequeue(o.h, c); err != nil {
			return false, err
		}
	}

	o.cur = val
	return true, nil
}

func (o *orCursor) Current() uint64 {
	return o.cur
}

// advanceAndRequeue advances c and, if it still has values left,
// pushes it back onto h. The returned bool mirrors c.Advance's.
func advanceAndRequeue(h *cursorHeap, c Cursor) (bool, error) {
	ok, err := c.Advance()
	if err != nil {
		return false, err
	}
	if ok {
		heap.Push(h, c)
	}
	return ok, nil
}
