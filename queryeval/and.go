// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryeval

import "container/heap"

// andCursor is the intersection of its children. At each step it pops
// every child currently sitting on the heap's minimum value; if that
// group is all of the children, the value is a hit and every child in
// it advances. Otherwise that group was strictly behind the true
// intersection point, so each of them advances once and the search
// continues from the new minimum. Every outer iteration strictly
// advances at least one child, so the loop terminates.
type andCursor struct {
	children []Cursor
	n        int
	h        *cursorHeap
	primed   bool
	done     bool
	cur      uint64
}

func newAndCursor(children []Cursor) *andCursor {
	return &andCursor{children: children, n: len(children)}
}

func (a *andCursor) Advance() (bool, error) {
	if a.done {
		return false, nil
	}
	if !a.primed {
		h, err := primeAll(a.children)
		if err != nil {
			return false, err
		}
		a.h = h
		a.primed = true
		// An empty child (or no children, degenerate) makes the
		// intersection permanently empty.
		if a.h.Len() < a.n {
			a.done = true
			return false, nil
		}
	}

	for {
		if a.h.Len() < a.n {
			a.done = true
			return false, nil
		}
		candidate := a.h.cursors[0].Current()

		var group []Cursor
		for a.h.Len() > 0 && a.h.cursors[0].Current() == candidate {
			group = append(group, heap.Pop(a.h).(Cursor))
		}

		if len(group) == a.n {
			a.cur = candidate
			for _, c := range group {
				ok, err := c.Advance()
				if err != nil {
					return false, err
				}
				if ok {
					heap.Push(a.h, c)
				}
				// A child left unpushed here shrinks the heap below
				// a.n, so the next Advance call reports exhaustion.
			}
			return true, nil
		}

		// This group shares too small a value; push everyone forward
		// once and keep searching.
		for _, c := range group {
			ok, err := c.Advance()
			if err != nil {
				return false, err
			}
			if !ok {
				a.done = true
				return false, nil
			}
			heap.Push(a.h, c)
		}
	}
}

func (a *andCursor) Current() uint64 {
	return a.cur
}
