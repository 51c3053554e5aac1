// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queryeval

import "container/heap"

// cursorHeap is a min-heap of Cursors ordered by Current(). heap.Init
// heapifies bottom-up in O(n), so building the initial heap by filling
// the slice directly and calling heap.Init once is cheaper than
// repeated heap.Push calls.
type cursorHeap struct {
	cursors []Cursor
}

func (h *cursorHeap) Len() int { return len(h.cursors) }

func (h *cursorHeap) Less(i, j int) bool {
	return h.cursors[i].Current() < h.cursors[j].Current()
}

func (h *cursorHeap) Swap(i, j int) {
	h.cursors[i], h.cursors[j] = h.cursors[j], h.cursors[i]
}

func (h *cursorHeap) Push(x any) {
	h.cursors = append(h.cursors, x.(Cursor))
}

func (h *cursorHeap) Pop() any {
	old := h.cursors
	n := len(old)
	x := old[n-1]
	h.cursors = old[:n-1]
	return x
}

// primeAll advances every child once, keeping only the ones that
// produce a value, and heapifies the survivors in place.
func primeAll(children []Cursor) (*cursorHeap, error) {
	h := &cursorHeap{cursors: make([]Cursor, 0, len(children))}
	for _, c := range children {
		ok, err := c.Advance()
		if err != nil {
			return nil, err
		}
		if ok {
			h.cursors = append(h.cursors, c)
		}
	}
	heap.Init(h)
	return h, nil
}
