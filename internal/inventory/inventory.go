// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inventory implements the chunk-list inventory: a vector of
// chunk-lists (see internal/postings) stored contiguously with a
// cumulative-offset table so any one chunk-list can be sliced out in
// O(1).
package inventory

import (
	"fmt"

	"github.com/hakonhall/grop/internal/chunkends"
	"github.com/hakonhall/grop/internal/postings"
)

// Builder accumulates chunk-lists. Indices returned by Next are stable
// and are the inventory indices used by the trigram trie's leaves.
type Builder struct {
	lists []postings.Builder
}

// Next allocates a new, empty chunk-list and returns its index.
func (b *Builder) Next() int {
	b.lists = append(b.lists, postings.Builder{})
	return len(b.lists) - 1
}

// GetMut returns the chunk-list builder at idx, previously returned by
// Next, for further appends.
func (b *Builder) GetMut(idx int) *postings.Builder {
	return &b.lists[idx]
}

// Len returns the number of chunk-lists allocated so far.
func (b *Builder) Len() int {
	return len(b.lists)
}

// Finish serialises the inventory as count:u32, end_offsets: u32 x
// count, lists_bytes. Consecutive end offsets may repeat when a
// chunk-list is empty, so the offset table is built directly rather
// than through chunkends.Builder's strictly-ascending invariant.
func (b *Builder) Finish() []byte {
	n := len(b.lists)
	header := make([]byte, 4+4*n)
	putU32(header, 0, uint32(n))
	var listsBytes []byte
	cum := uint32(0)
	for i := range b.lists {
		bytes := b.lists[i].Finish()
		listsBytes = append(listsBytes, bytes...)
		cum += uint32(len(bytes))
		putU32(header, 4+4*i, cum)
	}
	return append(header, listsBytes...)
}

func putU32(buf []byte, off int, v uint32) {
	buf[off] = byte(v >> 24)
	buf[off+1] = byte(v >> 16)
	buf[off+2] = byte(v >> 8)
	buf[off+3] = byte(v)
}

// Inventory is a read-only, zero-copy view over a serialised inventory.
type Inventory struct {
	endOffsets chunkends.Array
	listsBytes []byte
}

// Parse reads the inventory at the front of buf, returning the view
// and the number of bytes consumed.
func Parse(buf []byte) (inv Inventory, consumed int, err error) {
	offsets, n, err := chunkends.Parse(buf)
	if err != nil {
		return Inventory{}, 0, fmt.Errorf("inventory: %w", err)
	}
	rest := buf[n:]
	if offsets.Len() > 0 {
		total := offsets.Get(offsets.Len() - 1)
		if uint32(len(rest)) < total {
			return Inventory{}, 0, fmt.Errorf("inventory: truncated lists: need %d bytes, have %d", total, len(rest))
		}
		n += int(total)
		rest = rest[:total]
	}
	return Inventory{endOffsets: offsets, listsBytes: rest}, n, nil
}

// Len returns the number of chunk-lists in the inventory.
func (inv Inventory) Len() int {
	return inv.endOffsets.Len()
}

// Get returns the raw bytes of the i'th chunk-list.
func (inv Inventory) Get(i int) []byte {
	start := uint32(0)
	if i > 0 {
		start = inv.endOffsets.Get(i - 1)
	}
	end := inv.endOffsets.Get(i)
	return inv.listsBytes[start:end]
}
