// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkends implements the two parallel chunk-ends arrays: a
// length-prefixed array of big-endian uint32, one for cumulative byte
// offsets and one for cumulative line counts, read back as zero-copy
// views over a memory-mapped byte slice.
package chunkends

import (
	"encoding/binary"
	"fmt"
)

// Builder accumulates a strictly-ascending sequence of uint32 entries.
type Builder struct {
	entries []uint32
}

// Add appends v, which must be strictly greater than the previously
// added entry (chunk-ends are cumulative counts).
func (b *Builder) Add(v uint32) {
	if len(b.entries) > 0 && v <= b.entries[len(b.entries)-1] {
		panic(fmt.Sprintf("chunkends: Add(%d) after %d: not strictly ascending", v, b.entries[len(b.entries)-1]))
	}
	b.entries = append(b.entries, v)
}

// Len reports how many entries have been added.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Finish serialises the array as len:u32, entries: u32 x len.
func (b *Builder) Finish() []byte {
	buf := make([]byte, 4+4*len(b.entries))
	binary.BigEndian.PutUint32(buf, uint32(len(b.entries)))
	for i, v := range b.entries {
		binary.BigEndian.PutUint32(buf[4+4*i:], v)
	}
	return buf
}

// Array is a read-only, zero-copy view over a serialised chunk-ends
// array.
type Array struct {
	data []byte
	n    int
}

// Parse reads the array at the front of buf, returning the view and
// the number of bytes consumed.
func Parse(buf []byte) (arr Array, consumed int, err error) {
	if len(buf) < 4 {
		return Array{}, 0, fmt.Errorf("chunkends: truncated length prefix")
	}
	n := binary.BigEndian.Uint32(buf)
	need := 4 + 4*int(n)
	if len(buf) < need {
		return Array{}, 0, fmt.Errorf("chunkends: truncated array: need %d bytes, have %d", need, len(buf))
	}
	return Array{data: buf[4:need], n: int(n)}, need, nil
}

// Len returns the number of entries.
func (a Array) Len() int {
	return a.n
}

// Get returns the i'th entry.
func (a Array) Get(i int) uint32 {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("chunkends: index %d out of range [0,%d)", i, a.n))
	}
	return binary.BigEndian.Uint32(a.data[4*i:])
}
