// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package postings implements the chunk-list: the sorted, deduplicated
// posting list of chunk ids in which a trigram occurs, stored as a
// delta+varint byte string.
package postings

import "github.com/hakonhall/grop/internal/delta"

// Builder appends chunk ids in non-decreasing order, deduplicating
// repeats, and produces the finished byte-string posting list.
type Builder struct {
	w delta.DedupWriter
}

// Add appends id, which must be >= the last id added. Equal
// consecutive ids are silently deduplicated.
func (b *Builder) Add(id uint64) {
	b.w.Add(id)
}

// Finish returns the encoded posting list.
func (b *Builder) Finish() []byte {
	return b.w.Bytes()
}

// ByteCount returns the number of bytes the list occupies so far.
func (b *Builder) ByteCount() int {
	return len(b.w.Bytes())
}

// Iterator lazily decodes a posting list produced by Builder.
type Iterator struct {
	r *delta.Reader
}

// NewIterator returns an Iterator over the posting list bytes.
func NewIterator(buf []byte) *Iterator {
	return &Iterator{r: delta.NewReader(buf)}
}

// Next returns the next chunk id in ascending order. ok is false once
// the list is exhausted; err is non-nil if buf is corrupt.
func (it *Iterator) Next() (id uint64, ok bool, err error) {
	return it.r.Next()
}
