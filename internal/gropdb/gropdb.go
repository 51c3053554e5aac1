// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gropdb implements the grop database file: the framed
// on-disk container binding the trigram trie, the chunk-list
// inventory, and the two chunk-ends arrays behind a magic/version
// header.
package gropdb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hakonhall/grop/internal/chunkends"
	"github.com/hakonhall/grop/internal/inventory"
	"github.com/hakonhall/grop/internal/mmapfile"
	"github.com/hakonhall/grop/internal/postings"
	"github.com/hakonhall/grop/internal/trie"
	"github.com/hakonhall/grop/internal/vint"
)

// Magic is the 4-byte header every database file starts with.
const Magic = "grop"

// Version is the only on-disk version this package writes and
// accepts.
const Version = 0

// ErrCorrupt is returned (wrapped with more detail) whenever a
// database file fails to parse: wrong magic, unsupported version, a
// truncated sub-region, or an invalid embedded vint.
var ErrCorrupt = fmt.Errorf("gropdb: corrupt database")

// Database is a read-only, memory-mapped view of a grop database
// file. All accessors return zero-copy slices into the map.
type Database struct {
	mm    *mmapfile.File // nil if Parse was used directly on a []byte
	data  []byte
	trie  trie.Trie
	inv   inventory.Inventory
	ends  chunkends.Array
	lines chunkends.Array
}

// Open memory-maps path and parses it as a database.
func Open(path string) (*Database, error) {
	mm, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	db, err := Parse(mm.Data())
	if err != nil {
		mm.Close()
		return nil, err
	}
	db.mm = mm
	return db, nil
}

// Parse parses an in-memory database image, for example a buffer
// obtained from a Builder in a test.
func Parse(data []byte) (*Database, error) {
	rest := data
	if len(rest) < len(Magic) || string(rest[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	rest = rest[len(Magic):]

	version, n, err := vint.Decode(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: version: %v", ErrCorrupt, err)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, version)
	}
	rest = rest[n:]

	if len(rest) < 4 {
		return nil, fmt.Errorf("%w: truncated map_len", ErrCorrupt)
	}
	mapLen := binary.BigEndian.Uint32(rest)
	rest = rest[4:]
	if uint32(len(rest)) < mapLen {
		return nil, fmt.Errorf("%w: truncated map: need %d, have %d", ErrCorrupt, mapLen, len(rest))
	}
	mapBytes := rest[:mapLen]
	rest = rest[mapLen:]

	tr, err := trie.Parse(mapBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: trie: %v", ErrCorrupt, err)
	}

	inv, n, err := inventory.Parse(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: inventory: %v", ErrCorrupt, err)
	}
	rest = rest[n:]

	ends, n, err := chunkends.Parse(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: chunk end offsets: %v", ErrCorrupt, err)
	}
	rest = rest[n:]

	lines, n, err := chunkends.Parse(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: chunk end line counts: %v", ErrCorrupt, err)
	}
	rest = rest[n:]

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(rest))
	}
	if ends.Len() != lines.Len() {
		return nil, fmt.Errorf("%w: chunk-ends arrays have different lengths (%d vs %d)", ErrCorrupt, ends.Len(), lines.Len())
	}

	return &Database{data: data, trie: tr, inv: inv, ends: ends, lines: lines}, nil
}

// Close unmaps the database file, if it was opened with Open.
func (db *Database) Close() error {
	if db.mm == nil {
		return nil
	}
	return db.mm.Close()
}

// ChunksContaining returns an iterator over the ascending, deduplicated
// chunk ids containing trigram, and whether the trigram was present at
// all.
func (db *Database) ChunksContaining(trigram [3]byte) (*postings.Iterator, bool) {
	idx, ok := db.trie.Lookup(trigram[0], trigram[1], trigram[2])
	if !ok {
		return nil, false
	}
	return postings.NewIterator(db.inv.Get(int(idx))), true
}

// ChunkListBytes returns the raw, still-encoded chunk-list bytes for
// trigram, and whether it was present at all. Unlike ChunksContaining,
// it does not construct an Iterator: internal/rewrite attaches the raw
// bytes to a resolved query tree so that queryeval can build a fresh
// Iterator each time the tree is evaluated.
func (db *Database) ChunkListBytes(trigram [3]byte) ([]byte, bool) {
	idx, ok := db.trie.Lookup(trigram[0], trigram[1], trigram[2])
	if !ok {
		return nil, false
	}
	return db.inv.Get(int(idx)), true
}

// ChunkEndOffset returns the cumulative byte offset at the end of
// chunk c.
func (db *Database) ChunkEndOffset(c uint32) uint32 {
	return db.ends.Get(int(c))
}

// ChunkEndLineCount returns the cumulative line count at the end of
// chunk c.
func (db *Database) ChunkEndLineCount(c uint32) uint32 {
	return db.lines.Get(int(c))
}

// ChunkCount returns the number of chunks in the database.
func (db *Database) ChunkCount() uint32 {
	return uint32(db.ends.Len())
}

// TrigramCount returns the number of distinct trigrams in the
// database.
func (db *Database) TrigramCount() int {
	return db.inv.Len()
}

// SectionSizes reports the byte size of each sub-component, for the
// `db` CLI command's statistics output.
type SectionSizes struct {
	Trie      int
	Inventory int
	ChunkEnds int
	LineEnds  int
	Total     int
}

// SectionSizes computes the byte sizes of db's sub-components by
// re-walking the framing; it does not retain extra state solely for
// diagnostics.
func (db *Database) SectionSizes() SectionSizes {
	rest := db.data[len(Magic):]
	_, n, _ := vint.Decode(rest)
	rest = rest[n:]
	mapLen := binary.BigEndian.Uint32(rest)
	rest = rest[4+mapLen:]
	_, invN, _ := inventory.Parse(rest)
	rest = rest[invN:]
	_, endsN, _ := chunkends.Parse(rest)
	rest = rest[endsN:]
	_, linesN, _ := chunkends.Parse(rest)
	return SectionSizes{
		Trie:      int(mapLen),
		Inventory: invN,
		ChunkEnds: endsN,
		LineEnds:  linesN,
		Total:     len(db.data),
	}
}

// Builder builds a database image incrementally. Finish assembles the
// trie from the (trigram -> inventory index) map accumulated by
// AddTrigram, once, at flush time, from chunk-closed postings.
type Builder struct {
	trigramToInv map[[3]byte]int
	inv          inventory.Builder
	ends         chunkends.Builder
	lines        chunkends.Builder
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{trigramToInv: make(map[[3]byte]int)}
}

// AddTrigram records that trigram occurs in chunkID. chunkID must be
// non-decreasing across calls for any fixed trigram (chunks are
// closed in order), and repeats for the same (trigram, chunkID) are
// deduplicated by the underlying chunk-list.
func (b *Builder) AddTrigram(trigram [3]byte, chunkID uint32) {
	idx, ok := b.trigramToInv[trigram]
	if !ok {
		idx = b.inv.Next()
		b.trigramToInv[trigram] = idx
	}
	b.inv.GetMut(idx).Add(uint64(chunkID))
}

// AddChunkEnd closes a chunk, recording its cumulative end byte
// offset and end line count.
func (b *Builder) AddChunkEnd(byteOffset, lineCount uint32) {
	b.ends.Add(byteOffset)
	b.lines.Add(lineCount)
}

// TrigramCount returns the number of distinct trigrams seen so far.
func (b *Builder) TrigramCount() int {
	return b.inv.Len()
}

// ChunkCount returns the number of chunks closed so far.
func (b *Builder) ChunkCount() int {
	return b.ends.Len()
}

// Finish serialises the database image.
func (b *Builder) Finish() []byte {
	var tb trie.Builder
	for t, idx := range b.trigramToInv {
		tb.Insert(t[0], t[1], t[2], uint32(idx))
	}
	mapBytes := tb.Finish()
	invBytes := b.inv.Finish()
	endsBytes := b.ends.Finish()
	linesBytes := b.lines.Finish()

	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.Write(vint.Append(nil, Version))
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(mapBytes)))
	buf.Write(lenBuf[:])
	buf.Write(mapBytes)
	buf.Write(invBytes)
	buf.Write(endsBytes)
	buf.Write(linesBytes)
	return buf.Bytes()
}

// WriteTo serialises the database image to a file at path.
func (b *Builder) WriteTo(path string) error {
	return writeFileAtomic(path, b.Finish())
}
