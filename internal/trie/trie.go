// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trie implements the three-level, 256-wide trigram dispatch
// trie: two inner byte->child layers followed by a byte->inventory-index
// leaf layer, each layer binary-searchable over a strictly-ascending
// key array. Favoring flat, binary-searchable byte arrays over
// pointer-chasing maps keeps the whole structure a set of slices over
// a single mapped region, with no per-node allocation on the read
// path.
package trie

import (
	"encoding/binary"
	"fmt"
	"iter"
	"sort"
)

// --- Builder ---

// Builder accumulates (b0, b1, b2) -> inventory-index triples.
type Builder struct {
	root [256]*layer1Builder
}

type layer1Builder struct {
	child [256]*leafLayerBuilder
}

type leafLayerBuilder struct {
	present [256]bool
	value   [256]uint32
}

// Insert records that trigram (b0, b1, b2) resolves to inventory index
// invIdx. Calling Insert again with the same (b0, b1, b2) overwrites
// the previous value.
func (b *Builder) Insert(b0, b1, b2 byte, invIdx uint32) {
	l1 := b.root[b0]
	if l1 == nil {
		l1 = &layer1Builder{}
		b.root[b0] = l1
	}
	leaf := l1.child[b1]
	if leaf == nil {
		leaf = &leafLayerBuilder{}
		l1.child[b1] = leaf
	}
	leaf.present[b2] = true
	leaf.value[b2] = invIdx
}

// entry is a (key, serialised child) pair awaiting encoding into an
// inner layer; shared by Finish so every caller of encodeInnerLayer
// passes the same named type.
type entry struct {
	key  byte
	data []byte
}

// Finish serialises the trie as the root inner layer.
func (b *Builder) Finish() []byte {
	var l1entries []entry
	for b0 := 0; b0 < 256; b0++ {
		l1 := b.root[b0]
		if l1 == nil {
			continue
		}
		var leafEntries []entry
		for b1 := 0; b1 < 256; b1++ {
			leaf := l1.child[b1]
			if leaf == nil {
				continue
			}
			leafEntries = append(leafEntries, entry{byte(b1), leaf.serialize()})
		}
		l1entries = append(l1entries, entry{byte(b0), encodeInnerLayer(leafEntries)})
	}
	return encodeInnerLayer(l1entries)
}

func (lb *leafLayerBuilder) serialize() []byte {
	keys := make([]byte, 0, 16)
	for b2 := 0; b2 < 256; b2++ {
		if lb.present[b2] {
			keys = append(keys, byte(b2))
		}
	}
	n := len(keys)
	buf := make([]byte, n+4*n)
	copy(buf, keys)
	for i, k := range keys {
		binary.BigEndian.PutUint32(buf[n+4*i:], lb.value[k])
	}
	return buf
}

func encodeInnerLayer(entries []entry) []byte {
	n := len(entries)
	keys := make([]byte, n)
	offsets := make([]byte, 4*n)
	var children []byte
	cum := uint32(0)
	for i, e := range entries {
		keys[i] = e.key
		children = append(children, e.data...)
		cum += uint32(len(e.data))
		binary.BigEndian.PutUint32(offsets[4*i:], cum)
	}
	out := make([]byte, 0, 4+n+len(offsets)+len(children))
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(n))
	out = append(out, lenBuf[:]...)
	out = append(out, keys...)
	out = append(out, offsets...)
	out = append(out, children...)
	return out
}

// --- Read side: zero-copy views ---

// InnerLayer is a read-only view of one inner (non-leaf) trie layer.
type InnerLayer struct {
	keys     []byte
	offsets  []byte // big-endian u32 x len(keys), cumulative
	children []byte
}

// ParseInnerLayer parses the inner layer at the front of buf and
// returns the number of bytes consumed.
func ParseInnerLayer(buf []byte) (InnerLayer, int, error) {
	if len(buf) < 4 {
		return InnerLayer{}, 0, fmt.Errorf("trie: truncated layer length")
	}
	n := int(binary.BigEndian.Uint32(buf))
	need := 4 + n + 4*n
	if len(buf) < need {
		return InnerLayer{}, 0, fmt.Errorf("trie: truncated layer header: need %d, have %d", need, len(buf))
	}
	keys := buf[4 : 4+n]
	offsets := buf[4+n : need]
	var childLen uint32
	if n > 0 {
		childLen = binary.BigEndian.Uint32(offsets[4*(n-1):])
	}
	total := need + int(childLen)
	if len(buf) < total {
		return InnerLayer{}, 0, fmt.Errorf("trie: truncated children: need %d, have %d", total, len(buf))
	}
	return InnerLayer{keys: keys, offsets: offsets, children: buf[need:total]}, total, nil
}

// Len returns the number of children in this layer.
func (l InnerLayer) Len() int {
	return len(l.keys)
}

func (l InnerLayer) childBytes(i int) []byte {
	start := uint32(0)
	if i > 0 {
		start = binary.BigEndian.Uint32(l.offsets[4*(i-1):])
	}
	end := binary.BigEndian.Uint32(l.offsets[4*i:])
	return l.children[start:end]
}

// Get returns the raw child bytes for key, via binary search.
func (l InnerLayer) Get(key byte) ([]byte, bool) {
	n := len(l.keys)
	i := sort.Search(n, func(i int) bool { return l.keys[i] >= key })
	if i >= n || l.keys[i] != key {
		return nil, false
	}
	return l.childBytes(i), true
}

// All iterates (key, childBytes) pairs in ascending key order.
func (l InnerLayer) All() iter.Seq2[byte, []byte] {
	return func(yield func(byte, []byte) bool) {
		for i, k := range l.keys {
			if !yield(k, l.childBytes(i)) {
				return
			}
		}
	}
}

// LeafLayer is a read-only view of the leaf (byte -> inventory index)
// trie layer.
type LeafLayer struct {
	keys   []byte
	values []byte // big-endian u32 x len(keys)
}

// ParseLeafLayer parses buf as a leaf layer; buf must be consumed
// exactly (len(buf) is a multiple of 5).
func ParseLeafLayer(buf []byte) (LeafLayer, error) {
	if len(buf)%5 != 0 {
		return LeafLayer{}, fmt.Errorf("trie: leaf layer length %d not a multiple of 5", len(buf))
	}
	n := len(buf) / 5
	return LeafLayer{keys: buf[:n], values: buf[n:]}, nil
}

// Len returns the number of entries in this leaf layer.
func (l LeafLayer) Len() int {
	return len(l.keys)
}

// Get returns the inventory index for key, via binary search.
func (l LeafLayer) Get(key byte) (uint32, bool) {
	n := len(l.keys)
	i := sort.Search(n, func(i int) bool { return l.keys[i] >= key })
	if i >= n || l.keys[i] != key {
		return 0, false
	}
	return binary.BigEndian.Uint32(l.values[4*i:]), true
}

// All iterates (key, inventory index) pairs in ascending key order.
func (l LeafLayer) All() iter.Seq2[byte, uint32] {
	return func(yield func(byte, uint32) bool) {
		for i, k := range l.keys {
			if !yield(k, binary.BigEndian.Uint32(l.values[4*i:])) {
				return
			}
		}
	}
}

// Trie is a read-only, zero-copy view over a serialised trigram trie.
type Trie struct {
	root InnerLayer
}

// Parse parses buf (the full trie region) as a Trie. buf must be
// consumed exactly.
func Parse(buf []byte) (Trie, error) {
	root, n, err := ParseInnerLayer(buf)
	if err != nil {
		return Trie{}, err
	}
	if n != len(buf) {
		return Trie{}, fmt.Errorf("trie: %d trailing bytes after root layer", len(buf)-n)
	}
	return Trie{root: root}, nil
}

// Lookup resolves a trigram to an inventory index via three binary
// searches.
func (t Trie) Lookup(b0, b1, b2 byte) (invIdx uint32, ok bool) {
	l1Bytes, ok := t.root.Get(b0)
	if !ok {
		return 0, false
	}
	l1, n, err := ParseInnerLayer(l1Bytes)
	if err != nil || n != len(l1Bytes) {
		return 0, false
	}
	leafBytes, ok := l1.Get(b1)
	if !ok {
		return 0, false
	}
	leaf, err := ParseLeafLayer(leafBytes)
	if err != nil {
		return 0, false
	}
	return leaf.Get(b2)
}
