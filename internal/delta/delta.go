// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package delta wraps vint to encode strictly-ascending sequences of
// uint64 as successive (value - prev - 1) deltas, so a run of nearby
// ids costs only a few bytes apiece instead of a full varint each.
package delta

import (
	"fmt"

	"github.com/hakonhall/grop/internal/vint"
)

// Writer encodes a strictly-ascending sequence of uint64 values.
type Writer struct {
	buf     []byte
	prev    uint64
	started bool
}

// Add appends v to the encoded sequence. v must be strictly greater
// than the previously added value; violating this is a programming
// error in the caller, not a recoverable condition, so Add panics.
func (w *Writer) Add(v uint64) {
	if !w.started {
		w.buf = vint.Append(w.buf, v)
		w.prev = v
		w.started = true
		return
	}
	if v <= w.prev {
		panic(fmt.Sprintf("delta: Add(%d) after %d: not strictly ascending", v, w.prev))
	}
	w.buf = vint.Append(w.buf, v-w.prev-1)
	w.prev = v
}

// Bytes returns the encoded byte stream built so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// DedupWriter is the duplicate-consuming variant: Add is idempotent
// when v equals the last value added.
type DedupWriter struct {
	w Writer
}

// Add appends v, silently doing nothing if v equals the last value
// added.
func (w *DedupWriter) Add(v uint64) {
	if w.w.started && v == w.w.prev {
		return
	}
	w.w.Add(v)
}

// Bytes returns the encoded byte stream built so far.
func (w *DedupWriter) Bytes() []byte {
	return w.w.Bytes()
}

// Reader decodes a stream produced by Writer (or DedupWriter).
type Reader struct {
	buf     []byte
	cur     uint64
	started bool
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Next decodes the next value in the stream. ok is false once the
// stream is exhausted.
func (r *Reader) Next() (v uint64, ok bool, err error) {
	if len(r.buf) == 0 {
		return 0, false, nil
	}
	d, n, err := vint.Decode(r.buf)
	if err != nil {
		return 0, false, err
	}
	r.buf = r.buf[n:]
	if !r.started {
		r.cur = d
		r.started = true
	} else {
		r.cur = r.cur + d + 1
	}
	return r.cur, true, nil
}
