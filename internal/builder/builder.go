// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder implements the index builder: it consumes lines from
// a file, slides a 3-byte window over each line to emit trigrams into
// the growing database, and flushes chunk boundaries by line-count or
// byte-budget threshold. Trigrams are deduplicated per chunk with
// internal/trigramset before being recorded, so a chunk's repeated
// trigram never costs more than one posting entry.
package builder

import (
	"bufio"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/hakonhall/grop/internal/gropdb"
	"github.com/hakonhall/grop/internal/trigramset"
)

// maxTrigramValue bounds the trigramset backing array: 3 bytes, 2^24
// possible values.
const maxTrigramValue = 1 << 24

// Build reads lines from r and returns a database builder containing
// every trigram of every line, chunked by the given thresholds.
//
// The line-count flush test compares the running total line count
// across the whole file against linesPerChunk, not a counter that
// resets to zero at each chunk boundary. With linesPerChunk=16 this
// produces even-ish 16-line chunks in the common case, but a
// byte-budget flush partway through a 16-line span does not reset the
// line-count phase, so a later chunk can end up shorter than 16 lines.
func Build(r io.Reader, linesPerChunk, bytesPerChunk uint32, log *zap.SugaredLogger) *gropdb.Builder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if linesPerChunk == math.MaxUint32 && bytesPerChunk == math.MaxUint32 {
		log.Warnw("chunk thresholds are effectively disabled; the whole file becomes one chunk")
	}

	db := gropdb.NewBuilder()
	trig := trigramset.NewSet(maxTrigramValue)

	br := bufio.NewReader(r)
	var (
		totalBytes           uint32
		totalLines           uint32
		chunkID              uint32
		bytesSinceChunkStart uint32
		chunkNonEmpty        bool
	)

	for {
		line, err := br.ReadBytes('\n')
		if len(line) == 0 {
			break
		}
		totalBytes += uint32(len(line))
		bytesSinceChunkStart += uint32(len(line))
		chunkNonEmpty = true

		text := trimTerminator(line)
		for i := 0; i+3 <= len(text); i++ {
			key := uint32(text[i])<<16 | uint32(text[i+1])<<8 | uint32(text[i+2])
			before := trig.Len()
			trig.Add(key)
			if trig.Len() != before {
				db.AddTrigram([3]byte{text[i], text[i+1], text[i+2]}, chunkID)
			}
		}
		totalLines++

		flush := bytesSinceChunkStart > bytesPerChunk
		if linesPerChunk > 0 && totalLines%linesPerChunk == 0 {
			flush = true
		}
		if flush {
			db.AddChunkEnd(totalBytes, totalLines)
			chunkID++
			bytesSinceChunkStart = 0
			chunkNonEmpty = false
			trig.Reset()
		}

		if err != nil {
			break
		}
	}
	if chunkNonEmpty {
		db.AddChunkEnd(totalBytes, totalLines)
	}
	return db
}

// trimTerminator strips a trailing \n and \r from line; trigrams
// never span a line boundary, so terminator bytes are excluded from
// the sliding window.
func trimTerminator(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	if n > 0 && line[n-1] == '\r' {
		n--
	}
	return line[:n]
}
