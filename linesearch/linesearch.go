// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linesearch is the line-level matcher collaborator: the
// trigram index (query, internal/rewrite, queryeval) only narrows a
// regex search down to a stream of *candidate* chunk ids, which may
// contain false positives. linesearch re-scans each candidate chunk's
// byte range with a real regexp.Regexp and reports the matching lines.
package linesearch

import (
	"bufio"
	"bytes"
	"io"

	"github.com/hakonhall/grop/internal/gropdb"
)

// Match is one matching line.
type Match struct {
	// Line is the 1-based line number within the source file.
	Line uint32
	// Text is the matched line, without its terminator.
	Text []byte
}

// Search re-scans chunk in source against re and returns every
// matching line. byteStart and byteEnd delimit the chunk's bytes
// within source (byteEnd exclusive); lineBase is the number of lines
// that precede the chunk, so the chunk's first line is reported as
// lineBase+1.
func Search(re matcher, source io.ReaderAt, byteStart, byteEnd uint32, lineBase uint32) ([]Match, error) {
	buf := make([]byte, byteEnd-byteStart)
	if _, err := source.ReadAt(buf, int64(byteStart)); err != nil && err != io.EOF {
		return nil, err
	}

	var matches []Match
	lineNo := lineBase
	scanner := bufio.NewScanner(bytes.NewReader(buf))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if re.Match(line) {
			text := make([]byte, len(line))
			copy(text, line)
			matches = append(matches, Match{Line: lineNo, Text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// matcher is the subset of *regexp.Regexp that Search needs; defined
// as an interface so tests can substitute a trivial stand-in.
type matcher interface {
	Match([]byte) bool
}

// ChunkRange returns chunk c's byte range [start, end) and the number
// of lines preceding it, derived from db's chunk-ends arrays. The
// line base is chunk_end_line_count(c-1) (0 when c==0), not
// chunk_end_offset(c): a byte offset has nothing to do with line
// numbers, and using it would misnumber every match after the first
// chunk.
func ChunkRange(db *gropdb.Database, c uint32) (start, end, lineBase uint32) {
	end = db.ChunkEndOffset(c)
	if c == 0 {
		return 0, end, 0
	}
	return db.ChunkEndOffset(c - 1), end, db.ChunkEndLineCount(c - 1)
}
