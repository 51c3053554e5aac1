// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"regexp"
	"regexp/syntax"

	"github.com/spf13/cobra"

	"github.com/hakonhall/grop/internal/build"
	"github.com/hakonhall/grop/internal/rewrite"
	"github.com/hakonhall/grop/linesearch"
	"github.com/hakonhall/grop/query"
	"github.com/hakonhall/grop/queryeval"
)

func newRunCmd() *cobra.Command {
	var flags chunkFlags
	cmd := &cobra.Command{
		Use:   "run <pattern> <file>",
		Short: "search file for pattern, printing line-number:line for each match",
		Long: `Search file for pattern, building (or reusing) its trigram index
first. The index narrows the search to a small set of candidate
chunks; each candidate is then re-scanned with a real regular
expression engine, so the index only ever rules out regions of the
file, never confirms a match on its own.

Output is one "line-number:line" pair per match, in file order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1], &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runSearch(pattern, path string, flags *chunkFlags) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("parsing pattern: %w", err)
	}
	ast, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return fmt.Errorf("parsing pattern: %w", err)
	}

	root, err := cacheRoot()
	if err != nil {
		return err
	}
	log := newLogger(flags.verbose)
	db, err := build.Open(root, path, flags.lines, flags.bytes, log)
	if err != nil {
		return err
	}
	defer db.Close()

	resolved := rewrite.Resolve(query.Compile(ast), db)
	cur := queryeval.NewCursor(resolved, db.ChunkCount())

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for {
		ok, err := cur.Advance()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		chunk := uint32(cur.Current())
		start, end, lineBase := linesearch.ChunkRange(db, chunk)
		matches, err := linesearch.Search(re, f, start, end, lineBase)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Printf("%d:%s\n", m.Line, m.Text)
		}
	}
	return nil
}
