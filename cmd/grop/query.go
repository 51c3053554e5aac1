// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"regexp/syntax"

	"github.com/spf13/cobra"

	"github.com/hakonhall/grop/internal/build"
	"github.com/hakonhall/grop/internal/rewrite"
	"github.com/hakonhall/grop/query"
	"github.com/hakonhall/grop/queryeval"
)

func newQueryCmd() *cobra.Command {
	var flags chunkFlags
	cmd := &cobra.Command{
		Use:   "query <pattern> <file>",
		Short: "build, rewrite, and print the candidate chunks and query tree for pattern",
		Long: `Build file's trigram index if needed, lower pattern into the
canonical AND/OR-of-trigrams query tree, rewrite it against the
index, and print the resolved tree followed by every candidate chunk
id it selects. Useful for inspecting how a pattern narrows the
search without running it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1], &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runQuery(pattern, path string, flags *chunkFlags) error {
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

	unresolved := query.Compile(ast)
	resolved := rewrite.Resolve(unresolved, db)
	fmt.Println(resolved.String())

	cur := queryeval.NewCursor(resolved, db.ChunkCount())
	for {
		ok, err := cur.Advance()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		fmt.Println(cur.Current())
	}
	return nil
}
