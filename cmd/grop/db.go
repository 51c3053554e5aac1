// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hakonhall/grop/internal/build"
)

func newDBCmd() *cobra.Command {
	var flags chunkFlags
	cmd := &cobra.Command{
		Use:   "db <file>",
		Short: "build the index for file (if needed) and print statistics",
		Long: `Build file's trigram index if it is not already cached, then print
its chunk count, trigram count, and the byte size of each on-disk
section (trie, inventory, chunk-end offsets, chunk-end line counts).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDB(args[0], &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runDB(path string, flags *chunkFlags) error {
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

	sizes := db.SectionSizes()
	fmt.Printf("chunks:      %d\n", db.ChunkCount())
	fmt.Printf("trigrams:    %d\n", db.TrigramCount())
	fmt.Printf("trie bytes:  %d\n", sizes.Trie)
	fmt.Printf("inv bytes:   %d\n", sizes.Inventory)
	fmt.Printf("ends bytes:  %d\n", sizes.ChunkEnds)
	fmt.Printf("lines bytes: %d\n", sizes.LineEnds)
	fmt.Printf("total bytes: %d\n", sizes.Total)
	return nil
}
