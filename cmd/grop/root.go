// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hakonhall/grop/internal/grolog"
)

// chunkFlags holds the --chunk-bytes/--chunk-lines pair every
// subcommand exposes to control how the builder splits a file into
// chunks.
type chunkFlags struct {
	bytes   uint32
	lines   uint32
	verbose bool
}

func (f *chunkFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32Var(&f.bytes, "chunk-bytes", math.MaxUint32, "flush a chunk after this many bytes")
	cmd.Flags().Uint32Var(&f.lines, "chunk-lines", 0, "flush a chunk after this many lines (0 disables line-count flushing)")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "print extra diagnostic information")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "grop",
		Short: "regex search accelerated by a trigram index",
		Long: `grop searches a single large text file for lines matching a
regular expression, skipping regions of the file that provably
contain none of the required three-byte substrings of any matching
line.

On first use against a given file, grop builds a persistent,
content-addressed trigram index under the user cache directory and
reuses it on subsequent invocations. The "run" subcommand performs a
search, "db" builds (or reuses) the index and reports statistics
about it, and "query" shows the canonical trigram query a pattern
rewrites to along with the candidate chunks it selects.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(), newDBCmd(), newQueryCmd())
	return root
}

// cacheRoot returns the directory under which database files are
// mirrored. Resolving it is intentionally this shallow: it defers
// entirely to os.UserCacheDir rather than doing its own XDG-style
// discovery. build.Open's cachePaths appends the "grop" path segment
// itself, so this must not add one too.
func cacheRoot() (string, error) {
	return os.UserCacheDir()
}

func newLogger(verbose bool) *zap.SugaredLogger {
	logger, err := grolog.New(verbose)
	if err != nil {
		return grolog.Nop()
	}
	return logger
}
