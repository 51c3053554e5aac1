// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command grop is a regex search tool accelerated by an on-disk
// trigram index, built on demand and cached per source file. One
// cobra command tree covers every concern: run searches, db reports
// index statistics, and query exposes the rewritten query tree for
// debugging.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
