// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandListsAllSubcommands(t *testing.T) {
	r := require.New(t)
	root := newRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	r.ElementsMatch([]string{"run", "db", "query"}, names)

	for _, cmd := range root.Commands() {
		r.NotEmpty(cmd.Short, "%s: missing Short help text", cmd.Name())
		r.NotEmpty(cmd.Long, "%s: missing Long help text", cmd.Name())
	}
	r.NotEmpty(root.Long, "root command: missing Long help text")
}

func TestCacheRootDoesNotDoubleTheGropSegment(t *testing.T) {
	r := require.New(t)
	dir, err := cacheRoot()
	r.NoError(err)
	r.NotContains(dir, "grop", "cacheRoot must not append \"grop\" itself; build.Open's cachePaths does that")
}
