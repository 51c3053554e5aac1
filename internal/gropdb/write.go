// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gropdb

import "os"

// writeFileAtomic writes data to path via a temporary sibling file and
// a rename, so a reader never observes a partially-written database.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + "~"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
