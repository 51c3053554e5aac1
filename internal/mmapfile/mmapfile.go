// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmapfile memory-maps a file read-only and exposes its
// contents as a zero-copy byte slice, built on golang.org/x/sys so the
// whole database can be read without ever copying its bytes into the
// Go heap.
package mmapfile

import "os"

// File is a read-only memory-mapped file.
type File struct {
	f    *os.File
	data []byte
}

// Open memory-maps the file at path read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		f.Close()
		return &File{data: []byte{}}, nil
	}
	data, err := mmap(f, size)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{f: f, data: data}, nil
}

// Data returns the zero-copy byte slice backing the file.
func (m *File) Data() []byte {
	return m.data
}

// Close unmaps the file and closes its descriptor.
func (m *File) Close() error {
	if m.f == nil {
		return nil
	}
	err := munmap(m.data)
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
