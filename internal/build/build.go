// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package build implements the concurrent build protocol: a database
// path is derived by mirroring the source file's absolute path under a
// cache root, and at most one process builds it at a time, coordinated
// by a sibling lock file created with exclusive-create semantics.
// Callers that lose the race simply poll until either the lock clears
// or the database appears.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hakonhall/grop/internal/builder"
	"github.com/hakonhall/grop/internal/gropdb"
)

// MaxSleeps bounds how many times Open backs off waiting for another
// process' lock (or for a lost create-race) before giving up. A var,
// not a const, so tests can shrink both it and SleepInterval rather
// than waiting out the real 5-second timeout.
var MaxSleeps = 50

// SleepInterval is how long Open sleeps between polls.
var SleepInterval = 100 * time.Millisecond

// ErrOtherProcessBuilder is returned when MaxSleeps polls all still
// find the lock file held by another process.
var ErrOtherProcessBuilder = errors.New("build: another process is building this database")

// Open returns the database for sourcePath, building it first if
// necessary. cacheRoot is the directory under which databases are
// mirrored (e.g. the caller's os.UserCacheDir()); Open itself appends
// the "grop/db" segments. Discovering that root is the caller's
// responsibility, not this package's.
func Open(cacheRoot, sourcePath string, linesPerChunk, bytesPerChunk uint32, log *zap.SugaredLogger) (*gropdb.Database, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	// Resolve the source path up front: the cache layout mirrors the
	// absolute path, and error messages name the file unambiguously.
	sourcePath, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, err
	}
	dbPath, lockPath, err := cachePaths(cacheRoot, sourcePath)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		if lockHeld, err := exists(lockPath); err != nil {
			return nil, err
		} else if lockHeld {
			if attempt >= MaxSleeps {
				return nil, ErrOtherProcessBuilder
			}
			log.Debugw("waiting for build lock", "path", lockPath, "attempt", attempt)
			time.Sleep(SleepInterval)
			continue
		}

		if dbReady, err := exists(dbPath); err != nil {
			return nil, err
		} else if dbReady {
			return gropdb.Open(dbPath)
		}

		acquired, err := tryCreateLock(lockPath)
		if err != nil {
			return nil, err
		}
		if !acquired {
			// Lost the race to another process' exclusive create;
			// back off exactly as if we'd observed the lock file in
			// the first place.
			if attempt >= MaxSleeps {
				return nil, ErrOtherProcessBuilder
			}
			time.Sleep(SleepInterval)
			continue
		}

		db, buildErr := buildAndWrite(sourcePath, dbPath, linesPerChunk, bytesPerChunk, log)
		// The lock is released whether or not the build succeeded, so
		// a failed build never wedges the cache for later callers.
		rmErr := os.Remove(lockPath)
		if buildErr != nil {
			return nil, buildErr
		}
		if rmErr != nil {
			return nil, rmErr
		}
		return db, nil
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// tryCreateLock attempts to create path with O_EXCL semantics. It
// returns false, nil (not an error) if another process won the race.
func tryCreateLock(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, f.Close()
}

func buildAndWrite(sourcePath, dbPath string, linesPerChunk, bytesPerChunk uint32, log *zap.SugaredLogger) (*gropdb.Database, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Infow("building index", "source", sourcePath, "db", dbPath)
	b := builder.Build(f, linesPerChunk, bytesPerChunk, log)
	if err := b.WriteTo(dbPath); err != nil {
		return nil, fmt.Errorf("build: writing %s: %w", dbPath, err)
	}
	return gropdb.Open(dbPath)
}

// cachePaths derives the mirrored database path and its sibling lock
// path from sourcePath's absolute form, as
// "<cacheRoot>/grop/db/<abs-components-of-source>".
func cachePaths(cacheRoot, sourcePath string) (dbPath, lockPath string, err error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", "", err
	}
	abs = filepath.Clean(abs)
	vol := filepath.VolumeName(abs)
	rel := strings.TrimPrefix(abs[len(vol):], string(filepath.Separator))
	if vol != "" {
		// Keep the drive letter as a path component on Windows rather
		// than discarding it, so two files on different drives never
		// collide in the mirrored tree.
		rel = filepath.Join(strings.TrimSuffix(vol, ":"), rel)
	}
	dbPath = filepath.Join(cacheRoot, "grop", "db", rel)
	lockPath = dbPath + ".lock"
	return dbPath, lockPath, nil
}
