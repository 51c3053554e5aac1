// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query implements the canonical boolean query tree over
// trigrams, produced by lowering a parsed regular expression, and its
// smart constructors. The tree is generic over its leaf payload (Meta)
// so that the same shape serves both the pre-rewrite tree (Meta is
// struct{}) and the post-rewrite tree (Meta is the resolved posting
// list bytes, attached by internal/rewrite) without a second type.
package query

import (
	"bytes"
	"sort"
	"strings"
)

// Op names the variant of a query Node.
type Op int

const (
	OpMatchAll Op = iota
	OpMatchNone
	OpTrigram
	OpOr
	OpAnd
)

// Node is one node of a canonical query tree. Or/And nodes have at
// least 2 children, sorted and deduplicated by the total order in
// Compare. Trigram nodes carry a 3-byte trigram and, once resolved by
// internal/rewrite, a Meta payload (e.g. the trigram's posting-list
// bytes).
type Node[M any] struct {
	Op       Op
	Tri      [3]byte
	Meta     M
	Children []*Node[M]
}

// MatchAll returns the absorbing MatchAll leaf (identity for And).
func MatchAll[M any]() *Node[M] {
	return &Node[M]{Op: OpMatchAll}
}

// MatchNone returns the absorbing MatchNone leaf (identity for Or).
func MatchNone[M any]() *Node[M] {
	return &Node[M]{Op: OpMatchNone}
}

// NewTrigram returns an unresolved (or resolved, if M carries
// resolution data) trigram leaf.
func NewTrigram[M any](t [3]byte, meta M) *Node[M] {
	return &Node[M]{Op: OpTrigram, Tri: t, Meta: meta}
}

// Or builds the canonical disjunction of children: MatchNone terms are
// dropped, a MatchAll term makes the whole thing MatchAll, nested Or
// nodes are flattened, and the remaining children are sorted and
// deduplicated. Returns the identity (MatchNone) if nothing remains,
// or the sole child if exactly one remains.
func Or[M any](children ...*Node[M]) *Node[M] {
	var flat []*Node[M]
	for _, c := range children {
		if c.Op == OpOr {
			flat = append(flat, c.Children...)
		} else {
			flat = append(flat, c)
		}
	}
	var kept []*Node[M]
	for _, c := range flat {
		if c.Op == OpMatchAll {
			return MatchAll[M]()
		}
		if c.Op == OpMatchNone {
			continue
		}
		kept = append(kept, c)
	}
	kept = sortDedup(kept)
	switch len(kept) {
	case 0:
		return MatchNone[M]()
	case 1:
		return kept[0]
	default:
		return &Node[M]{Op: OpOr, Children: kept}
	}
}

// And builds the canonical conjunction of children: MatchAll terms
// are dropped, a MatchNone term makes the whole thing MatchNone,
// nested And nodes are flattened, and the remaining children are
// sorted and deduplicated. Returns the identity (MatchAll) if nothing
// remains, or the sole child if exactly one remains.
func And[M any](children ...*Node[M]) *Node[M] {
	var flat []*Node[M]
	for _, c := range children {
		if c.Op == OpAnd {
			flat = append(flat, c.Children...)
		} else {
			flat = append(flat, c)
		}
	}
	var kept []*Node[M]
	for _, c := range flat {
		if c.Op == OpMatchNone {
			return MatchNone[M]()
		}
		if c.Op == OpMatchAll {
			continue
		}
		kept = append(kept, c)
	}
	kept = sortDedup(kept)
	switch len(kept) {
	case 0:
		return MatchAll[M]()
	case 1:
		return kept[0]
	default:
		return &Node[M]{Op: OpAnd, Children: kept}
	}
}

// Compare imposes the total order MatchAll < MatchNone < Trigram <
// Or < And, breaking ties lexicographically on trigram bytes (for two
// Trigram nodes) or on the child sequence (for two Or/And nodes). It
// never inspects Meta, so it is well defined even when M is not
// comparable.
func Compare[M any](a, b *Node[M]) int {
	if a.Op != b.Op {
		return int(a.Op) - int(b.Op)
	}
	switch a.Op {
	case OpTrigram:
		return bytes.Compare(a.Tri[:], b.Tri[:])
	case OpOr, OpAnd:
		for i := 0; i < len(a.Children) && i < len(b.Children); i++ {
			if c := Compare(a.Children[i], b.Children[i]); c != 0 {
				return c
			}
		}
		return len(a.Children) - len(b.Children)
	default:
		return 0
	}
}

func sortDedup[M any](nodes []*Node[M]) []*Node[M] {
	sort.Slice(nodes, func(i, j int) bool { return Compare(nodes[i], nodes[j]) < 0 })
	out := nodes[:0]
	for i, n := range nodes {
		if i == 0 || Compare(out[len(out)-1], n) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// String renders n as an indent-free s-expression, e.g. "Or[def, tom]"
// or "And[abc, bcd]", for the `query` CLI command's tree dump.
func (n *Node[M]) String() string {
	switch n.Op {
	case OpMatchAll:
		return "MatchAll"
	case OpMatchNone:
		return "MatchNone"
	case OpTrigram:
		return string(n.Tri[:])
	case OpOr, OpAnd:
		name := "Or"
		if n.Op == OpAnd {
			name = "And"
		}
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.String()
		}
		return name + "[" + strings.Join(parts, ", ") + "]"
	default:
		return "?"
	}
}
