// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import "regexp/syntax"

// Unresolved is the Meta type of a query tree before internal/rewrite
// resolves each trigram leaf against a database.
type Unresolved = struct{}

// Compile lowers a parsed regular expression into a canonical,
// unresolved query tree:
//
//   - empty match, character classes, and zero-width assertions
//     (begin/end line or text, word boundaries) over-approximate to
//     MatchAll: none of them can be narrowed to a required trigram.
//   - a literal shorter than 3 bytes is MatchAll; otherwise it is the
//     conjunction of every contiguous 3-byte window.
//   - a repetition whose max is 0 is MatchNone; a repetition whose min
//     is 0 is MatchAll (the occurrence isn't guaranteed); otherwise
//     its trigrams come from its body.
//   - concatenation is a conjunction; alternation is a disjunction.
//
// Apart from the max-0 repetition rule, the resulting tree only ever
// over-approximates: every chunk it rules out truly cannot match, but
// a chunk it lets through must still be checked with the real regexp.
// A max-0 repetition matches the empty string, yet it lowers to
// MatchNone, so a pattern whose conjunction contains one rules out
// every chunk.
//
// re should be the AST syntax.Parse returns, not its Simplify()'d
// form: Simplify rewrites a zero-max Repeat straight to OpEmptyMatch,
// which would lose the Max==0 information the OpRepeat case below
// needs to produce MatchNone. Compile's own switch already handles
// OpStar/OpQuest/OpPlus/OpRepeat directly, so nothing is gained by
// simplifying first.
func Compile(re *syntax.Regexp) *Node[Unresolved] {
	switch re.Op {
	case syntax.OpLiteral:
		return literalQuery(re.Rune)

	case syntax.OpCapture:
		return Compile(re.Sub[0])

	case syntax.OpConcat:
		children := make([]*Node[Unresolved], len(re.Sub))
		for i, sub := range re.Sub {
			children[i] = Compile(sub)
		}
		return And(children...)

	case syntax.OpAlternate:
		children := make([]*Node[Unresolved], len(re.Sub))
		for i, sub := range re.Sub {
			children[i] = Compile(sub)
		}
		return Or(children...)

	case syntax.OpPlus:
		// min=1: the body must occur at least once.
		return Compile(re.Sub[0])

	case syntax.OpStar, syntax.OpQuest:
		// min=0: no occurrence is guaranteed.
		return MatchAll[Unresolved]()

	case syntax.OpRepeat:
		if re.Max == 0 {
			return MatchNone[Unresolved]()
		}
		if re.Min == 0 {
			return MatchAll[Unresolved]()
		}
		return Compile(re.Sub[0])

	case syntax.OpEmptyMatch,
		syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return MatchAll[Unresolved]()

	default:
		// Unrecognised node kinds over-approximate to MatchAll, the
		// conservative choice for anything the compiler doesn't
		// specifically understand.
		return MatchAll[Unresolved]()
	}
}

// literalQuery lowers a literal's runes into the conjunction of every
// contiguous 3-byte window of its UTF-8 encoding.
func literalQuery(runes []rune) *Node[Unresolved] {
	b := []byte(string(runes))
	if len(b) < 3 {
		return MatchAll[Unresolved]()
	}
	var trigrams []*Node[Unresolved]
	for i := 0; i+3 <= len(b); i++ {
		trigrams = append(trigrams, NewTrigram[Unresolved]([3]byte{b[i], b[i+1], b[i+2]}, Unresolved{}))
	}
	return And(trigrams...)
}
