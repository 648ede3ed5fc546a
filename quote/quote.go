// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package quote implements the XMQ quote-balancing and incidental-
// indentation algorithm described in spec.md §4.C: reading a quoted run
// from source (ReadQuote), reading a slash-delimited comment (ReadComment),
// and the inverse — deciding how many quote characters a payload needs and
// whether it must be emitted as a compound (Emit).
package quote

// FragKind distinguishes the two kinds of fragment a compound `( ... )` is
// built from: a quoted text run, or a single entity reference.
type FragKind int

const (
	FragText FragKind = iota
	FragEntity
)

// Fragment is one piece of a compound value: either a literal run of text
// (to be rendered as a quoted run) or an entity name (without the
// surrounding &...;).
type Fragment struct {
	Kind   FragKind
	Text   string // valid when Kind == FragText
	Entity string // valid when Kind == FragEntity, e.g. "10", "amp"
}

// maxQuoteRun returns the length of the longest run of consecutive ' bytes
// in s, or 0 if s contains no quote character.
func maxQuoteRun(s string) int {
	max, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}
	return max
}

// RequiredDepth returns the minimal N >= 1 such that no run of N
// consecutive ' characters occurs in s. Spec §8 "Depth minimality".
// Callers must ensure s does not begin or end with a ' character -- such
// payloads are ambiguous for any N (the boundary quote merges with the
// delimiter) and must instead be split into fragments by Emit.
//
// N == 2 is skipped: a bare run of two ' characters is reserved to denote
// the empty string (spec.md §4.C), never a genuine opening depth, so any
// payload whose natural minimum would land on 2 is bumped to 3 instead.
func RequiredDepth(s string) int {
	n := maxQuoteRun(s) + 1
	if n == 2 {
		n = 3
	}
	return n
}
