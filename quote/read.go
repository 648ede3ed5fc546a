// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package quote

import (
	"github.com/sdcio/xmq/cursor"
	"github.com/sdcio/xmq/xmqerr"
)

// ReadQuote consumes a quoted run starting at the cursor's current position,
// which must be sitting on the first ' of the opening run. It returns the
// unquoted, incidentally-destripped payload (spec §4.C) and the column the
// opening quote started at, which the caller threads into diagnostics and
// the caller may need for nested re-emission.
func ReadQuote(cur *cursor.Cursor, sourceName string) (payload []byte, openCol int, err *xmqerr.Error) {
	startLine, startCol := cur.Line(), cur.Col()
	depth := 0
	for cur.Peek() == '\'' {
		cur.Advance(1)
		depth++
	}
	if depth == 2 {
		return nil, startCol, nil
	}

	bodyStart := cur.Pos()
	for {
		if cur.AtEOF() {
			return nil, startCol, xmqerr.New(xmqerr.QuoteNotClosed, startLine, startCol, "", sourceName)
		}
		if cur.Peek() == '\'' {
			runLine, runCol := cur.Line(), cur.Col()
			runStart := cur.Pos()
			run := 0
			for cur.Peek() == '\'' {
				cur.Advance(1)
				run++
			}
			switch {
			case run == depth:
				body := cur.Slice(bodyStart, runStart)
				return StripIncidental(body, startCol), startCol, nil
			case run > depth:
				return nil, startCol, xmqerr.New(xmqerr.QuoteClosedWithTooManyQuotes, runLine, runCol, "", sourceName)
			default:
				// run < depth: a literal run of quotes, part of the body.
				continue
			}
		}
		cur.AdvanceRune()
	}
}

// trimEdges applies the leading/trailing whitespace policy of spec §4.C: if
// the body (as a whole) opens with `spaces*, newline` the newline and
// everything before it is dropped; if it closes with `newline, spaces*` that
// newline and everything after it is dropped. Both cuts are computed
// against the original body independently, not chained -- a body that is
// only whitespace either side of a single newline collapses to empty even
// though neither cut alone would reach past the newline.
func trimEdges(body []byte) (trimmed []byte, leadingNewlineCut bool) {
	lead := 0
	for lead < len(body) && (body[lead] == ' ' || body[lead] == '\t') {
		lead++
	}
	leadingCut := 0
	if lead < len(body) && body[lead] == '\n' {
		leadingCut = lead + 1
		leadingNewlineCut = true
	}

	trail := len(body)
	for trail > 0 && (body[trail-1] == ' ' || body[trail-1] == '\t') {
		trail--
	}
	trailingCut := 0
	if trail > 0 && body[trail-1] == '\n' {
		trailingCut = len(body) - trail + 1
	}

	start, end := leadingCut, len(body)-trailingCut
	if end < start {
		return nil, leadingNewlineCut
	}
	return body[start:end], leadingNewlineCut
}

// StripIncidental removes the incidental indentation of a multi-line quoted
// body (spec §4.C). openCol is the 1-based column the opening quote
// character appeared at in the source; it is treated as the assumed
// indentation of the body's first line, so that content which continues on
// the same line as the opening quote aligns correctly against content
// indented on subsequent lines.
func StripIncidental(body []byte, openCol int) []byte {
	hasNL := false
	for _, b := range body {
		if b == '\n' {
			hasNL = true
			break
		}
	}
	if !hasNL {
		return body
	}

	trimmed, leadingNewlineCut := trimEdges(body)
	if len(trimmed) == 0 {
		return trimmed
	}
	// The virtual indent bonus only applies to line 0 when it is still the
	// same physical source line the opening quote sat on -- i.e. no
	// leading-newline trim happened. Once a leading newline is cut, line 0
	// of the trimmed body is a fresh physical line with only its own real
	// leading whitespace to measure.
	firstLineVirtual := !leadingNewlineCut

	lines := splitLines(trimmed)
	leading := make([]int, len(lines))
	minIndent := -1
	for idx, line := range lines {
		n := 0
		for n < len(line) && line[n] == ' ' {
			n++
		}
		leading[idx] = n
		if n == len(line) {
			continue // whitespace-only line never lowers the common indent
		}
		indent := n
		if idx == 0 && firstLineVirtual {
			indent += openCol - 1
		}
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	out := make([][]byte, len(lines))
	for idx, line := range lines {
		remove := minIndent
		if idx == 0 && firstLineVirtual {
			remove -= openCol - 1
		}
		if remove < 0 {
			remove = 0
		}
		if remove > leading[idx] {
			remove = leading[idx]
		}
		out[idx] = line[remove:]
	}
	return joinLines(out)
}

func splitLines(body []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range body {
		if b == '\n' {
			lines = append(lines, body[start:i])
			start = i + 1
		}
	}
	lines = append(lines, body[start:])
	return lines
}

func joinLines(lines [][]byte) []byte {
	total := 0
	for i, l := range lines {
		total += len(l)
		if i > 0 {
			total++
		}
	}
	out := make([]byte, 0, total)
	for i, l := range lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, l...)
	}
	return out
}
