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

// ReadComment consumes a slash-delimited comment starting at the cursor's
// current position, which must be sitting on the first / of the opening
// run. Comments balance depth exactly like quotes (spec §4.C): a run of N
// consecutive / opens the comment, and the body extends to the next run of
// exactly N consecutive /. A run longer than N closes with too many
// slashes; a shorter run is just more comment text.
//
// Adjacent comments of the same depth, separated only by whitespace, are a
// single logical comment (original_source's xmq_parser.c comment
// continuation): ReadComment keeps consuming continuations and returns
// their bodies joined by a single newline.
func ReadComment(cur *cursor.Cursor, sourceName string) ([]byte, *xmqerr.Error) {
	body, depth, err := readCommentSegment(cur, sourceName)
	if err != nil {
		return nil, err
	}

	for {
		mark := saveCursor(cur)
		skipCommentWhitespace(cur)
		if cur.Peek() != '/' {
			restoreCursor(cur, mark)
			return body, nil
		}
		if runLenAt(cur) != depth {
			restoreCursor(cur, mark)
			return body, nil
		}
		next, nextDepth, err := readCommentSegment(cur, sourceName)
		if err != nil {
			return nil, err
		}
		_ = nextDepth // same as depth, enforced by runLenAt check above
		body = append(append(append([]byte{}, body...), '\n'), next...)
	}
}

func readCommentSegment(cur *cursor.Cursor, sourceName string) ([]byte, int, *xmqerr.Error) {
	startLine, startCol := cur.Line(), cur.Col()
	depth := 0
	for cur.Peek() == '/' {
		cur.Advance(1)
		depth++
	}

	bodyStart := cur.Pos()
	for {
		if cur.AtEOF() {
			return nil, depth, xmqerr.New(xmqerr.CommentNotClosed, startLine, startCol, "", sourceName)
		}
		if cur.Peek() == '/' {
			runLine, runCol := cur.Line(), cur.Col()
			runStart := cur.Pos()
			run := 0
			for cur.Peek() == '/' {
				cur.Advance(1)
				run++
			}
			switch {
			case run == depth:
				return cur.Slice(bodyStart, runStart), depth, nil
			case run > depth:
				return nil, depth, xmqerr.New(xmqerr.CommentClosedWithTooManySlashes, runLine, runCol, "", sourceName)
			default:
				continue
			}
		}
		cur.AdvanceRune()
	}
}

// runLenAt returns the length of the run of '/' characters starting at the
// cursor's current position, without consuming anything.
func runLenAt(cur *cursor.Cursor) int {
	mark := saveCursor(cur)
	n := 0
	for cur.Peek() == '/' {
		cur.Advance(1)
		n++
	}
	restoreCursor(cur, mark)
	return n
}

func skipCommentWhitespace(cur *cursor.Cursor) {
	for cursor.IsUnicodeSpace(cur.Peek()) {
		cur.AdvanceRune()
	}
}

// cursorMark is an opaque snapshot used to backtrack lookahead that turned
// out not to be a continuation.
type cursorMark struct {
	pos  cursor.Pos
	line int
	col  int
}

func saveCursor(cur *cursor.Cursor) cursorMark {
	return cursorMark{pos: cur.Pos(), line: cur.Line(), col: cur.Col()}
}

func restoreCursor(cur *cursor.Cursor, m cursorMark) {
	cur.Reset(m.pos, m.line, m.col)
}
