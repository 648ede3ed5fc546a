// Copyright (c) 2017,2019, AT&T Intellectual Property. All rights reserved
//
// Copyright (c) 2016-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package xmqerr holds the closed error taxonomy shared by the lexer, quote
// engine and parser. Every parse error carries a machine-readable Kind plus
// enough source position to render a caret diagnostic, in the shape of the
// teacher's schema package (schema.NewMissingChildError and friends), which
// wraps github.com/danos/mgmterror application errors with a Path/Message
// pair rather than building ad-hoc string errors.
package xmqerr

import (
	"fmt"
	"strings"

	"github.com/danos/mgmterror"
)

// Kind enumerates the closed set of syntax error categories a parse can
// fail with (spec.md §4.D "Error reporting").
type Kind int

const (
	QuoteNotClosed Kind = iota
	QuoteClosedWithTooManyQuotes
	CommentNotClosed
	CommentClosedWithTooManySlashes
	AttributesNotClosed
	BodyNotClosed
	CompoundNotClosed
	CompoundMayNotContain
	EntityNotClosed
	UnexpectedTab
	ExpectedContentAfterEquals
	InvalidChar
)

var kindNames = [...]string{
	QuoteNotClosed:                   "QuoteNotClosed",
	QuoteClosedWithTooManyQuotes:     "QuoteClosedWithTooManyQuotes",
	CommentNotClosed:                 "CommentNotClosed",
	CommentClosedWithTooManySlashes:  "CommentClosedWithTooManySlashes",
	AttributesNotClosed:              "AttributesNotClosed",
	BodyNotClosed:                    "BodyNotClosed",
	CompoundNotClosed:                "CompoundNotClosed",
	CompoundMayNotContain:            "CompoundMayNotContain",
	EntityNotClosed:                  "EntityNotClosed",
	UnexpectedTab:                    "UnexpectedTab",
	ExpectedContentAfterEquals:       "ExpectedContentAfterEquals",
	InvalidChar:                      "InvalidChar",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Hints carries up to five "last seen" source locations used to produce
// higher quality diagnostics, e.g. "the quote opened at line X column Y may
// need more single-quotes". Zero Line means the hint was never set.
type Hints struct {
	LastOpenBrace    Location // last '{' seen, matched or not
	LastOpenAttr     Location // last '(' seen, matched or not
	LastEquals       Location // last '='
	LastQuoteStart   Location // last quote's opening run
	LastSuspiciousQE Location // last quote end that looked like it needed more quotes
}

// Location is a single (line, column) source position.
type Location struct {
	Line int
	Col  int
}

func (l Location) set() bool { return l.Line > 0 }

// Error is the error type returned by the lexer, quote engine and parser.
// It satisfies the standard error interface and can additionally be
// rendered as a structured mgmterror application error via AsMgmtError,
// for embedding in a management-plane caller the way the teacher's own
// schema errors are.
type Error struct {
	Kind   Kind
	Line   int
	Col    int
	Near   string // a short snippet of source near the error
	Source string // the name the cursor was created with
	Hints  Hints
}

func New(kind Kind, line, col int, near, source string) *Error {
	return &Error{Kind: kind, Line: line, Col: col, Near: near, Source: source}
}

func (e *Error) WithHints(h Hints) *Error {
	e.Hints = h
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s", e.Source, e.Line, e.Col, e.message())
	if near := strings.TrimRight(e.Near, "\n"); near != "" {
		fmt.Fprintf(&b, "\n%s\n%s^", near, strings.Repeat(" ", caretOffset(near)))
	}
	if hint := e.hint(); hint != "" {
		fmt.Fprintf(&b, "\n%s", hint)
	}
	return b.String()
}

func caretOffset(near string) int {
	if i := strings.LastIndexByte(near, '\n'); i >= 0 {
		return len(near) - i - 1
	}
	return 0
}

func (e *Error) message() string {
	switch e.Kind {
	case QuoteNotClosed:
		return "quote is not closed"
	case QuoteClosedWithTooManyQuotes:
		return "quote closed with too many quotes"
	case CommentNotClosed:
		return "comment is not closed"
	case CommentClosedWithTooManySlashes:
		return "comment closed with too many slashes"
	case AttributesNotClosed:
		return "attributes are not closed, expected )"
	case BodyNotClosed:
		return "body is not closed, expected }"
	case CompoundNotClosed:
		return "compound is not closed, expected )"
	case CompoundMayNotContain:
		return "compound may only contain quotes and entities"
	case EntityNotClosed:
		return "entity is not closed, expected ;"
	case UnexpectedTab:
		return "unexpected tab character"
	case ExpectedContentAfterEquals:
		return "expected a value after ="
	case InvalidChar:
		return "invalid character outside of a quote"
	}
	return "syntax error"
}

func (e *Error) hint() string {
	switch e.Kind {
	case QuoteNotClosed, QuoteClosedWithTooManyQuotes:
		if e.Hints.LastSuspiciousQE.set() {
			h := e.Hints.LastSuspiciousQE
			return fmt.Sprintf("the quote ending at line %d column %d may need more single-quotes", h.Line, h.Col)
		}
		if e.Hints.LastQuoteStart.set() {
			h := e.Hints.LastQuoteStart
			return fmt.Sprintf("the quote opened at line %d column %d is not balanced", h.Line, h.Col)
		}
	case BodyNotClosed:
		if e.Hints.LastOpenBrace.set() {
			h := e.Hints.LastOpenBrace
			return fmt.Sprintf("the { opened at line %d column %d is never closed", h.Line, h.Col)
		}
	case AttributesNotClosed:
		if e.Hints.LastOpenAttr.set() {
			h := e.Hints.LastOpenAttr
			return fmt.Sprintf("the ( opened at line %d column %d is never closed", h.Line, h.Col)
		}
	case ExpectedContentAfterEquals:
		if e.Hints.LastEquals.set() {
			h := e.Hints.LastEquals
			return fmt.Sprintf("the = at line %d column %d expects a value", h.Line, h.Col)
		}
	}
	return ""
}

// AsMgmtError renders the error as a structured application error, for
// callers embedding this library in a management-plane context (the same
// shape schema.NewMissingChildError and friends produce in the teacher).
func (e *Error) AsMgmtError() error {
	me := mgmterror.NewOperationFailedApplicationError()
	me.Path = e.Source
	me.Message = e.Error()
	return me
}
