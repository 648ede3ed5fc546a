// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package lex implements Component B: a synchronous, single-lookahead
// tokenizer over a cursor.Cursor. Unlike the teacher's goroutine-and-channel
// scanner (parse/lex.go), this lexer never suspends and never runs on its
// own goroutine -- spec.md §5 rules out concurrency or I/O suspension
// anywhere in the parse path, so PeekToken/EatToken are plain synchronous
// calls the parser drives directly, in the same spirit as the teacher's
// next/peek/backup but without the channel machinery.
package lex

import (
	"github.com/sdcio/xmq/cursor"
	"github.com/sdcio/xmq/quote"
	"github.com/sdcio/xmq/xmqerr"
)

// TokenType identifies the kind of lexical item a Token carries (spec.md §3).
type TokenType int

const (
	TokEOF TokenType = iota
	TokEquals
	TokBraceOpen
	TokBraceClose
	TokParenOpen
	TokParenClose
	TokQuote
	TokEntity
	TokComment
	TokText
)

var tokenNames = [...]string{
	TokEOF:        "EOF",
	TokEquals:     "Equals",
	TokBraceOpen:  "BraceOpen",
	TokBraceClose: "BraceClose",
	TokParenOpen:  "ParenOpen",
	TokParenClose: "ParenClose",
	TokQuote:      "Quote",
	TokEntity:     "Entity",
	TokComment:    "Comment",
	TokText:       "Text",
}

func (t TokenType) String() string {
	if int(t) < 0 || int(t) >= len(tokenNames) {
		return "Unknown"
	}
	return tokenNames[t]
}

// Token is one lexical item: its type, decoded text (quotes and entities
// arrive already unescaped/destripped), and the source position it started
// at, used by the parser to build diagnostics and hints.
type Token struct {
	Type TokenType
	Text string
	Line int
	Col  int
}

// Lexer wraps a cursor.Cursor with a single token of lookahead. Quote and
// comment bodies are read through the quote package, which owns depth
// balancing and incidental-indentation stripping; Lexer only classifies
// what kind of token starts at the cursor's position.
type Lexer struct {
	cur        *cursor.Cursor
	sourceName string
	lookahead  *Token
	hints      xmqerr.Hints
}

// New returns a Lexer reading from cur. sourceName is threaded into errors.
func New(cur *cursor.Cursor, sourceName string) *Lexer {
	return &Lexer{cur: cur, sourceName: sourceName}
}

// Hints returns the location hints accumulated so far, for a caller that
// wants to attach them to a parse error.
func (l *Lexer) Hints() xmqerr.Hints { return l.hints }

// PeekToken returns the next token without consuming it, caching it so a
// subsequent PeekToken or EatToken does not re-scan.
func (l *Lexer) PeekToken() (Token, *xmqerr.Error) {
	if l.lookahead != nil {
		return *l.lookahead, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.lookahead = &tok
	return tok, nil
}

// EatToken consumes and returns the current lookahead token, scanning it
// first if PeekToken was not already called.
func (l *Lexer) EatToken() (Token, *xmqerr.Error) {
	tok, err := l.PeekToken()
	if err != nil {
		return Token{}, err
	}
	l.lookahead = nil
	return tok, nil
}

func (l *Lexer) skipInsignificantSpace() {
	for {
		r := l.cur.Peek()
		if r == ' ' || r == '\r' || r == '\n' {
			l.cur.Advance(1)
			continue
		}
		if cursor.IsUnicodeSpace(r) && r != '\t' {
			l.cur.AdvanceRune()
			continue
		}
		return
	}
}

func (l *Lexer) scan() (Token, *xmqerr.Error) {
	l.skipInsignificantSpace()

	line, col := l.cur.Line(), l.cur.Col()
	r := l.cur.Peek()

	switch r {
	case cursor.EOF:
		return Token{Type: TokEOF, Line: line, Col: col}, nil
	case '\t':
		return Token{}, xmqerr.New(xmqerr.UnexpectedTab, line, col, "", l.sourceName)
	case '=':
		l.cur.Advance(1)
		l.hints.LastEquals = xmqerr.Location{Line: line, Col: col}
		return Token{Type: TokEquals, Line: line, Col: col}, nil
	case '{':
		l.cur.Advance(1)
		l.hints.LastOpenBrace = xmqerr.Location{Line: line, Col: col}
		return Token{Type: TokBraceOpen, Line: line, Col: col}, nil
	case '}':
		l.cur.Advance(1)
		return Token{Type: TokBraceClose, Line: line, Col: col}, nil
	case '(':
		l.cur.Advance(1)
		l.hints.LastOpenAttr = xmqerr.Location{Line: line, Col: col}
		return Token{Type: TokParenOpen, Line: line, Col: col}, nil
	case ')':
		l.cur.Advance(1)
		return Token{Type: TokParenClose, Line: line, Col: col}, nil
	case '\'':
		return l.scanQuote(line, col)
	case '&':
		return l.scanEntity(line, col)
	case '/':
		if next, _ := l.cur.Peek2(); next == '/' {
			return l.scanComment(line, col)
		}
		return l.scanText(line, col)
	default:
		return l.scanText(line, col)
	}
}

func (l *Lexer) scanQuote(line, col int) (Token, *xmqerr.Error) {
	l.hints.LastQuoteStart = xmqerr.Location{Line: line, Col: col}
	body, _, err := quote.ReadQuote(l.cur, l.sourceName)
	if err != nil {
		l.hints.LastSuspiciousQE = xmqerr.Location{Line: l.cur.Line(), Col: l.cur.Col()}
		return Token{}, err.WithHints(l.hints)
	}
	return Token{Type: TokQuote, Text: string(body), Line: line, Col: col}, nil
}

func (l *Lexer) scanComment(line, col int) (Token, *xmqerr.Error) {
	body, err := quote.ReadComment(l.cur, l.sourceName)
	if err != nil {
		return Token{}, err.WithHints(l.hints)
	}
	return Token{Type: TokComment, Text: string(body), Line: line, Col: col}, nil
}

// scanEntity reads `&name;`, returning name without the surrounding markers.
func (l *Lexer) scanEntity(line, col int) (Token, *xmqerr.Error) {
	l.cur.Advance(1) // consume '&'
	start := l.cur.Pos()
	for {
		if l.cur.AtEOF() {
			return Token{}, xmqerr.New(xmqerr.EntityNotClosed, line, col, "", l.sourceName)
		}
		if l.cur.Peek() == ';' {
			name := l.cur.SliceString(start, l.cur.Pos())
			l.cur.Advance(1)
			return Token{Type: TokEntity, Text: name, Line: line, Col: col}, nil
		}
		if cursor.ReservedChar(l.cur.Peek()) {
			return Token{}, xmqerr.New(xmqerr.EntityNotClosed, line, col, "", l.sourceName)
		}
		l.cur.AdvanceRune()
	}
}

// scanText reads a run of non-reserved characters as a bare Text token
// (spec §3/§4.B): element/attribute names and unquoted scalar values.
func (l *Lexer) scanText(line, col int) (Token, *xmqerr.Error) {
	start := l.cur.Pos()
	for {
		r := l.cur.Peek()
		if r == cursor.EOF || cursor.ReservedChar(r) || r == '&' {
			break
		}
		if r == '/' {
			if next, _ := l.cur.Peek2(); next == '/' {
				break
			}
		}
		l.cur.AdvanceRune()
	}
	if l.cur.Pos() == start {
		return Token{}, xmqerr.New(xmqerr.InvalidChar, line, col, "", l.sourceName)
	}
	return Token{Type: TokText, Text: l.cur.SliceString(start, l.cur.Pos()), Line: line, Col: col}, nil
}
