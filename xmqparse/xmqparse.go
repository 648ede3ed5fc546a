// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package xmqparse is Component D: a recursive-descent parser driven by an
// Actions callback interface, in the style of the teacher's parse.Tree
// (three-token lookahead over parse.Scope), but rebuilt for the XMQ
// grammar instead of YANG's. The parser itself never builds a concrete
// tree -- it only calls Actions methods, exactly as spec.md's component
// table requires ("Actions interface ... default Actions building the
// tree"), so a caller can drive SAX-like processing without ever
// allocating an xmqtree.Doc.
package xmqparse

import (
	"strings"

	"github.com/sdcio/xmq/lex"
	"github.com/sdcio/xmq/quote"
	"github.com/sdcio/xmq/xmqerr"
)

// Actions receives callbacks as the parser recognizes structure. DefaultActions
// implements it by building an xmqtree.Doc; a caller wanting streaming/SAX
// behavior (explicitly out of scope to build ourselves, per spec.md
// Non-goals) can still implement Actions directly against this interface.
type Actions interface {
	// Root is called once, before the outermost element is seen.
	Root() error
	// AppendElement begins a new element as a child of the current scope
	// and makes it the current scope; a matching EndElement call follows
	// once its attributes/body/value have been processed.
	AppendElement(namespace, name string, line, col int) error
	// EndElement closes the scope most recently opened by AppendElement.
	EndElement() error
	// AppendAttribute attaches a plain scalar attribute to the current
	// element. Used when the value did not require compound emission.
	AppendAttribute(namespace, name, value string, line, col int) error
	// AppendAttributeCompound attaches an attribute whose value had to be
	// split into fragments (spec.md §4.C compound emission).
	AppendAttributeCompound(namespace, name string, frags []quote.Fragment, line, col int) error
	// AppendData appends a text or quoted-text child to the current
	// element.
	AppendData(text string, line, col int) error
	// AppendEntity appends a single entity-reference child to the current
	// element.
	AppendEntity(name string, line, col int) error
	// AppendComment appends a comment child to the current element.
	AppendComment(text string, line, col int) error
	// AllocateCopy returns an owned copy of s. DefaultActions' implementation is
	// a plain string copy; it exists as a seam for callers that want to
	// intern names/values against their own arena instead.
	AllocateCopy(s string) string
}

// Parser drives Actions from a lex.Lexer. It holds no tree state of its
// own: all structure lives in whatever Actions chooses to build.
type Parser struct {
	lex        *lex.Lexer
	actions    Actions
	sourceName string
}

// New returns a Parser reading tokens from l and calling back into actions.
func New(l *lex.Lexer, actions Actions, sourceName string) *Parser {
	return &Parser{lex: l, actions: actions, sourceName: sourceName}
}

// Parse parses one document: a single root element, optionally preceded
// and followed by top-level comments.
func (p *Parser) Parse() *xmqerr.Error {
	if err := wrapErr(p.actions.Root()); err != nil {
		return err
	}
	for {
		tok, err := p.lex.PeekToken()
		if err != nil {
			return err
		}
		if tok.Type != lex.TokComment {
			break
		}
		p.lex.EatToken()
		if err := wrapErr(p.actions.AppendComment(tok.Text, tok.Line, tok.Col)); err != nil {
			return err
		}
	}
	if err := p.parseElement(); err != nil {
		return err
	}
	for {
		tok, err := p.lex.PeekToken()
		if err != nil {
			return err
		}
		switch tok.Type {
		case lex.TokEOF:
			return nil
		case lex.TokComment:
			p.lex.EatToken()
			if err := wrapErr(p.actions.AppendComment(tok.Text, tok.Line, tok.Col)); err != nil {
				return err
			}
		default:
			return xmqerr.New(xmqerr.InvalidChar, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		}
	}
}

func splitNamespace(s string) (ns, name string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "", s
}

// parseElement recognizes `name(attrs)? ( = value | { body } )?` (spec.md
// §4.D grammar) and drives AppendElement/EndElement around it.
func (p *Parser) parseElement() *xmqerr.Error {
	tok, err := p.lex.EatToken()
	if err != nil {
		return err
	}
	if tok.Type != lex.TokText {
		return xmqerr.New(xmqerr.InvalidChar, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
	}
	ns, name := splitNamespace(p.actions.AllocateCopy(tok.Text))
	if err := wrapErr(p.actions.AppendElement(ns, name, tok.Line, tok.Col)); err != nil {
		return err
	}

	peek, perr := p.lex.PeekToken()
	if perr != nil {
		return perr
	}
	if peek.Type == lex.TokParenOpen {
		p.lex.EatToken()
		if err := p.parseAttributes(); err != nil {
			return err
		}
	}

	peek, perr = p.lex.PeekToken()
	if perr != nil {
		return perr
	}
	switch peek.Type {
	case lex.TokEquals:
		p.lex.EatToken()
		if err := p.parseValue(); err != nil {
			return err
		}
	case lex.TokBraceOpen:
		p.lex.EatToken()
		if err := p.parseBody(); err != nil {
			return err
		}
	}

	return wrapErr(p.actions.EndElement())
}

// parseAttributes recognizes `(name=value name=value ...)`, already past
// the opening '('.
func (p *Parser) parseAttributes() *xmqerr.Error {
	for {
		tok, err := p.lex.PeekToken()
		if err != nil {
			return err
		}
		if tok.Type == lex.TokParenClose {
			p.lex.EatToken()
			return nil
		}
		if tok.Type == lex.TokEOF {
			return xmqerr.New(xmqerr.AttributesNotClosed, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		}
		if tok.Type != lex.TokText {
			return xmqerr.New(xmqerr.InvalidChar, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		}
		p.lex.EatToken()
		ns, name := splitNamespace(p.actions.AllocateCopy(tok.Text))

		eq, err := p.lex.EatToken()
		if err != nil {
			return err
		}
		if eq.Type != lex.TokEquals {
			return xmqerr.New(xmqerr.ExpectedContentAfterEquals, eq.Line, eq.Col, "", p.sourceName).WithHints(p.lex.Hints())
		}

		if err := p.parseAttributeValue(ns, name, eq.Line, eq.Col); err != nil {
			return err
		}
	}
}

// parseAttributeValue recognizes the value following an attribute's '=':
// a plain quoted/bare run, a compound `( ... )`, or a single entity.
func (p *Parser) parseAttributeValue(ns, name string, eqLine, eqCol int) *xmqerr.Error {
	tok, err := p.lex.PeekToken()
	if err != nil {
		return err
	}
	switch tok.Type {
	case lex.TokQuote, lex.TokText:
		p.lex.EatToken()
		return wrapErr(p.actions.AppendAttribute(ns, name, p.actions.AllocateCopy(tok.Text), tok.Line, tok.Col))
	case lex.TokEntity:
		p.lex.EatToken()
		return wrapErr(p.actions.AppendAttributeCompound(ns, name,
			[]quote.Fragment{{Kind: quote.FragEntity, Entity: tok.Text}}, tok.Line, tok.Col))
	case lex.TokParenOpen:
		p.lex.EatToken()
		frags, ferr := p.parseCompoundFragments()
		if ferr != nil {
			return ferr
		}
		return wrapErr(p.actions.AppendAttributeCompound(ns, name, frags, tok.Line, tok.Col))
	default:
		return xmqerr.New(xmqerr.ExpectedContentAfterEquals, eqLine, eqCol, "", p.sourceName).WithHints(p.lex.Hints())
	}
}

// parseValue recognizes the value following an element's '=', appending it
// as the element's content instead of as an attribute.
func (p *Parser) parseValue() *xmqerr.Error {
	tok, err := p.lex.PeekToken()
	if err != nil {
		return err
	}
	switch tok.Type {
	case lex.TokQuote, lex.TokText:
		p.lex.EatToken()
		return wrapErr(p.actions.AppendData(p.actions.AllocateCopy(tok.Text), tok.Line, tok.Col))
	case lex.TokEntity:
		p.lex.EatToken()
		return wrapErr(p.actions.AppendEntity(tok.Text, tok.Line, tok.Col))
	case lex.TokParenOpen:
		p.lex.EatToken()
		frags, ferr := p.parseCompoundFragments()
		if ferr != nil {
			return ferr
		}
		for _, f := range frags {
			switch f.Kind {
			case quote.FragText:
				if err := wrapErr(p.actions.AppendData(f.Text, tok.Line, tok.Col)); err != nil {
					return err
				}
			case quote.FragEntity:
				if err := wrapErr(p.actions.AppendEntity(f.Entity, tok.Line, tok.Col)); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return xmqerr.New(xmqerr.ExpectedContentAfterEquals, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
	}
}

// parseCompoundFragments recognizes a compound's contents, already past
// the opening '(': a sequence of quoted runs and entities with no
// separators required between them, per spec.md §4.C.
func (p *Parser) parseCompoundFragments() ([]quote.Fragment, *xmqerr.Error) {
	var frags []quote.Fragment
	for {
		tok, err := p.lex.PeekToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case lex.TokParenClose:
			p.lex.EatToken()
			return frags, nil
		case lex.TokQuote:
			p.lex.EatToken()
			frags = append(frags, quote.Fragment{Kind: quote.FragText, Text: tok.Text})
		case lex.TokEntity:
			p.lex.EatToken()
			frags = append(frags, quote.Fragment{Kind: quote.FragEntity, Entity: tok.Text})
		case lex.TokEOF:
			return nil, xmqerr.New(xmqerr.CompoundNotClosed, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		default:
			return nil, xmqerr.New(xmqerr.CompoundMayNotContain, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		}
	}
}

// parseBody recognizes an element's `{ ... }` body, already past the
// opening '{': a mix of child elements, comments, and literal content.
func (p *Parser) parseBody() *xmqerr.Error {
	for {
		tok, err := p.lex.PeekToken()
		if err != nil {
			return err
		}
		switch tok.Type {
		case lex.TokBraceClose:
			p.lex.EatToken()
			return nil
		case lex.TokComment:
			p.lex.EatToken()
			if err := wrapErr(p.actions.AppendComment(tok.Text, tok.Line, tok.Col)); err != nil {
				return err
			}
		case lex.TokQuote:
			p.lex.EatToken()
			if err := wrapErr(p.actions.AppendData(tok.Text, tok.Line, tok.Col)); err != nil {
				return err
			}
		case lex.TokEntity:
			p.lex.EatToken()
			if err := wrapErr(p.actions.AppendEntity(tok.Text, tok.Line, tok.Col)); err != nil {
				return err
			}
		case lex.TokText:
			if err := p.parseElement(); err != nil {
				return err
			}
		case lex.TokEOF:
			return xmqerr.New(xmqerr.BodyNotClosed, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		default:
			return xmqerr.New(xmqerr.InvalidChar, tok.Line, tok.Col, "", p.sourceName).WithHints(p.lex.Hints())
		}
	}
}

// wrapErr adapts an Actions implementation's plain error return into the
// *xmqerr.Error the parser's own call sites all return, so a caller who
// implements Actions with plain errors (e.g. an adapter) does not need to
// depend on xmqerr at all.
func wrapErr(err error) *xmqerr.Error {
	if err == nil {
		return nil
	}
	if xe, ok := err.(*xmqerr.Error); ok {
		return xe
	}
	return xmqerr.New(xmqerr.InvalidChar, 0, 0, err.Error(), "")
}
