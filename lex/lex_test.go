// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package lex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdcio/xmq/cursor"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	cur := cursor.New("t", []byte(src))
	l := New(cur, "t")
	var toks []Token
	for {
		tok, err := l.EatToken()
		require.Nil(t, err)
		toks = append(toks, tok)
		if tok.Type == TokEOF {
			return toks
		}
	}
}

func TestLexSimpleKeyValue(t *testing.T) {
	toks := tokenize(t, "alfa = 'beta'")
	require.Equal(t, []TokenType{TokText, TokEquals, TokQuote, TokEOF}, types(toks))
	require.Equal(t, "alfa", toks[0].Text)
	require.Equal(t, "beta", toks[2].Text)
}

func TestLexElementWithAttributesAndBody(t *testing.T) {
	toks := tokenize(t, "alfa(name=beta) { gamma = 1 }")
	require.Equal(t, []TokenType{
		TokText, TokParenOpen, TokText, TokEquals, TokText, TokParenClose,
		TokBraceOpen, TokText, TokEquals, TokText, TokBraceClose, TokEOF,
	}, types(toks))
}

func TestLexEntity(t *testing.T) {
	toks := tokenize(t, "&amp;")
	require.Equal(t, TokEntity, toks[0].Type)
	require.Equal(t, "amp", toks[0].Text)
}

func TestLexComment(t *testing.T) {
	toks := tokenize(t, "// a comment //\nalfa")
	require.Equal(t, TokComment, toks[0].Type)
	require.Equal(t, " a comment ", toks[0].Text)
	require.Equal(t, TokText, toks[1].Type)
}

func TestLexUnexpectedTab(t *testing.T) {
	cur := cursor.New("t", []byte("alfa\t= 1"))
	l := New(cur, "t")
	_, err := l.EatToken() // alfa
	require.Nil(t, err)
	_, err = l.EatToken()
	require.NotNil(t, err)
	require.Equal(t, "UnexpectedTab", err.Kind.String())
}

func TestPeekTokenDoesNotConsume(t *testing.T) {
	cur := cursor.New("t", []byte("alfa beta"))
	l := New(cur, "t")
	first, err := l.PeekToken()
	require.Nil(t, err)
	require.Equal(t, "alfa", first.Text)
	second, err := l.PeekToken()
	require.Nil(t, err)
	require.Equal(t, first, second)
	third, err := l.EatToken()
	require.Nil(t, err)
	require.Equal(t, first, third)
	fourth, err := l.EatToken()
	require.Nil(t, err)
	require.Equal(t, "beta", fourth.Text)
}

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}
