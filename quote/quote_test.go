// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package quote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdcio/xmq/cursor"
)

func TestReadQuoteEmpty(t *testing.T) {
	cur := cursor.New("t", []byte("''"))
	body, _, err := ReadQuote(cur, "t")
	require.Nil(t, err)
	require.Nil(t, body)
}

func TestReadQuoteSimple(t *testing.T) {
	cur := cursor.New("t", []byte("'hello'"))
	body, _, err := ReadQuote(cur, "t")
	require.Nil(t, err)
	require.Equal(t, "hello", string(body))
}

func TestReadQuoteContainingSingleQuote(t *testing.T) {
	cur := cursor.New("t", []byte("'''There's a man.'''"))
	body, _, err := ReadQuote(cur, "t")
	require.Nil(t, err)
	require.Equal(t, "There's a man.", string(body))
}

func TestReadQuoteNotClosed(t *testing.T) {
	cur := cursor.New("t", []byte("'oops"))
	_, _, err := ReadQuote(cur, "t")
	require.NotNil(t, err)
	require.Equal(t, "QuoteNotClosed", err.Kind.String())
}

func TestReadQuoteTooManyQuotes(t *testing.T) {
	cur := cursor.New("t", []byte("'a''b'"))
	_, _, err := ReadQuote(cur, "t")
	require.NotNil(t, err)
	require.Equal(t, "QuoteClosedWithTooManyQuotes", err.Kind.String())
}

// Spec scenario 5: `alfa = 'hello\n world'` where the opening quote sits at
// column 8 strips to "hello\nworld".
func TestStripIncidentalVirtualFirstLineIndent(t *testing.T) {
	body := []byte("hello\n world")
	out := StripIncidental(body, 8)
	require.Equal(t, "hello\nworld", string(out))
}

func TestStripIncidentalTrimsWhitespaceOnlyBody(t *testing.T) {
	body := []byte("  \n  ")
	out := StripIncidental(body, 1)
	require.Equal(t, "", string(out))
}

func TestStripIncidentalCommonIndentAcrossLines(t *testing.T) {
	body := []byte("\n    alfa\n    beta\n    ")
	out := StripIncidental(body, 5)
	require.Equal(t, "alfa\nbeta", string(out))
}

func TestRequiredDepthMinimality(t *testing.T) {
	require.Equal(t, 1, RequiredDepth("plain"))
	// A single embedded ' would naturally compute to depth 2, but depth 2
	// is reserved for the empty-string marker, so this jumps to 3.
	require.Equal(t, 3, RequiredDepth("has 'one' quote run"))
	require.Equal(t, 4, RequiredDepth("embedded '''triple'''"))
}

func TestRenderQuotedRunRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "has 'one' quote run", "embedded '''triple'''"} {
		rendered := RenderQuotedRun(s)
		cur := cursor.New("t", rendered)
		body, _, err := ReadQuote(cur, "t")
		require.Nil(t, err)
		require.Equal(t, s, string(body))
	}
}

func TestNeedsCompoundBoundaryQuote(t *testing.T) {
	require.True(t, NeedsCompound("'leading", EmitOptions{}))
	require.True(t, NeedsCompound("trailing'", EmitOptions{}))
	require.True(t, NeedsCompound("'surrounded'", EmitOptions{}))
	require.False(t, NeedsCompound("not touching quotes", EmitOptions{}))
}

func TestNeedsCompoundCompactControlChars(t *testing.T) {
	require.True(t, NeedsCompound("line1\nline2", EmitOptions{Compact: true}))
	require.False(t, NeedsCompound("line1\nline2", EmitOptions{Compact: false}))
}

func TestNeedsCompoundAttributeWhitespace(t *testing.T) {
	require.True(t, NeedsCompound(" padded", EmitOptions{IsAttribute: true}))
	require.True(t, NeedsCompound("padded ", EmitOptions{IsAttribute: true}))
	require.False(t, NeedsCompound("padded", EmitOptions{IsAttribute: true}))
}

// Spec §8's worked line_printf example: a `more=` field whose value is three
// quote characters, "===", and three more quote characters must render as
// three leading &#39; entities, a quoted "===" run, and three trailing
// &#39; entities -- never as a single quoted run at any depth, since the
// boundary quotes would be swallowed by the decoder's opening-run count.
func TestSplitFragmentsBoundaryQuotes(t *testing.T) {
	frags := splitFragments("'''===='''", false)
	require.True(t, len(frags) >= 3)
	require.Equal(t, FragEntity, frags[0].Kind)
	require.Equal(t, entityApos, frags[0].Entity)
	require.Equal(t, FragEntity, frags[len(frags)-1].Kind)
	require.Equal(t, entityApos, frags[len(frags)-1].Entity)

	// Fragments join with no separator: three boundary entities, the
	// quoted middle run, three more boundary entities.
	rendered := RenderCompound(frags)
	require.Equal(t, "(&#39;&#39;&#39;'===='&#39;&#39;&#39;)", string(rendered))
}

func TestEmitCompactControlCharsFragments(t *testing.T) {
	_, frags := Emit("a\tb\nc", EmitOptions{Compact: true})
	require.NotNil(t, frags)
	var sawTab, sawNL bool
	for _, f := range frags {
		if f.Kind == FragEntity && f.Entity == entityTab {
			sawTab = true
		}
		if f.Kind == FragEntity && f.Entity == entityNewline {
			sawNL = true
		}
	}
	require.True(t, sawTab)
	require.True(t, sawNL)
}

func TestReadCommentSimple(t *testing.T) {
	cur := cursor.New("t", []byte("// a comment //"))
	body, err := ReadComment(cur, "t")
	require.Nil(t, err)
	require.Equal(t, " a comment ", string(body))
}

func TestReadCommentContinuation(t *testing.T) {
	cur := cursor.New("t", []byte("// first //\n// second //"))
	body, err := ReadComment(cur, "t")
	require.Nil(t, err)
	require.Equal(t, " first \n second ", string(body))
}

func TestReadCommentNotClosed(t *testing.T) {
	cur := cursor.New("t", []byte("// unterminated"))
	_, err := ReadComment(cur, "t")
	require.NotNil(t, err)
	require.Equal(t, "CommentNotClosed", err.Kind.String())
}

func TestReadCommentTooManySlashes(t *testing.T) {
	cur := cursor.New("t", []byte("// a /// b //"))
	_, err := ReadComment(cur, "t")
	require.NotNil(t, err)
	require.Equal(t, "CommentClosedWithTooManySlashes", err.Kind.String())
}
