// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	c := New("t", []byte("ab\ncd"))
	require.Equal(t, 1, c.Line())
	require.Equal(t, 1, c.Col())

	c.Advance(2) // consume "ab"
	require.Equal(t, 1, c.Line())
	require.Equal(t, 3, c.Col())

	c.Advance(1) // consume "\n"
	require.Equal(t, 2, c.Line())
	require.Equal(t, 1, c.Col())
}

func TestAdvanceSkipsUTF8ContinuationBytes(t *testing.T) {
	// "é" is two bytes (0xC3 0xA9); the column should advance by one, not two.
	c := New("t", []byte("é!"))
	r, w := c.PeekRune()
	require.Equal(t, 'é', r)
	require.Equal(t, 2, w)

	c.Advance(w)
	require.Equal(t, 2, c.Col())
	require.Equal(t, '!', c.Peek())
}

func TestPeek2AtEOF(t *testing.T) {
	c := New("t", []byte("a"))
	first, second := c.Peek2()
	require.Equal(t, rune('a'), first)
	require.Equal(t, EOF, second)
}

func TestResetRewindsPosition(t *testing.T) {
	c := New("t", []byte("abc"))
	mark, line, col := c.Pos(), c.Line(), c.Col()
	c.AdvanceRune()
	c.AdvanceRune()
	require.Equal(t, rune('c'), c.Peek())

	c.Reset(mark, line, col)
	require.Equal(t, rune('a'), c.Peek())
	require.Equal(t, 1, c.Col())
}

func TestReservedCharAndUnicodeSpace(t *testing.T) {
	require.True(t, ReservedChar('\''))
	require.True(t, ReservedChar('{'))
	require.True(t, ReservedChar(' '))
	require.False(t, ReservedChar('x'))

	require.True(t, IsUnicodeSpace(' '))
	require.True(t, IsUnicodeSpace('\t'))
	require.False(t, IsUnicodeSpace('x'))
}

func TestSliceDoesNotAliasInput(t *testing.T) {
	input := []byte("hello")
	c := New("t", input)
	s := c.Slice(0, 5)
	s[0] = 'H'
	require.Equal(t, byte('h'), input[0])
}
