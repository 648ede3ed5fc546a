// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdcio/xmq/internal/xmqtest"
	"github.com/sdcio/xmq/xmqparse"
	"github.com/sdcio/xmq/xmqtree"
)

func TestPrintLeafValue(t *testing.T) {
	doc, err := xmqparse.ParseBytes("t", []byte("alfa = 'beta'"))
	require.NoError(t, err)
	p, perr := New(doc, DefaultSettings())
	require.NoError(t, perr)
	out := string(p.Print())
	require.Contains(t, out, "alfa")
	require.Contains(t, out, "beta")
}

func TestPrintRoundTrip(t *testing.T) {
	src := "alfa(id=1) { beta = 'one' gamma = 'two' }"
	doc, err := xmqparse.ParseBytes("t", []byte(src))
	require.NoError(t, err)

	settings := DefaultSettings()
	settings.Compact = true
	p, perr := New(doc, settings)
	require.NoError(t, perr)
	out := p.Print()

	doc2, err := xmqparse.ParseBytes("t2", out)
	require.NoError(t, err)
	require.Equal(t, "alfa", doc2.Node(doc2.Root()).Name)
	require.Len(t, doc2.Node(doc2.Root()).Attrs, 1)
	require.Equal(t, "1", doc2.Node(doc2.Root()).Attrs[0].Value)

	children := doc2.Children(doc2.Root())
	require.Len(t, children, 2)
	require.Equal(t, "beta", doc2.Node(children[0]).Name)
	require.Equal(t, "one", doc2.Node(doc2.Children(children[0])[0]).Text)
	require.Equal(t, "gamma", doc2.Node(children[1]).Name)
	require.Equal(t, "two", doc2.Node(doc2.Children(children[1])[0]).Text)
}

func TestPrintAttributeColumnAlignment(t *testing.T) {
	doc, err := xmqparse.ParseBytes("t", []byte("alfa(short=1 muchlonger=2) = 3"))
	require.NoError(t, err)
	p, perr := New(doc, DefaultSettings())
	require.NoError(t, perr)
	out := string(p.Print())

	lines := strings.Split(out, "\n")
	require.Contains(t, lines[0], "short")
	require.Contains(t, lines[0], "muchlonger='2'")
	// the shorter name is padded with spaces so both '=' signs line up.
	require.Contains(t, lines[0], "short     ='1'")
}

func TestPrintCompactExactForm(t *testing.T) {
	doc, err := xmqparse.ParseBytes("t", []byte("alfa = 1"))
	require.NoError(t, err)
	settings := DefaultSettings()
	settings.Compact = true
	p, perr := New(doc, settings)
	require.NoError(t, perr)
	out := string(p.Print())
	xmqtest.CheckStringDivergence(t, "alfa = '1'", out)
}

// A value that opens and closes on a literal quote must print as a
// compound with its fragments joined with no separator, in compact mode
// exactly as in pretty mode (spec §8's worked line_printf example shows
// the same rule for Component H; this checks Component F's printer
// applies it identically).
func TestPrintCompactExactFormCompound(t *testing.T) {
	doc := xmqtree.NewDoc("t")
	elem := doc.Alloc(xmqtree.Node{Kind: xmqtree.KindElement, Name: "alfa"})
	text := doc.Alloc(xmqtree.Node{Kind: xmqtree.KindText, Text: "'''===='''"})
	doc.AppendChild(elem, text)
	doc.SetRoot(elem)

	settings := DefaultSettings()
	settings.Compact = true
	p, perr := New(doc, settings)
	require.NoError(t, perr)
	out := string(p.Print())
	xmqtest.CheckStringDivergence(t, "alfa = (&#39;&#39;&#39;'===='&#39;&#39;&#39;)", out)
}

func TestPrintTerminalColorWrapsElementName(t *testing.T) {
	settings := DefaultSettings()
	settings.RenderTo = RenderTerminal
	settings.UseColor = true
	doc, err := xmqparse.ParseBytes("t", []byte("alfa = 1"))
	require.NoError(t, err)
	p, perr := New(doc, settings)
	require.NoError(t, perr)
	out := string(p.Print())
	require.Contains(t, out, "\x1b[")
}

func TestPrintCompoundValueRoundTrip(t *testing.T) {
	src := "alfa = (' padded value ' &amp;)"
	doc, err := xmqparse.ParseBytes("t", []byte(src))
	require.NoError(t, err)
	p, perr := New(doc, DefaultSettings())
	require.NoError(t, perr)
	out := p.Print()

	doc2, err := xmqparse.ParseBytes("t2", out)
	require.NoError(t, err)
	children := doc2.Children(doc2.Root())
	require.Len(t, children, 2)
	require.Equal(t, " padded value ", doc2.Node(children[0]).Text)
	require.Equal(t, "amp", doc2.Node(children[1]).Name)
}
