// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package lineprinter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleLine(t *testing.T) {
	// "alfa" closes on a quote (an unambiguous token boundary), so no
	// separating space is needed before "count"; "count" is an Int field
	// and renders bare.
	line := New().Str("name", "alfa").Int("count", 3).String()
	require.Equal(t, "name='alfa'count=3", line)
}

func TestHumanMode(t *testing.T) {
	line := New().Human(true).Str("name", "alfa").Int("count", 3).String()
	require.Equal(t, "(name) alfa, (count) 3", line)
}

// Spec §8's worked line_printf example: a field whose value opens and
// closes on a literal quote character must render as a compound with
// boundary entities, never a plain quoted run, and the fragments inside
// the compound have no separator between them.
func TestBoundaryQuoteFieldRendersCompound(t *testing.T) {
	line := New().Str("more", "'''==="+"'''").String()
	require.Equal(t, "more=(&#39;&#39;&#39;'==='&#39;&#39;&#39;)", line)
}

func TestMultilineValueRendersCompound(t *testing.T) {
	line := New().Str("note", "line1\nline2").String()
	require.Equal(t, "note=('line1'&#10;'line2')", line)
}

func TestFmtField(t *testing.T) {
	line := New().Fmt("at", "%d:%d", 3, 4).String()
	require.Equal(t, "at='3:4'", line)
}

// Spec §8 scenario 2, exact: line_printf(lc, "car{", "nw=", "%d", 36,
// "model=", "%s %d", "car go ", 3, "decription=", "%s", "howdy\ndowdy",
// "more=", "'''%s'''", "===", "key=", "", "}") must equal exactly
// `car{nw=36 model='car go  3'decription=('howdy'&#10;'dowdy')more=(&#39;&#39;&#39;'==='&#39;&#39;&#39;)key=''}`.
func TestLinePrintfScenario2Exact(t *testing.T) {
	line := New().
		Open("car").
		Int("nw", 36).
		Str("model", "car go  3").
		Str("decription", "howdy\ndowdy").
		Str("more", "'''==="+"'''").
		Str("key", "").
		Close().
		String()
	require.Equal(t,
		"car{nw=36 model='car go  3'decription=('howdy'&#10;'dowdy')more=(&#39;&#39;&#39;'==='&#39;&#39;&#39;)key=''}",
		line)
}

// Spec §8 scenario 3, exact: line_printf(lc, "work=", "pi is %f", 3.141590)
// equals `work='pi is 3.141590'`.
func TestLinePrintfScenario3Exact(t *testing.T) {
	line := New().Fmt("work", "pi is %f", 3.141590).String()
	require.Equal(t, "work='pi is 3.141590'", line)
}

// Spec §8 scenario 4, exact: same inputs as scenario 3, human-readable,
// produces `(work) pi is 3.141590`.
func TestLinePrintfScenario4Exact(t *testing.T) {
	line := New().Human(true).Fmt("work", "pi is %f", 3.141590).String()
	require.Equal(t, "(work) pi is 3.141590", line)
}
