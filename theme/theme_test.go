// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDarkTerminal(t *testing.T) {
	th, err := Build(Dark, RenderTerminal)
	require.NoError(t, err)
	pair := th[CatElementName]
	require.NotEmpty(t, pair.Pre)
	require.Equal(t, "\x1b[0m", pair.Post)
}

func TestBuildHTMLBoldUnderline(t *testing.T) {
	th, err := Build(Dark, RenderHTML)
	require.NoError(t, err)
	pair := th[CatErrorText]
	require.Contains(t, pair.Pre, "font-weight:bold")
	require.Contains(t, pair.Pre, "text-decoration:underline")
	require.Equal(t, "</span>", pair.Post)
}

func TestParseColorRejectsBadFlag(t *testing.T) {
	_, err := parseColor("#112233_X")
	require.Error(t, err)
}

func TestEscapeHTML(t *testing.T) {
	require.Equal(t, "a &amp; b &lt;c&gt;", Escape("a & b <c>", RenderHTML))
}

func TestEscapeTeX(t *testing.T) {
	require.Equal(t, `50\%`, Escape("50%", RenderTeX))
}

func TestWrapNilThemeNoop(t *testing.T) {
	require.Equal(t, "hello", Wrap(nil, CatElementName, "hello"))
}

func TestGenerateHTMLColorSuccess(t *testing.T) {
	css, err := generateHTMLColor(parsedColor{r: 0x11, g: 0x22, b: 0x33, bold: true})
	require.NoError(t, err)
	require.Contains(t, css, "#112233")
	require.Contains(t, css, "font-weight:bold")
}
