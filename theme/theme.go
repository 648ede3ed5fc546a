// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package theme is Component G: the token-category-to-escape-sequence
// mapping the printer consults for every piece of output it writes, plus
// the per-target (plain/terminal/HTML/TeX) escaping rules. Grounded on the
// bitmask-style enumeration pattern in other_examples/mellium-xmpp's
// styling.go, adapted from a single text-attribute bitmask to XMQ's richer
// closed set of ~30 token categories, each with its own independent
// (pre, post) escape pair rather than one shared set of attribute bits.
package theme

// Category is one of the closed set of token categories the printer can
// tag a run of output with (spec.md §4.G).
type Category int

const (
	CatWhitespace Category = iota
	CatUnicodeWhitespace
	CatIndentTab
	CatElementName
	CatElementNamespace
	CatAttrName
	CatAttrNamespace
	CatEquals
	CatQuote
	CatEntity
	CatComment
	CatCompoundParen
	CatBraceOpen
	CatBraceClose
	CatText
	CatNumberText
	CatQuoteText
	CatDoctype
	CatProcessingInstruction
	CatNamespaceDeclaration
	CatAttrNamespaceDeclaration
	CatNsColon
	CatCompoundQuote
	CatCompoundEntity
	CatErrorText
	CatHintText
	CatLineComment
	CatCommentContinuation
	CatUnclosedCompound
	CatSuspiciousWhitespace

	numCategories
)

// Pair is the (pre, post) byte sequence surrounding a run of output tagged
// with a Category -- e.g. an ANSI SGR code and its reset, or an opening and
// closing HTML <span>.
type Pair struct {
	Pre  string
	Post string
}

// Theme maps every Category to a Pair. A zero-value Pair (both fields
// empty) means the category is rendered with no decoration.
type Theme map[Category]Pair

// Anchor is one of the 13 RGB colors the built-in themes are generated
// from, in "#RRGGBB[_B][_U]" form: an optional trailing _B requests bold,
// _U requests underline.
type Anchor struct {
	Category Category
	Color    string // "#RRGGBB", "#RRGGBB_B", "#RRGGBB_U", or "#RRGGBB_B_U"
}

// darkAnchors and lightAnchors are the 13 RGB anchor colors the two
// built-in themes are generated from (spec.md §4.G "two built-in themes
// ... from 13 RGB anchor colors").
var darkAnchors = []Anchor{
	{CatElementName, "#6699CC"},
	{CatElementNamespace, "#6699CC_U"},
	{CatAttrName, "#F2777A"},
	{CatAttrNamespace, "#F2777A_U"},
	{CatEquals, "#CCCCCC"},
	{CatQuote, "#99CC99"},
	{CatQuoteText, "#99CC99"},
	{CatEntity, "#FFCC66"},
	{CatComment, "#999999"},
	{CatCompoundParen, "#CCCCCC_B"},
	{CatBraceOpen, "#CCCCCC_B"},
	{CatBraceClose, "#CCCCCC_B"},
	{CatErrorText, "#F2777A_B_U"},
}

var lightAnchors = []Anchor{
	{CatElementName, "#2F5B8F"},
	{CatElementNamespace, "#2F5B8F_U"},
	{CatAttrName, "#A33F42"},
	{CatAttrNamespace, "#A33F42_U"},
	{CatEquals, "#444444"},
	{CatQuote, "#2E7D32"},
	{CatQuoteText, "#2E7D32"},
	{CatEntity, "#B26A00"},
	{CatComment, "#777777"},
	{CatCompoundParen, "#444444_B"},
	{CatBraceOpen, "#444444_B"},
	{CatBraceClose, "#444444_B"},
	{CatErrorText, "#A33F42_B_U"},
}
