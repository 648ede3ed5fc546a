// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package printer is Component F: a tree-walking pretty-printer over an
// xmqtree.Doc. It decides, node by node, which of the three render forms
// (spec.md §4.F) applies -- a leaf `name = value`, a leaf with attributes
// `name(attrs) = value`, or a container `name { children }` -- and routes
// every scalar it writes through quote.Emit so the quote-balancing and
// compound-emission rules stay in exactly one place.
package printer

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/sdcio/xmq/quote"
	"github.com/sdcio/xmq/theme"
	"github.com/sdcio/xmq/xmqtree"
)

// RenderTarget mirrors theme.RenderTarget so callers configuring a
// printer.Settings do not need to import theme directly for the common
// case of picking an output family.
type RenderTarget = theme.RenderTarget

const (
	RenderPlain    = theme.RenderPlain
	RenderTerminal = theme.RenderTerminal
	RenderHTML     = theme.RenderHTML
	RenderTeX      = theme.RenderTeX
)

// Settings is the print-settings record from spec.md §6.
type Settings struct {
	AddIndent      int  // spaces per nesting level; 0 disables indentation
	Compact        bool // render on as few lines as possible
	EscapeNewlines bool
	EscapeTabs     bool
	EscapeNon7Bit  bool
	RenderTo       RenderTarget
	RenderRaw      bool // no effect: Print never writes a document wrapper for any RenderTo
	UseColor       bool
	ThemeName      theme.Name
	OmitDecl       bool // reserved for a future declaration line; unused by the core grammar
}

// DefaultSettings mirrors the teacher's plain-struct-literal construction
// style (e.g. parse.Tree's zero-value-friendly fields): two spaces of
// indent, pretty (non-compact), no color, dark theme, rendering to plain
// text.
func DefaultSettings() Settings {
	return Settings{
		AddIndent: 2,
		RenderTo:  RenderPlain,
		ThemeName: theme.Dark,
	}
}

// Printer walks an xmqtree.Doc and renders it per Settings.
type Printer struct {
	doc      *xmqtree.Doc
	settings Settings
	th       theme.Theme
}

// New returns a Printer for doc. If settings.UseColor is set and RenderTo
// is not RenderPlain, the theme is built once up front.
func New(doc *xmqtree.Doc, settings Settings) (*Printer, error) {
	p := &Printer{doc: doc, settings: settings}
	if settings.UseColor && settings.RenderTo != RenderPlain {
		th, err := theme.Build(settings.ThemeName, settings.RenderTo)
		if err != nil {
			return nil, err
		}
		p.th = th
	}
	return p, nil
}

// Print renders the document starting at its root.
func (p *Printer) Print() []byte {
	var b strings.Builder
	if p.doc.Root() != xmqtree.NilNode {
		p.printNode(&b, p.doc.Root(), 0)
	}
	return []byte(b.String())
}

func (p *Printer) indent(b *strings.Builder, depth int) {
	if p.settings.Compact || p.settings.AddIndent <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", depth*p.settings.AddIndent))
}

func (p *Printer) newlineOrSpace(b *strings.Builder) {
	if p.settings.Compact {
		b.WriteByte(' ')
		return
	}
	b.WriteByte('\n')
}

func (p *Printer) printNode(b *strings.Builder, id xmqtree.NodeID, depth int) {
	n := p.doc.Node(id)
	switch n.Kind {
	case xmqtree.KindComment:
		p.printComment(b, n, depth)
	case xmqtree.KindText:
		p.indent(b, depth)
		b.WriteString(p.emitScalar(n.Text, false))
	case xmqtree.KindEntity:
		p.indent(b, depth)
		b.WriteString(p.wrap(theme.CatEntity, "&"+n.Name+";"))
	case xmqtree.KindElement:
		p.printElement(b, id, n, depth)
	}
}

func (p *Printer) printComment(b *strings.Builder, n *xmqtree.Node, depth int) {
	p.indent(b, depth)
	depthMarks := strings.Repeat("/", requiredCommentDepth(n.Text))
	b.WriteString(p.wrap(theme.CatComment, depthMarks+n.Text+depthMarks))
}

func requiredCommentDepth(s string) int {
	max, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}
	return max + 2
}

func (p *Printer) printElement(b *strings.Builder, id xmqtree.NodeID, n *xmqtree.Node, depth int) {
	p.indent(b, depth)
	b.WriteString(p.wrap(theme.CatElementName, p.qualifiedName(n.Namespace, n.Name)))

	if len(n.Attrs) > 0 {
		b.WriteByte('(')
		p.printAttrs(b, n.Attrs)
		b.WriteByte(')')
	}

	children := p.doc.Children(id)
	switch {
	case len(children) == 0:
		return
	case isSingleLeafValue(p.doc, children):
		b.WriteByte(' ')
		b.WriteString(p.wrap(theme.CatEquals, "="))
		b.WriteByte(' ')
		leaf := p.doc.Node(children[0])
		b.WriteString(p.emitScalar(leaf.Text, false))
	default:
		b.WriteByte(' ')
		b.WriteString(p.wrap(theme.CatBraceOpen, "{"))
		p.newlineOrSpace(b)
		for _, c := range children {
			p.printNode(b, c, depth+1)
			p.newlineOrSpace(b)
		}
		p.indent(b, depth)
		b.WriteString(p.wrap(theme.CatBraceClose, "}"))
	}
}

// isSingleLeafValue reports whether children is exactly one Text node,
// spec.md §4.F's `name = value` leaf form.
func isSingleLeafValue(doc *xmqtree.Doc, children []xmqtree.NodeID) bool {
	if len(children) != 1 {
		return false
	}
	return doc.Node(children[0]).Kind == xmqtree.KindText
}

func (p *Printer) qualifiedName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + ":" + name
}

// printAttrs renders an attribute list, padding names so their '=' signs
// line up when more than one attribute is present and the printer is not
// in compact mode (spec.md §4.F "the printer may pad names with spaces so
// that the = signs line up"). Padding is computed in display columns via
// golang.org/x/text/width, since a fullwidth rune in a name occupies two
// terminal columns, not the one len() would count.
func (p *Printer) printAttrs(b *strings.Builder, attrs []xmqtree.Attribute) {
	pad := 0
	if !p.settings.Compact && len(attrs) > 1 {
		for _, a := range attrs {
			if w := displayWidth(p.qualifiedName(a.Namespace, a.Name)); w > pad {
				pad = w
			}
		}
	}
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		qname := p.qualifiedName(a.Namespace, a.Name)
		b.WriteString(p.wrap(theme.CatAttrName, qname))
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad-displayWidth(qname)))
		}
		b.WriteString(p.wrap(theme.CatEquals, "="))
		switch a.Kind {
		case xmqtree.AttrValueCompound:
			b.WriteString(p.emitFragments(a.Fragments))
		default:
			b.WriteString(p.emitScalar(a.Value, true))
		}
	}
}

// displayWidth returns the terminal column width of s, counting fullwidth
// and wide runes as 2 columns instead of len()'s byte-oriented 1.
func displayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}

func (p *Printer) wrap(cat theme.Category, s string) string {
	s = theme.Escape(s, p.settings.RenderTo)
	return theme.Wrap(p.th, cat, s)
}

func (p *Printer) emitScalar(s string, isAttribute bool) string {
	quoted, frags := quote.Emit(s, quote.EmitOptions{
		Compact:     p.settings.Compact,
		IsAttribute: isAttribute,
	})
	if frags != nil {
		return p.emitFragments(frags)
	}
	return p.wrapQuoted(quoted)
}

func (p *Printer) emitFragments(frags []quote.Fragment) string {
	var b strings.Builder
	b.WriteString(p.wrap(theme.CatCompoundParen, "("))
	for _, f := range frags {
		switch f.Kind {
		case quote.FragText:
			b.WriteString(p.wrapQuoted(quote.RenderQuotedRun(f.Text)))
		case quote.FragEntity:
			b.WriteString(p.wrap(theme.CatCompoundEntity, "&"+f.Entity+";"))
		}
	}
	b.WriteString(p.wrap(theme.CatCompoundParen, ")"))
	return b.String()
}

func (p *Printer) wrapQuoted(quoted []byte) string {
	return p.wrap(theme.CatQuote, string(quoted))
}
