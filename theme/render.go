// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderTarget selects the output family a Theme's escape sequences are
// generated for (spec.md §6 print-settings "render_to").
type RenderTarget int

const (
	RenderPlain RenderTarget = iota
	RenderTerminal
	RenderHTML
	RenderTeX
)

// Name selects one of the two built-in themes (spec.md §4.G).
type Name int

const (
	Dark Name = iota
	Light
)

func anchorsFor(name Name) []Anchor {
	if name == Light {
		return lightAnchors
	}
	return darkAnchors
}

// Build generates a Theme for name rendered to target. When target is
// RenderPlain or use_color is false at the call site, the caller should
// simply not invoke Build and use an empty Theme instead. For RenderPlain,
// Build returns a Theme whose Pairs are all empty.
func Build(name Name, target RenderTarget) (Theme, error) {
	th := make(Theme, numCategories)
	for _, a := range anchorsFor(name) {
		pair, err := colorPair(a.Color, target)
		if err != nil {
			return nil, fmt.Errorf("theme: anchor %v: %w", a.Category, err)
		}
		th[a.Category] = pair
	}
	return th, nil
}

// parsedColor is a decoded "#RRGGBB[_B][_U]" anchor.
type parsedColor struct {
	r, g, b         uint8
	bold, underline bool
}

func parseColor(s string) (parsedColor, error) {
	var pc parsedColor
	if !strings.HasPrefix(s, "#") || len(s) < 7 {
		return pc, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:7]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pc, fmt.Errorf("invalid color %q: %w", s, err)
	}
	pc.r = uint8(v >> 16)
	pc.g = uint8(v >> 8)
	pc.b = uint8(v)
	for _, flag := range strings.Split(s[7:], "_") {
		switch flag {
		case "B":
			pc.bold = true
		case "U":
			pc.underline = true
		case "":
		default:
			return pc, fmt.Errorf("invalid color flag %q in %q", flag, s)
		}
	}
	return pc, nil
}

// colorPair renders one anchor color as a (pre, post) Pair for target.
func colorPair(color string, target RenderTarget) (Pair, error) {
	pc, err := parseColor(color)
	if err != nil {
		return Pair{}, err
	}
	switch target {
	case RenderPlain:
		return Pair{}, nil
	case RenderTerminal:
		return terminalPair(pc), nil
	case RenderHTML:
		return htmlPair(pc)
	case RenderTeX:
		return texPair(pc), nil
	}
	return Pair{}, fmt.Errorf("unknown render target %d", target)
}

func terminalPair(pc parsedColor) Pair {
	var codes []string
	if pc.bold {
		codes = append(codes, "1")
	}
	if pc.underline {
		codes = append(codes, "4")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", pc.r, pc.g, pc.b))
	return Pair{
		Pre:  "\x1b[" + strings.Join(codes, ";") + "m",
		Post: "\x1b[0m",
	}
}

func texPair(pc parsedColor) Pair {
	name := fmt.Sprintf("c%02x%02x%02x", pc.r, pc.g, pc.b)
	pre := fmt.Sprintf("\\definecolor{%s}{RGB}{%d,%d,%d}\\textcolor{%s}{", name, pc.r, pc.g, pc.b, name)
	if pc.bold {
		pre += "\\textbf{"
	}
	if pc.underline {
		pre += "\\underline{"
	}
	post := "}"
	if pc.underline {
		post += "}"
	}
	if pc.bold {
		post += "}"
	}
	return Pair{Pre: pre, Post: post}
}

func htmlPair(pc parsedColor) (Pair, error) {
	css, err := generateHTMLColor(pc)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		Pre:  fmt.Sprintf(`<span style="%s">`, css),
		Post: "</span>",
	}, nil
}

// generateHTMLColor renders pc as an inline CSS style attribute value.
// original_source's C counterpart returns a C-style inverted boolean (false
// on success); this port uses the normal Go convention of a nil error on
// success, called out in SPEC_FULL.md as an intentional fix rather than a
// faithful port of that inversion.
func generateHTMLColor(pc parsedColor) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "color:#%02x%02x%02x", pc.r, pc.g, pc.b)
	if pc.bold {
		b.WriteString(";font-weight:bold")
	}
	if pc.underline {
		b.WriteString(";text-decoration:underline")
	}
	return b.String(), nil
}

// Escape renders s for target, independent of any Theme decoration: plain
// text needs no escaping, HTML escapes &<>, TeX escapes its active
// characters, and terminal output passes bytes through unescaped (color
// codes are applied around whole runs, not per-byte).
func Escape(s string, target RenderTarget) string {
	switch target {
	case RenderHTML:
		r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
		return r.Replace(s)
	case RenderTeX:
		r := strings.NewReplacer(
			"\\", "\\textbackslash{}",
			"{", "\\{", "}", "\\}",
			"#", "\\#", "$", "\\$", "%", "\\%",
			"&", "\\&", "_", "\\_", "^", "\\^{}", "~", "\\~{}",
		)
		return r.Replace(s)
	default:
		return s
	}
}

// Wrap applies th's Pair for cat around s, or returns s unchanged if th is
// nil or has no entry for cat.
func Wrap(th Theme, cat Category, s string) string {
	if th == nil {
		return s
	}
	pair, ok := th[cat]
	if !ok {
		return s
	}
	return pair.Pre + s + pair.Post
}
