// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package quote

import "strings"

// EmitOptions controls the decision Emit makes between a plain quoted run
// and a compound `( ... )` of fragments (spec §4.C "compound emission").
type EmitOptions struct {
	// Compact is true when the printer is rendering in compact (single-
	// line) mode, so literal \n/\t/\r cannot appear inside a quoted run
	// and must be escaped as entities instead.
	Compact bool
	// IsAttribute is true when s is an attribute value. Attribute values
	// that open or close on whitespace must be compounded, because a
	// plain quoted run would have that whitespace read back as incidental
	// indentation and stripped.
	IsAttribute bool
}

// NeedsCompound reports whether s cannot be rendered as a single plain
// quoted run under opts and must instead be split into fragments by Emit.
// Three conditions force a compound, only the third of which spec.md
// states outright is derivable rather than listed:
//
//  1. compact mode and the payload contains \n, \t or \r;
//  2. an attribute value opening or closing on a space or tab;
//  3. the payload opening or closing on a literal ' character -- any
//     quote characters at the very start or end of the payload are
//     indistinguishable, under ReadQuote's greedy run-counting, from
//     more of the opening delimiter, so they would be silently absorbed
//     into the chosen depth and lost on a round trip. Spec §8's worked
//     line_printf example requires exactly this splitting for its
//     `more=` field.
func NeedsCompound(s string, opts EmitOptions) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	first, last := runes[0], runes[len(runes)-1]
	if first == '\'' || last == '\'' {
		return true
	}
	if opts.Compact {
		for _, r := range runes {
			if r == '\n' || r == '\t' || r == '\r' {
				return true
			}
		}
	}
	if opts.IsAttribute {
		if first == ' ' || first == '\t' || last == ' ' || last == '\t' {
			return true
		}
	}
	return false
}

// Emit renders s under opts, returning either a plain quoted run (quoted
// non-nil, frags nil) or a compound fragment sequence (quoted nil, frags
// non-nil) when NeedsCompound(s, opts) is true.
func Emit(s string, opts EmitOptions) (quoted []byte, frags []Fragment) {
	if !NeedsCompound(s, opts) {
		return RenderQuotedRun(s), nil
	}
	return nil, splitFragments(s, opts.Compact)
}

// RenderQuotedRun wraps s in the minimal run of ' characters required to
// round-trip it (spec §8 "depth minimality"). Callers must only pass s that
// does not open or close on a literal ' -- use Emit, which routes such
// payloads to splitFragments instead.
func RenderQuotedRun(s string) []byte {
	depth := RequiredDepth(s)
	q := strings.Repeat("'", depth)
	var b strings.Builder
	b.WriteString(q)
	b.WriteString(s)
	b.WriteString(q)
	return []byte(b.String())
}

const (
	entityApos    = "#39"
	entityNewline = "#10"
	entityTab     = "#9"
	entityCR      = "#13"
)

// splitFragments turns s into the fragment sequence a compound must render:
// any leading or trailing run of ' characters becomes individual entity
// fragments (see NeedsCompound condition 3), and what remains in between is
// handed to splitControlChars for condition 1.
func splitFragments(s string, compact bool) []Fragment {
	runes := []rune(s)
	n := len(runes)

	lead := 0
	for lead < n && runes[lead] == '\'' {
		lead++
	}
	trail := n
	for trail > lead && runes[trail-1] == '\'' {
		trail--
	}

	var frags []Fragment
	for i := 0; i < lead; i++ {
		frags = append(frags, Fragment{Kind: FragEntity, Entity: entityApos})
	}
	if trail > lead {
		frags = append(frags, splitControlChars(string(runes[lead:trail]), compact)...)
	}
	for i := trail; i < n; i++ {
		frags = append(frags, Fragment{Kind: FragEntity, Entity: entityApos})
	}
	return frags
}

// splitControlChars splits middle into Text fragments interleaved with
// entity fragments for \n/\t/\r when compact is set; when compact is not
// set, control characters may stand inside a quoted run unescaped and
// middle is returned as a single Text fragment.
func splitControlChars(middle string, compact bool) []Fragment {
	if !compact {
		return []Fragment{{Kind: FragText, Text: middle}}
	}

	var frags []Fragment
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			frags = append(frags, Fragment{Kind: FragText, Text: buf.String()})
			buf.Reset()
		}
	}
	for _, r := range middle {
		switch r {
		case '\n':
			flush()
			frags = append(frags, Fragment{Kind: FragEntity, Entity: entityNewline})
		case '\t':
			flush()
			frags = append(frags, Fragment{Kind: FragEntity, Entity: entityTab})
		case '\r':
			flush()
			frags = append(frags, Fragment{Kind: FragEntity, Entity: entityCR})
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return frags
}

// RenderCompound renders frags as a compound `( ... )`, quoting each Text
// fragment with RenderQuotedRun and wrapping each Entity fragment as
// &name;, joined with no separator -- the grammar requires none between
// adjacent fragments of a compound.
func RenderCompound(frags []Fragment) []byte {
	var b strings.Builder
	b.WriteByte('(')
	for _, f := range frags {
		switch f.Kind {
		case FragText:
			b.Write(RenderQuotedRun(f.Text))
		case FragEntity:
			b.WriteByte('&')
			b.WriteString(f.Entity)
			b.WriteByte(';')
		}
	}
	b.WriteByte(')')
	return []byte(b.String())
}
