// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package lineprinter is Component H: a single-line XMQ fragment builder,
// in the same fluent, chainable spirit as logrus.Entry.WithField, but
// accumulating key/value pairs (and nested brace groups) into one XMQ
// fragment instead of a logfmt line. Every value is routed through
// quote.Emit in compact mode, so the same compound-emission rules the tree
// printer uses apply here too -- a value containing a newline or a
// boundary quote character becomes a compound, never a malformed quoted
// run. Integer fields are the one bare (unquoted) value this builder
// emits, since a formatted integer never contains a reserved character and
// spec §8 scenario 2's line_printf worked example requires it unquoted
// (`nw=36`, not `nw='36'`); a separating space is inserted before whatever
// follows a bare value only when one is needed to keep it a distinct
// token, exactly as spec §8 scenario 2 shows (`nw=36 model=...` needs the
// space, `model='car go  3'decription=...` does not, since the closing
// quote is already an unambiguous token boundary).
package lineprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdcio/xmq/quote"
)

type fieldKind int

const (
	fieldKV fieldKind = iota
	fieldOpen
	fieldClose
)

// Builder accumulates key/value fragments and brace groups for one line.
type Builder struct {
	fields []field
	human  bool
}

type field struct {
	kind  fieldKind
	key   string
	value string
	bare  bool // true when value is emitted unquoted (Int)
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// Human switches the Builder into human-readable mode: String renders
// "(key) value" pairs instead of XMQ "key=value" syntax, for a
// terminal-friendly summary line rather than a re-parseable one (spec.md
// §4.H, §8 scenario 4).
func (b *Builder) Human(on bool) *Builder {
	b.human = on
	return b
}

// Str appends a string-valued field.
func (b *Builder) Str(key, value string) *Builder {
	b.fields = append(b.fields, field{kind: fieldKV, key: key, value: value})
	return b
}

// Int appends an integer-valued field, rendered bare (unquoted): a
// formatted integer never contains a reserved character, so spec's
// depth-minimality philosophy calls for no quotes around it at all.
func (b *Builder) Int(key string, value int64) *Builder {
	b.fields = append(b.fields, field{kind: fieldKV, key: key, value: strconv.FormatInt(value, 10), bare: true})
	return b
}

// Float appends a floating point field, quoted like Str -- unlike Int, a
// formatted float can need escaping depending on its format verb, so it
// goes through the same path as a plain string value.
func (b *Builder) Float(key string, value float64) *Builder {
	return b.Str(key, strconv.FormatFloat(value, 'g', -1, 64))
}

// Fmt appends a field whose value is produced by fmt.Sprintf(format,
// args...), the "format" fragment kind spec.md §4.H describes alongside
// plain key/value pairs.
func (b *Builder) Fmt(key, format string, args ...interface{}) *Builder {
	return b.Str(key, fmt.Sprintf(format, args...))
}

// Open starts a nested brace group named name (`name{`), the single-line
// nested-element form spec.md §4.H describes (§8 scenario 2's `car{...}`).
// Fields appended after Open and before the matching Close render inside
// the group.
func (b *Builder) Open(name string) *Builder {
	b.fields = append(b.fields, field{kind: fieldOpen, key: name})
	return b
}

// Close ends the brace group most recently opened by Open.
func (b *Builder) Close() *Builder {
	b.fields = append(b.fields, field{kind: fieldClose})
	return b
}

// String renders the accumulated fields as one line.
func (b *Builder) String() string {
	if b.human {
		return b.renderHuman()
	}
	return b.renderXMQ()
}

func (b *Builder) renderHuman() string {
	var parts []string
	for _, f := range b.fields {
		switch f.kind {
		case fieldOpen:
			parts = append(parts, "("+f.key+")")
		case fieldClose:
			// no separate human-readable token for a group's close
		case fieldKV:
			parts = append(parts, "("+f.key+") "+f.value)
		}
	}
	return strings.Join(parts, ", ")
}

func (b *Builder) renderXMQ() string {
	var out strings.Builder
	lastWasBare := false
	for _, f := range b.fields {
		switch f.kind {
		case fieldOpen:
			if lastWasBare {
				out.WriteByte(' ')
			}
			out.WriteString(f.key)
			out.WriteByte('{')
			lastWasBare = false
		case fieldClose:
			out.WriteByte('}')
			lastWasBare = false
		case fieldKV:
			if lastWasBare {
				out.WriteByte(' ')
			}
			out.WriteString(f.key)
			out.WriteByte('=')
			if f.bare {
				out.WriteString(f.value)
				lastWasBare = true
				continue
			}
			quoted, frags := quote.Emit(f.value, quote.EmitOptions{Compact: true})
			if frags != nil {
				out.WriteString(renderCompound(frags))
			} else {
				out.Write(quoted)
			}
			lastWasBare = false
		}
	}
	return out.String()
}

// renderCompound renders frags with no separator between them -- the
// grammar requires none between adjacent fragments of a compound (spec §8
// scenario 2's `more=(&#39;&#39;&#39;'==='&#39;&#39;&#39;)`).
func renderCompound(frags []quote.Fragment) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, f := range frags {
		switch f.Kind {
		case quote.FragText:
			b.Write(quote.RenderQuotedRun(f.Text))
		case quote.FragEntity:
			b.WriteByte('&')
			b.WriteString(f.Entity)
			b.WriteByte(';')
		}
	}
	b.WriteByte(')')
	return b.String()
}
