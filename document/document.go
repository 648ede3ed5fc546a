// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package document is the §6 facade: new_doc/free_doc/parse_bytes/
// parse_file/get_string/get_int/get_double/foreach/doc_error, wrapping
// xmqparse and xmqtree behind the shallow `/a/b/c` path selector spec.md
// §6 describes (no predicates -- that kind of query engine is the same
// *kind* of thing as the CFG/IXML parsing engine spec.md rules out, see
// SPEC_FULL.md's Non-goals).
package document

import (
	"os"
	"strconv"
	"strings"

	"github.com/danos/utils/pathutil"
	"github.com/sirupsen/logrus"

	"github.com/sdcio/xmq/xmqparse"
	"github.com/sdcio/xmq/xmqtree"
)

// Context carries the advisory, document-scoped knobs spec.md §5 calls
// "global log toggles (trace/debug/verbose/error) and a filter string",
// promoted here to an explicit object threaded through calls instead of
// package-level globals, per spec.md §9's design note. Logging itself
// uses github.com/sirupsen/logrus exactly as the teacher's main.go and
// xpath/symbol.go do.
type Context struct {
	Log    *logrus.Logger
	Filter string
}

// NewContext returns a Context with a logrus.Logger at its default level
// and no filter set.
func NewContext() *Context {
	return &Context{Log: logrus.New()}
}

// Doc is the document handle the §6 API surface operates on.
type Doc struct {
	ctx  *Context
	tree *xmqtree.Doc
	err  error
}

// NewDoc returns an empty document (spec.md §6 new_doc).
func NewDoc(ctx *Context) *Doc {
	if ctx == nil {
		ctx = NewContext()
	}
	return &Doc{ctx: ctx}
}

// FreeDoc releases the document's tree (spec.md §6 free_doc).
func (d *Doc) FreeDoc() {
	if d.tree != nil {
		d.tree.FreeDoc()
	}
	d.tree = nil
}

// ParseBytes parses data into d, replacing any previously parsed content
// (spec.md §6 parse_bytes).
func (d *Doc) ParseBytes(name string, data []byte) bool {
	d.ctx.Log.WithField("source", name).Debug("parsing xmq bytes")
	tree, err := xmqparse.ParseBytes(name, data)
	if err != nil {
		d.err = err
		d.ctx.Log.WithField("source", name).Tracef("parse failed: %v", err)
		return false
	}
	d.tree = tree
	d.err = nil
	return true
}

// ParseFile reads path and parses it into d (spec.md §6 parse_file).
func (d *Doc) ParseFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		d.err = err
		return false
	}
	return d.ParseBytes(path, data)
}

// DocError returns the human-rendered form of the last parse error, or
// nil if the last parse succeeded (spec.md §6 doc_error).
func (d *Doc) DocError() error {
	return d.err
}

// selector splits a shallow `/a/b/c` path into its segments: leading and
// trailing slashes are trimmed and the rest is split on '/'. An empty or
// "/" path yields no segments.
func selector(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// resolve walks path from the document root and returns the matching
// node, or xmqtree.NilNode if no element along the path matches.
func (d *Doc) resolve(path string) xmqtree.NodeID {
	if d.tree == nil {
		return xmqtree.NilNode
	}
	cur := d.tree.Root()
	for _, name := range selector(path) {
		cur = d.childNamed(cur, name)
		if cur == xmqtree.NilNode {
			return xmqtree.NilNode
		}
	}
	return cur
}

func (d *Doc) childNamed(parent xmqtree.NodeID, name string) xmqtree.NodeID {
	for _, c := range d.tree.Children(parent) {
		n := d.tree.Node(c)
		if n.Kind == xmqtree.KindElement && n.Name == name {
			return c
		}
	}
	return xmqtree.NilNode
}

// GetString returns the text value at path (spec.md §6 get_string): the
// concatenated text of a leaf element's single Text child.
func (d *Doc) GetString(path string) (string, bool) {
	id := d.resolve(path)
	if id == xmqtree.NilNode {
		return "", false
	}
	children := d.tree.Children(id)
	if len(children) != 1 || d.tree.Node(children[0]).Kind != xmqtree.KindText {
		return "", false
	}
	return d.tree.Node(children[0]).Text, true
}

// GetInt returns the integer value at path (spec.md §6 get_int).
func (d *Doc) GetInt(path string) (int64, bool) {
	s, ok := d.GetString(path)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}

// GetDouble returns the floating point value at path (spec.md §6
// get_double).
func (d *Doc) GetDouble(path string) (float64, bool) {
	s, ok := d.GetString(path)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// Foreach calls visit once for every direct child element of path, in
// document order (spec.md §6 foreach). Traversal stops early if visit
// returns false.
func (d *Doc) Foreach(path string, visit func(name string, child xmqtree.NodeID) bool) {
	id := d.resolve(path)
	if id == xmqtree.NilNode {
		return
	}
	for _, c := range d.tree.Children(id) {
		n := d.tree.Node(c)
		if n.Kind != xmqtree.KindElement {
			continue
		}
		if !visit(n.Name, c) {
			return
		}
	}
}

// Tree exposes the underlying xmqtree.Doc for callers that need full tree
// access (e.g. a printer.Printer), beyond the shallow accessors above.
func (d *Doc) Tree() *xmqtree.Doc { return d.tree }

// pathstr renders path segments back into a `/a/b/c` string for
// diagnostics, reusing the teacher's own rendering helper.
func pathstr(path []string) string { return pathutil.Pathstr(path) }
