// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package xmqtree is Component E: the in-memory tree an xmqparse.Actions
// implementation builds and a printer.Printer walks. Nodes live in a single
// arena slice addressed by NodeID rather than as a web of pointers, in the
// same spirit as the teacher's schema.Tree node-table, so a whole document
// can be freed by dropping one slice (free_doc, spec.md §6) instead of
// relying on the garbage collector to walk a pointer graph.
package xmqtree

import "github.com/sdcio/xmq/quote"

// NodeID is an index into a Doc's node arena. NilNode (-1) never refers
// to a real node; the zero value is the first node allocated.
type NodeID int

// NilNode is the sentinel "no node" value, used for absent parents,
// children, and siblings.
const NilNode NodeID = -1

// Kind is the type of content a Node holds (spec.md §3 "data model").
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindEntity
	KindComment
	KindDoctype
	KindProcessingInstruction
)

var kindNames = [...]string{
	KindElement:               "Element",
	KindText:                  "Text",
	KindEntity:                "Entity",
	KindComment:               "Comment",
	KindDoctype:               "Doctype",
	KindProcessingInstruction: "ProcessingInstruction",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// AttrValueKind distinguishes a plain scalar attribute value from one that
// had to be split into a compound fragment sequence on the way in (spec.md
// §4.C compound emission) or out.
type AttrValueKind int

const (
	AttrValuePlain AttrValueKind = iota
	AttrValueCompound
)

// Attribute is a name/value pair attached to an Element node. Value holds
// the decoded scalar text when Kind is AttrValuePlain; Fragments holds the
// compound fragment sequence otherwise (both are never populated at once).
type Attribute struct {
	Namespace string // empty when the attribute carries no ns prefix
	Name      string
	Kind      AttrValueKind
	Value     string
	Fragments []quote.Fragment
}

// Node is one entry in a Doc's arena. Parent/FirstChild/NextSibling form an
// intrusive linked list of children per parent, walked via Doc methods
// rather than by following Go pointers, so the whole tree can be
// serialized, copied, or dropped as one contiguous slice.
type Node struct {
	Kind      Kind
	Namespace string // element/attribute namespace prefix, if any
	Name      string // element name; entity name; PI target; empty otherwise
	Text      string // Text/Comment/Doctype content; unused for Element
	Attrs     []Attribute

	Parent      NodeID
	FirstChild  NodeID
	LastChild   NodeID
	NextSibling NodeID
	PrevSibling NodeID

	Line int
	Col  int
}

// Doc owns the node arena for one parsed document plus its root element
// (spec.md §6 new_doc/parse_bytes/free_doc).
type Doc struct {
	Name  string // source name, threaded into diagnostics
	nodes []Node
	root  NodeID
}

// NewDoc returns an empty document ready to be populated by a parse.
func NewDoc(name string) *Doc {
	return &Doc{Name: name, root: NilNode}
}

// FreeDoc drops the arena. Go's collector reclaims it on its own once the
// caller drops the *Doc, but this mirrors the explicit free_doc(doc) call
// spec.md §6 names as part of the document API surface, and is useful for
// a caller that wants to reuse the Doc value for a fresh parse.
func (d *Doc) FreeDoc() {
	d.nodes = nil
	d.root = NilNode
}

// Root returns the document's root node, or NilNode if nothing was parsed.
func (d *Doc) Root() NodeID { return d.root }

// SetRoot sets the document's root node. Used by xmqparse's default
// Actions implementation when it allocates the first element.
func (d *Doc) SetRoot(id NodeID) { d.root = id }

// Node returns a pointer into the arena for id. The pointer is only valid
// until the next Alloc call, which may grow the backing slice.
func (d *Doc) Node(id NodeID) *Node {
	if id == NilNode {
		return nil
	}
	return &d.nodes[id]
}

// Alloc appends a new node to the arena and returns its id.
func (d *Doc) Alloc(n Node) NodeID {
	n.Parent = NilNode
	n.FirstChild = NilNode
	n.LastChild = NilNode
	n.NextSibling = NilNode
	n.PrevSibling = NilNode
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// AppendChild links child as the new last child of parent.
func (d *Doc) AppendChild(parent, child NodeID) {
	p := d.Node(parent)
	c := d.Node(child)
	c.Parent = parent
	if p.FirstChild == NilNode {
		p.FirstChild = child
		p.LastChild = child
		return
	}
	last := d.Node(p.LastChild)
	last.NextSibling = child
	c.PrevSibling = p.LastChild
	p.LastChild = child
}

// Children returns the ids of id's children in document order.
func (d *Doc) Children(id NodeID) []NodeID {
	var out []NodeID
	n := d.Node(id)
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != NilNode; c = d.Node(c).NextSibling {
		out = append(out, c)
	}
	return out
}

// Walk performs a depth-first, pre-order traversal starting at id, calling
// visit for every node including id itself. Traversal stops early if visit
// returns false.
func (d *Doc) Walk(id NodeID, visit func(NodeID) bool) {
	if id == NilNode {
		return
	}
	if !visit(id) {
		return
	}
	for _, c := range d.Children(id) {
		d.Walk(c, visit)
	}
}
