// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package xmqparse

import (
	"github.com/sdcio/xmq/quote"
	"github.com/sdcio/xmq/xmqtree"
)

// DefaultActions builds an xmqtree.Doc from parser callbacks, the way
// spec.md §4.D's "default Actions" is described: the only Actions
// implementation the parser itself ships, with everything else (streaming,
// SAX, a different tree library) left to a caller-supplied Actions.
type DefaultActions struct {
	Doc   *xmqtree.Doc
	stack []xmqtree.NodeID
}

// NewDefaultActions returns a DefaultActions building into doc.
func NewDefaultActions(doc *xmqtree.Doc) *DefaultActions {
	return &DefaultActions{Doc: doc}
}

func (a *DefaultActions) current() xmqtree.NodeID {
	if len(a.stack) == 0 {
		return xmqtree.NilNode
	}
	return a.stack[len(a.stack)-1]
}

func (a *DefaultActions) Root() error { return nil }

func (a *DefaultActions) AppendElement(namespace, name string, line, col int) error {
	id := a.Doc.Alloc(xmqtree.Node{
		Kind:      xmqtree.KindElement,
		Namespace: namespace,
		Name:      name,
		Line:      line,
		Col:       col,
	})
	if parent := a.current(); parent != xmqtree.NilNode {
		a.Doc.AppendChild(parent, id)
	} else {
		a.Doc.SetRoot(id)
	}
	a.stack = append(a.stack, id)
	return nil
}

func (a *DefaultActions) EndElement() error {
	if len(a.stack) == 0 {
		return nil
	}
	a.stack = a.stack[:len(a.stack)-1]
	return nil
}

func (a *DefaultActions) AppendAttribute(namespace, name, value string, line, col int) error {
	n := a.Doc.Node(a.current())
	n.Attrs = append(n.Attrs, xmqtree.Attribute{
		Namespace: namespace,
		Name:      name,
		Kind:      xmqtree.AttrValuePlain,
		Value:     value,
	})
	return nil
}

func (a *DefaultActions) AppendAttributeCompound(namespace, name string, frags []quote.Fragment, line, col int) error {
	n := a.Doc.Node(a.current())
	n.Attrs = append(n.Attrs, xmqtree.Attribute{
		Namespace: namespace,
		Name:      name,
		Kind:      xmqtree.AttrValueCompound,
		Fragments: frags,
	})
	return nil
}

func (a *DefaultActions) AppendData(text string, line, col int) error {
	id := a.Doc.Alloc(xmqtree.Node{Kind: xmqtree.KindText, Text: text, Line: line, Col: col})
	a.appendChild(id)
	return nil
}

func (a *DefaultActions) AppendEntity(name string, line, col int) error {
	id := a.Doc.Alloc(xmqtree.Node{Kind: xmqtree.KindEntity, Name: name, Line: line, Col: col})
	a.appendChild(id)
	return nil
}

func (a *DefaultActions) AppendComment(text string, line, col int) error {
	id := a.Doc.Alloc(xmqtree.Node{Kind: xmqtree.KindComment, Text: text, Line: line, Col: col})
	a.appendChild(id)
	return nil
}

func (a *DefaultActions) AllocateCopy(s string) string {
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}

func (a *DefaultActions) appendChild(id xmqtree.NodeID) {
	if parent := a.current(); parent != xmqtree.NilNode {
		a.Doc.AppendChild(parent, id)
	} else if a.Doc.Root() == xmqtree.NilNode {
		a.Doc.SetRoot(id)
	}
}
