// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package xmqparse

import (
	"github.com/sdcio/xmq/cursor"
	"github.com/sdcio/xmq/lex"
	"github.com/sdcio/xmq/xmqtree"
)

// ParseBytes parses data into a fresh xmqtree.Doc using DefaultActions,
// the shape of the document API facade's parse_bytes (spec.md §6).
func ParseBytes(name string, data []byte) (*xmqtree.Doc, error) {
	doc := xmqtree.NewDoc(name)
	cur := cursor.New(name, data)
	l := lex.New(cur, name)
	actions := NewDefaultActions(doc)
	p := New(l, actions, name)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return doc, nil
}
