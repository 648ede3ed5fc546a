// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Package jsonadapter is a thin external-collaborator stand-in (spec.md §9):
// it converts an xmqtree.Doc to the small subset of JSON that is
// isomorphic to XMQ's data model (objects, arrays of scalars, scalars); the
// reverse direction, FromJSON, is not supported and always returns an
// error. It is not
// a general-purpose JSON/XML/HTML/IXML converter -- that breadth is
// explicitly out of scope, the same way the teacher's own
// data/encoding/json.go only ever encoded YANG-shaped data, never
// arbitrary JSON.
package jsonadapter

import (
	"encoding/json"
	"fmt"

	"github.com/sdcio/xmq/xmqtree"
)

// ToJSON renders id's subtree as JSON: an element with a single Text child
// becomes a JSON scalar (string), an element with only Element children
// becomes a JSON object keyed by child name, and repeated child names
// collapse into a JSON array -- the same folding rfc7951-style encoders in
// the teacher's ecosystem apply to YANG list nodes.
func ToJSON(doc *xmqtree.Doc, id xmqtree.NodeID) ([]byte, error) {
	v, err := toValue(doc, id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func toValue(doc *xmqtree.Doc, id xmqtree.NodeID) (interface{}, error) {
	n := doc.Node(id)
	children := doc.Children(id)
	if len(children) == 1 && doc.Node(children[0]).Kind == xmqtree.KindText {
		return doc.Node(children[0]).Text, nil
	}
	if len(children) == 0 {
		return nil, nil
	}

	obj := map[string]interface{}{}
	order := map[string][]interface{}{}
	for _, c := range children {
		cn := doc.Node(c)
		if cn.Kind != xmqtree.KindElement {
			continue
		}
		v, err := toValue(doc, c)
		if err != nil {
			return nil, err
		}
		order[cn.Name] = append(order[cn.Name], v)
	}
	for name, vs := range order {
		if len(vs) == 1 {
			obj[name] = vs[0]
		} else {
			obj[name] = vs
		}
	}
	_ = n
	return obj, nil
}

// FromJSON is not implemented: reconstructing element ordering and
// namespace information from plain JSON requires conventions this adapter
// does not define (spec.md §9 lists full schema/format conversion as out
// of scope). Callers needing the reverse direction should build an
// xmqparse.Actions implementation against their own JSON shape instead.
func FromJSON(data []byte) (*xmqtree.Doc, error) {
	return nil, fmt.Errorf("jsonadapter: FromJSON is not supported, see SPEC_FULL.md Non-goals")
}
