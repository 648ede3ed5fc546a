// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

package xmqtree

import "golang.org/x/net/html/atom"

// IsHTMLElementName reports whether name is one of the known HTML element
// names (spec.md §3 invariant: "an XMQ document isomorphic to an HTML
// fragment should use HTML's own element vocabulary"). Rather than
// hand-roll another copy of the HTML element name table, this looks the
// name up in golang.org/x/net/html/atom, the same table the Go standard
// library's own html parser is generated from.
func IsHTMLElementName(name string) bool {
	return atom.Lookup([]byte(name)) != 0
}
