// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Command xml2xmq is xmq2xml's counterpart: it reads an XMQ document and
// re-renders it through printer.Printer with pretty (non-compact)
// settings, the "normalize" direction spec.md §6 describes for a document
// that may have been hand-edited or minified. A real XML parser is out of
// scope (see SPEC_FULL.md Non-goals) -- this driver is the thin stand-in
// the §9 adapters are, not a general format converter.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sdcio/xmq/printer"
	"github.com/sdcio/xmq/xmqparse"
)

func main() {
	log := logrus.New()
	if len(os.Args) < 2 {
		log.Fatal("usage: xml2xmq <file.xmq>")
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithField("path", path).Fatal(err)
	}

	doc, perr := xmqparse.ParseBytes(path, data)
	if perr != nil {
		log.WithField("path", path).Fatal(perr)
	}

	p, nerr := printer.New(doc, printer.DefaultSettings())
	if nerr != nil {
		log.WithField("path", path).Fatal(nerr)
	}

	fmt.Print(string(p.Print()))
}
