// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2014 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0 and BSD-3-Clause

// Command xmq2xml is the thin argv0 dispatch spec.md §6 calls for: read an
// XMQ document from a file (or stdin) and print it back out as JSON via
// adapters/jsonadapter, the one conversion this module actually carries -- a full XML
// writer is out of scope (see SPEC_FULL.md Non-goals), so this driver
// stays a thin stand-in the way the teacher's own main.go was a thin
// driver over the xpath package rather than a feature in itself.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sdcio/xmq/adapters/jsonadapter"
	"github.com/sdcio/xmq/xmqparse"
)

func main() {
	log := logrus.New()

	path := "<stdin>"
	var data []byte
	var err error
	if len(os.Args) < 2 {
		data, err = io.ReadAll(os.Stdin)
	} else {
		path = os.Args[1]
		data, err = os.ReadFile(path)
	}
	if err != nil {
		log.WithField("path", path).Fatal(err)
	}

	doc, perr := xmqparse.ParseBytes(path, data)
	if perr != nil {
		log.WithField("path", path).Fatal(perr)
	}

	out, jerr := jsonadapter.ToJSON(doc, doc.Root())
	if jerr != nil {
		log.WithField("path", path).Fatal(jerr)
	}

	fmt.Println(string(out))
}
