// Copyright (c) 2019, AT&T Intellectual Property. All rights reserved.
//
// Copyright (c) 2016 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package xmqtest carries the teacher's generic string-divergence test
// helpers (originally testutils/assert), adapted for this module's own
// _test.go files -- the YANG-schema-building half of testutils (schema
// templates, module compilation) had no XMQ counterpart and was dropped,
// see DESIGN.md.
package xmqtest

import (
	"bytes"
	"strings"
	"testing"
)

// ExpectedMessages checks that a set of substrings appear (or don't) in
// actual rendered output, the same pattern the printer/lineprinter tests
// use directly via testify/require.Contains for the simple cases, and via
// this helper when multiple messages need checking together.
type ExpectedMessages struct {
	expected []string
}

// NewExpectedMessages returns an ExpectedMessages checking for expect.
func NewExpectedMessages(expect ...string) *ExpectedMessages {
	return &ExpectedMessages{expected: expect}
}

// ContainedIn fails t unless every expected message is a substring of actual.
func (e *ExpectedMessages) ContainedIn(t *testing.T, actual string) {
	if len(actual) == 0 {
		t.Fatalf("No output in which to search for expected message(s).")
		return
	}

	for _, exp := range e.expected {
		if !strings.Contains(actual, exp) {
			t.Fatalf("Actual output doesn't contain expected output:\n"+
				"Exp:\n%s\nAct:\n%v\n", exp, actual)
		}
	}
}

// NotContainedIn fails t if any expected message is a substring of actual.
func (e *ExpectedMessages) NotContainedIn(t *testing.T, actual string) {
	if len(actual) == 0 {
		t.Fatalf("No output in which to search for expected message(s).")
		return
	}

	for _, exp := range e.expected {
		if strings.Contains(actual, exp) {
			t.Fatalf("Actual output contains unexpected output:\n"+
				"NotExp:\n%s\nAct:\n%v\n", exp, actual)
		}
	}
}

// CheckStringDivergence fails t with a caret at the first point expOut and
// actOut diverge, rather than just dumping both strings in full -- useful
// for diagnosing a printer round-trip that's almost, but not quite, right.
func CheckStringDivergence(t *testing.T, expOut, actOut string) {
	if expOut == actOut {
		return
	}

	var expOutCopy = expOut
	var act bytes.Buffer
	var charsToDump = 10
	var expCharsToDump = 10
	var actCharsLeft, expCharsLeft int
	for index, char := range actOut {
		if len(expOutCopy) > 0 {
			if char == rune(expOutCopy[0]) {
				act.WriteByte(byte(char))
			} else {
				act.WriteString("###") // Mark point of divergence.
				expCharsLeft = len(expOutCopy)
				actCharsLeft = len(actOut) - index
				if expCharsLeft < charsToDump {
					expCharsToDump = expCharsLeft
				}
				if actCharsLeft < charsToDump {
					charsToDump = actCharsLeft
				}
				act.WriteString(actOut[index : index+charsToDump])
				break
			}
		} else {
			t.Logf("Expected output terminates early.\n")
			t.Fatalf("Exp:\n%s\nGot extra:\n%s\n",
				expOut[:index], act.String()[index:])
		}
		expOutCopy = expOutCopy[1:]
	}

	t.Logf("Actual output:\n%s\n--- ENDS ---\n", actOut)
	t.Fatalf("Unexpected output.\nGot:\n%s\nExp at ###:\n'%s ...'\n",
		act.String(), expOutCopy[:expCharsToDump])
}
