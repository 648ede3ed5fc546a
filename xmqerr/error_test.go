// Copyright (c) 2017,2019, AT&T Intellectual Property. All rights reserved
//
// Copyright (c) 2016-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package xmqerr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorRendersLocationAndCaret(t *testing.T) {
	err := New(QuoteNotClosed, 3, 5, "alfa 'beta\n", "t")
	msg := err.Error()
	require.Contains(t, msg, "t:3:5: quote is not closed")
	require.Contains(t, msg, "alfa 'beta")
}

func TestErrorIncludesHint(t *testing.T) {
	err := New(BodyNotClosed, 4, 1, "", "t").
		WithHints(Hints{LastOpenBrace: Location{Line: 1, Col: 6}})
	msg := err.Error()
	require.Contains(t, msg, "the { opened at line 1 column 6 is never closed")
}

func TestKindStringUnknown(t *testing.T) {
	require.Equal(t, "QuoteNotClosed", QuoteNotClosed.String())
	require.Equal(t, "Unknown", Kind(999).String())
}

func TestAsMgmtErrorCarriesMessage(t *testing.T) {
	err := New(InvalidChar, 1, 1, "", "t")
	me := err.AsMgmtError()
	require.Error(t, me)
	require.Contains(t, me.Error(), "invalid character outside of a quote")
}
