// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/jacklund/blockchain/fault"
)

var (
	ErrEnvelopeOne = fault.EnvelopeError("envelope one")
	ErrEnvelopeTwo = fault.EnvelopeError("envelope two")
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		envelope bool
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{ErrEnvelopeOne, true, false, false, false, false, false},
		{ErrEnvelopeTwo, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false},
		{ErrLengthTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEnvelope(err) != e.envelope {
			t.Errorf("%d: expected 'envelope' == %v for err = %v", i, e.envelope, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestDecoderCategories(t *testing.T) {
	if !fault.IsErrTruncated(fault.ErrTruncatedInput) {
		t.Errorf("truncated input not classified as truncated")
	}
	if fault.IsErrMalformedEnvelope(fault.ErrTruncatedInput) {
		t.Errorf("truncated input classified as malformed envelope")
	}
	for _, err := range []error{fault.ErrInvalidMagic, fault.ErrBlockLengthExceedsData, fault.ErrBlockTrailingData} {
		if !fault.IsErrMalformedEnvelope(err) {
			t.Errorf("%v not classified as malformed envelope", err)
		}
		if fault.IsErrTruncated(err) {
			t.Errorf("%v classified as truncated", err)
		}
	}
}
