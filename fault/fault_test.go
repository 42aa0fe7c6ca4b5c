// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/archivetp/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInternalOne   = fault.InternalError("internal one")
	ErrInternalTwo   = fault.InternalError("internal two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrInvalidTxOne  = fault.InvalidTransactionError("invalid transaction one")
	ErrInvalidTxTwo  = fault.InvalidTransactionError("invalid transaction two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
	ErrWrappedTx     = fmt.Errorf("outer: %w", ErrInvalidTxOne)
	ErrWrappedIntern = fmt.Errorf("outer: %w", ErrInternalOne)
)

// test that the various error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		internal  bool
		invalid   bool
		invalidTx bool
		notFound  bool
		process   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInternalOne, false, true, false, false, false, false},
		{ErrInternalTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrInvalidTxOne, false, false, false, true, false, false},
		{ErrInvalidTxTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, true},
		{ErrWrappedTx, false, false, false, true, false, false},
		{ErrWrappedIntern, false, true, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInternal(err) != e.internal {
			t.Errorf("%d: expected 'internal' == %v for err = %v", i, e.internal, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrInvalidTransaction(err) != e.invalidTx {
			t.Errorf("%d: expected 'invalid transaction' == %v for err = %v", i, e.invalidTx, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestFormattedErrors(t *testing.T) {
	err := fault.InvalidTransactionf("invalid action: %s", "delete")
	assert.Equal(t, "invalid action: delete", err.Error(), "wrong message")
	assert.True(t, fault.IsErrInvalidTransaction(err), "not an invalid transaction")
	assert.False(t, fault.IsErrInternal(err), "classified as internal")

	err = fault.Internalf("state read failed: %s", "closed")
	assert.Equal(t, "state read failed: closed", err.Error(), "wrong message")
	assert.True(t, fault.IsErrInternal(err), "not internal")
	assert.False(t, fault.IsErrInvalidTransaction(err), "classified as invalid transaction")
}
