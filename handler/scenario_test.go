// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/archivetp/archiverecord"
	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/handler"
)

func stored(t *testing.T, s *memoryState, key string) *archiverecord.Record {
	r, err := archiverecord.Packed(s.values[key]).Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	return r
}

func TestCreateThenReplace(t *testing.T) {
	s := newMemoryState()
	h := handler.New(logger.New(logCategory))

	err := h.Apply(&handler.Request{Payload: body(reference, "create", "c1", "d1")}, s)
	assert.Nil(t, err, "create error")
	assert.Equal(t, &archiverecord.Record{ContentHash: "c1", DipHash: "d1"}, stored(t, s, recordKey), "wrong record after create")

	err = h.Apply(&handler.Request{Payload: body(reference, "replace", "c2", "d2")}, s)
	assert.Nil(t, err, "replace error")
	assert.Equal(t, &archiverecord.Record{ContentHash: "c2", DipHash: "d2"}, stored(t, s, recordKey), "wrong record after replace")

	assert.Equal(t, 1, len(s.values), "wrong number of records")
	assert.Equal(t, 2, s.writes, "wrong number of writes")
}

func TestReplaceFirstIsRejected(t *testing.T) {
	s := newMemoryState()
	h := handler.New(logger.New(logCategory))

	err := h.Apply(&handler.Request{Payload: body(reference, "replace", "c2", "d2")}, s)
	assert.True(t, fault.IsErrInvalidTransaction(err), "wrong error: %v", err)
	assert.Equal(t, 0, len(s.values), "state was changed")
	assert.Equal(t, 0, s.writes, "state was written")
}

// only the first 64 characters of the reference select the record
func TestLongReferencesShareRecord(t *testing.T) {
	s := newMemoryState()
	h := handler.New(logger.New(logCategory))

	err := h.Apply(&handler.Request{Payload: body(reference+"-first", "create", "c1", "d1")}, s)
	assert.Nil(t, err, "create error")

	err = h.Apply(&handler.Request{Payload: body(reference+"-second", "replace", "c2", "d2")}, s)
	assert.Nil(t, err, "replace error")

	assert.Equal(t, 1, len(s.values), "wrong number of records")
	assert.Equal(t, &archiverecord.Record{ContentHash: "c2", DipHash: "d2"}, stored(t, s, recordKey), "wrong record")
}

// the same transactions give the same bytes on every run
func TestDeterministicState(t *testing.T) {
	run := func() map[string][]byte {
		s := newMemoryState()
		h := handler.New(nil)
		for _, b := range [][]byte{
			body(reference, "create", "c1", "d1"),
			body(reference, "replace", "c2", "d2"),
			body(reference, "create", "c3", "d3"),
		} {
			if err := h.Apply(&handler.Request{Payload: b}, s); nil != err {
				t.Fatalf("apply error: %s", err)
			}
		}
		return s.values
	}

	assert.Equal(t, run(), run(), "state differs between runs")
}
