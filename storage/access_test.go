// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/state"
	"github.com/bitmark-inc/archivetp/storage/mocks"
)

var (
	value1 = []byte{0xa1, 0x61, 'a', 0x61, '1'}
	value2 = []byte{0xa1, 0x61, 'b', 0x61, '2'}
)

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	err := s.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = s.Begin()
	assert.Equal(t, fault.ErrBatchInUse, err, "second time Begin should return error")
}

func TestCommitResetsTransaction(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_ = s.Begin()
	_, _ = s.SetState([]state.Entry{{Address: address1, Data: value1}})
	err := s.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, 0, s.batch.Len(), "commit did not reset batch")
	err = s.Begin()
	assert.Nil(t, err, "commit did not reset in use")
}

func TestCommitWritesToDB(t *testing.T) {
	name := databaseName(t)
	s, err := Open(name, ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	_ = s.Begin()
	written, err := s.SetState([]state.Entry{
		{Address: address1, Data: value1},
		{Address: address2, Data: value2},
	})
	assert.Nil(t, err, "set state error")
	assert.Equal(t, []string{address1, address2}, written, "wrong written addresses")
	assert.Nil(t, s.Commit(), "commit error")
	s.Close()

	s, err = Open(name, ReadOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer s.Close()

	values, err := s.GetState([]string{address1, address2, address3})
	assert.Nil(t, err, "get state error")
	assert.Equal(t, value1, values[address1], "wrong value 1")
	assert.Equal(t, value2, values[address2], "wrong value 2")
	assert.Equal(t, []byte{}, values[address3], "missing value not empty")
}

func TestPendingWritesAreVisible(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_ = s.Begin()
	_, err := s.SetState([]state.Entry{{Address: address1, Data: value1}})
	assert.Nil(t, err, "set state error")

	values, err := s.GetState([]string{address1})
	assert.Nil(t, err, "get state error")
	assert.Equal(t, value1, values[address1], "pending value not visible")
}

func TestAbortDiscardsWrites(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_ = s.Begin()
	_, _ = s.SetState([]state.Entry{{Address: address1, Data: value1}})
	_ = s.Commit()

	_ = s.Begin()
	_, _ = s.SetState([]state.Entry{{Address: address1, Data: value2}})
	s.Abort()

	values, err := s.GetState([]string{address1})
	assert.Nil(t, err, "get state error")
	assert.Equal(t, value1, values[address1], "abort did not discard write")
}

func TestSetStateOutsideTransaction(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	written, err := s.SetState([]state.Entry{{Address: address1, Data: value1}})
	assert.Equal(t, fault.ErrBatchNotInUse, err, "wrong error")
	assert.Nil(t, written, "addresses returned")

	assert.Equal(t, fault.ErrBatchNotInUse, s.Commit(), "commit without begin")
}

func TestInvalidAddress(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	_, err := s.GetState([]string{"b11537"})
	assert.Equal(t, fault.ErrInvalidStateAddress, err, "short address accepted")

	_ = s.Begin()
	written, err := s.SetState([]state.Entry{
		{Address: address1, Data: value1},
		{Address: "B11537" + address1[6:], Data: value2},
	})
	assert.Equal(t, fault.ErrInvalidStateAddress, err, "upper case address accepted")
	assert.Nil(t, written, "addresses returned")
	assert.Equal(t, 0, s.batch.Len(), "partial write buffered")
}

func TestReadOnly(t *testing.T) {
	name := databaseName(t)
	s, err := Open(name, ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	s.Close()

	s, err = Open(name, ReadOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer s.Close()

	assert.Equal(t, fault.ErrDatabaseIsReadOnly, s.Begin(), "read only store allowed begin")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	s, err := Open(databaseName(t), ReadOnly)
	assert.NotNil(t, err, "missing database opened")
	assert.Nil(t, s, "store returned")
}

func TestNewerVersionIsRejected(t *testing.T) {
	name := databaseName(t)
	s, err := Open(name, ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	err = putVersion(s.db, currentVersion+1)
	assert.Nil(t, err, "put version error")
	s.Close()

	s, err = Open(name, ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersion, err, "newer database accepted")
	assert.Nil(t, s, "store returned")
}

func TestClosedStore(t *testing.T) {
	s := setupStore(t)
	s.Close()
	s.Close()

	_, err := s.GetState([]string{address1})
	assert.Equal(t, fault.ErrNotInitialised, err, "closed store readable")
	assert.Equal(t, fault.ErrNotInitialised, s.Begin(), "closed store writable")
}

func TestGetStateReadsCacheFirst(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	mc := mocks.NewMockCache(ctl)
	s.cache = mc

	key, _ := recordKey(address1)
	mc.EXPECT().Get(string(key)).Return(value2, true).Times(1)

	values, err := s.GetState([]string{address1})
	assert.Nil(t, err, "get state error")
	assert.Equal(t, value2, values[address1], "cache not consulted")
}

func TestSetStateFillsCache(t *testing.T) {
	s := setupStore(t)
	defer s.Close()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	mc := mocks.NewMockCache(ctl)
	s.cache = mc

	key, _ := recordKey(address1)
	gomock.InOrder(
		mc.EXPECT().Set(string(key), value1).Times(1),
		mc.EXPECT().Clear().Times(1),
	)

	_ = s.Begin()
	_, err := s.SetState([]state.Entry{{Address: address1, Data: value1}})
	assert.Nil(t, err, "set state error")
	s.Abort()
}
