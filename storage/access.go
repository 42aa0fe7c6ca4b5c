// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/hex"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/archivetp/address"
	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/state"
)

// Begin - start collecting writes for one transaction
func (s *Store) Begin() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}
	if s.readOnly {
		return fault.ErrDatabaseIsReadOnly
	}
	if s.inUse {
		return fault.ErrBatchInUse
	}
	s.inUse = true
	return nil
}

// Commit - write all pending values
func (s *Store) Commit() error {
	s.Lock()
	defer s.Unlock()

	if !s.inUse {
		return fault.ErrBatchNotInUse
	}

	err := s.db.Write(s.batch, nil)
	if nil != err {
		return err
	}
	s.log.Debugf("committed: %d values", s.batch.Len())
	s.reset()
	return nil
}

// Abort - discard all pending values
func (s *Store) Abort() {
	s.Lock()
	defer s.Unlock()

	if s.inUse && s.batch.Len() > 0 {
		s.log.Debugf("aborted: %d values", s.batch.Len())
	}
	s.reset()
}

func (s *Store) reset() {
	s.batch.Reset()
	s.cache.Clear()
	s.inUse = false
}

// GetState - read the values at addresses, pending writes first
//
// an address holding nothing maps to an empty value
func (s *Store) GetState(addresses []string) (map[string][]byte, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	result := make(map[string][]byte, len(addresses))
	for _, a := range addresses {
		key, err := recordKey(a)
		if nil != err {
			return nil, err
		}

		if value, found := s.cache.Get(string(key)); found {
			result[a] = value
			continue
		}

		value, err := s.db.Get(key, nil)
		if leveldb.ErrNotFound == err {
			result[a] = []byte{}
			continue
		} else if nil != err {
			return nil, err
		}
		result[a] = value
	}
	return result, nil
}

// SetState - add values to the open batch
//
// returns the addresses written in entry order
func (s *Store) SetState(entries []state.Entry) ([]string, error) {
	s.Lock()
	defer s.Unlock()

	if !s.inUse {
		return nil, fault.ErrBatchNotInUse
	}

	// check everything before buffering anything
	keys := make([][]byte, len(entries))
	for i, e := range entries {
		key, err := recordKey(e.Address)
		if nil != err {
			return nil, err
		}
		keys[i] = key
	}

	written := make([]string, 0, len(entries))
	for i, e := range entries {
		value := make([]byte, len(e.Data))
		copy(value, e.Data)

		s.batch.Put(keys[i], value)
		s.cache.Set(string(keys[i]), value)
		written = append(written, e.Address)
	}
	return written, nil
}

// prefix ++ binary address
func recordKey(a string) ([]byte, error) {
	if !address.IsValid(a) {
		return nil, fault.ErrInvalidStateAddress
	}
	key := make([]byte, 1+address.Length/2)
	key[0] = recordPrefix
	_, err := hex.Decode(key[1:], []byte(a))
	if nil != err {
		return nil, fault.ErrInvalidStateAddress
	}
	return key, nil
}
