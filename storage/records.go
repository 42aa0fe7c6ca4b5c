// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/hex"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/archivetp/fault"
)

// DigestLength - number of bytes in a state digest
const DigestLength = 32

// Digest - SHA3-256 over all committed records
type Digest [DigestLength]byte

// String - hex form for printing
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Records - call fn for every committed record in address order
//
// iteration stops early if fn returns false
func (s *Store) Records(fn func(address string, value []byte) bool) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}

	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{recordPrefix}), nil)
	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		if !fn(hex.EncodeToString(key[1:]), value) {
			break
		}
	}
	iter.Release()
	return iter.Error()
}

// Digest - identical on every node holding the same records
//
// each record contributes: len(address) ++ address ++ len(value) ++ value
// with lengths as big endian uint64
func (s *Store) Digest() (Digest, error) {
	h := sha3.New256()
	n := make([]byte, 8)

	err := s.Records(func(a string, value []byte) bool {
		binary.BigEndian.PutUint64(n, uint64(len(a)))
		h.Write(n)
		h.Write([]byte(a))
		binary.BigEndian.PutUint64(n, uint64(len(value)))
		h.Write(n)
		h.Write(value)
		return true
	})
	if nil != err {
		return Digest{}, err
	}

	d := Digest{}
	copy(d[:], h.Sum(nil))
	return d, nil
}
