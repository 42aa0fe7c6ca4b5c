// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/archivetp/fault"
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

const (
	recordPrefix   = 'A'
	currentVersion = 0x100
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// Store - an open state database
type Store struct {
	sync.Mutex
	log      *logger.L
	db       *leveldb.DB
	readOnly bool
	batch    *leveldb.Batch
	cache    Cache
	inUse    bool
}

// Open - open or create a state database
func Open(fileName string, readOnly bool) (*Store, error) {
	log := logger.New("storage")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	db, version, err := getDB(fileName, readOnly)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			db.Close()
			log.Criticalf("database: %q has no version", fileName)
			return nil, fault.ErrDatabaseVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %q  version: %d  read only: %t", fileName, currentVersion, readOnly)

	return &Store{
		log:      log,
		db:       db,
		readOnly: readOnly,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}, nil
}

// Close - discard any open batch and close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return
	}
	if s.inUse {
		s.log.Warnf("closing with %d uncommitted writes", s.batch.Len())
	}
	s.db.Close()
	s.db = nil
	s.log.Info("closed")
	s.log.Flush()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(version))

	return db.Put(versionKey, v, nil)
}
