// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package archiverecord

import (
	"github.com/ugorji/go/codec"

	"github.com/bitmark-inc/archivetp/fault"
)

// CBOR major type 5 in the top three bits
const (
	majorTypeMask = 0xe0
	majorTypeMap  = 0xa0
)

// IsAbsent - true if no record is stored
func (packed Packed) IsAbsent() bool {
	return 0 == len(packed)
}

// Unpack - decode the stored form of a record
//
// returns nil with no error when the record is absent
func (packed Packed) Unpack() (*Record, error) {
	if packed.IsAbsent() {
		return nil, nil
	}

	if majorTypeMap != packed[0]&majorTypeMask {
		return nil, fault.ErrNotArchiveRecord
	}

	r := received{}
	decoder := codec.NewDecoderBytes(packed, &cborHandle)
	err := decoder.Decode(&r)
	if nil != err {
		return nil, fault.InvalidTransactionf("%s: %s", fault.ErrNotArchiveRecord, err)
	}

	// exactly one map, nothing after it
	if decoder.NumBytesRead() != len(packed) {
		return nil, fault.ErrTrailingData
	}

	content, err := textField(r.Content, fault.ErrMissingContentKey)
	if nil != err {
		return nil, err
	}
	dip, err := textField(r.Dip, fault.ErrMissingDipKey)
	if nil != err {
		return nil, err
	}

	return &Record{
		ContentHash: content,
		DipHash:     dip,
	}, nil
}

// a missing or empty entry gives errMissing, a byte string or any
// other non-text value is rejected
func textField(value interface{}, errMissing error) (string, error) {
	if nil == value {
		return "", errMissing
	}
	s, ok := value.(string)
	if !ok {
		return "", fault.ErrFieldNotText
	}
	if "" == s {
		return "", errMissing
	}
	return s, nil
}
