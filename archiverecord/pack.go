// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package archiverecord

import (
	"github.com/ugorji/go/codec"

	"github.com/bitmark-inc/archivetp/fault"
)

// Pack - encode a record to its stored form
func (record *Record) Pack() (Packed, error) {
	if "" == record.ContentHash || "" == record.DipHash {
		return nil, fault.ErrInvalidRecord
	}

	s := stored{
		Content: &record.ContentHash,
		Dip:     &record.DipHash,
	}

	buffer := make([]byte, 0, 16+len(record.ContentHash)+len(record.DipHash))
	err := codec.NewEncoderBytes(&buffer, &cborHandle).Encode(&s)
	if nil != err {
		return nil, fault.Internalf("%s: %s", fault.ErrEncodeFailed, err)
	}
	return buffer, nil
}
