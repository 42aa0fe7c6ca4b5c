// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package archiverecord

import (
	"github.com/ugorji/go/codec"
)

// map keys of the stored form
const (
	ContentKey = "content"
	DipKey     = "dip"
)

// Record - an archived item
type Record struct {
	ContentHash string `json:"content"`
	DipHash     string `json:"dip"`
}

// Packed - stored form of a record
type Packed []byte

// the on-ledger layout, field order is the encoding order
//
// pointers distinguish a missing entry from an empty one
type stored struct {
	Content *string `codec:"content"`
	Dip     *string `codec:"dip"`
}

// decode side: any CBOR type may arrive, only text strings are accepted
type received struct {
	Content interface{} `codec:"content"`
	Dip     interface{} `codec:"dip"`
}

// shared read-only after init
var cborHandle codec.CborHandle

func init() {
	cborHandle.Canonical = false // keep declaration order: content, dip
}
