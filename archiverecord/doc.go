// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package archiverecord - the value stored at an archive state address
//
// A record is stored as a CBOR map of exactly two text entries, always
// written in this order:
//
//   "content" → content hash
//   "dip"     → dip hash
//
// so every node produces identical bytes for the same record.  An empty
// value means no record exists at that address.
package archiverecord
