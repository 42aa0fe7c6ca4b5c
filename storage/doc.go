// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - local LevelDB backed ledger state
//
// Serves the state.Access interface to a transaction handler so that
// transactions can be replayed and inspected without a validator.
//
// Notes:
// 1. ++      = concatenation of byte data
// 2. address = 70 hex character state address stored as 35 bytes
//
// Records:
//
//   A ++ address               - state value
//                                data: packed archive record
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
//
// Writes made between Begin and Commit are held in a batch and are
// visible to GetState before they are committed.  Abort discards them.
package storage
