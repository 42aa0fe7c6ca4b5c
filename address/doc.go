// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - ledger state addresses for a transaction family
//
// A state address is 70 lowercase hex characters:
//
//   namespace (6) ++ first 64 characters of the record reference
//
// where namespace is the first 6 hex characters of SHA-512(family name).
// Lengths are counted in bytes, so a reference whose first 64 bytes are
// not lowercase hex digits is rejected rather than cut inside a
// character.
package address
