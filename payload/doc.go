// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payload - archive transaction body
//
// The body is UTF-8 text of exactly four comma separated fields:
//
//   ref_address,action,content_hash,dip_hash
//
// There is no escaping, a comma can never appear inside a field.
// Trailing empty fields are discarded before the fields are counted,
// so "r,create,c,d,," is accepted as four fields and "r,create,c," is
// rejected as three.
package payload
