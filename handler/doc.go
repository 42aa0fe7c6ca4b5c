// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - the archive transaction family
//
// Apply takes one transaction and the current ledger state and either
// writes the new archive record or rejects the transaction.  Every node
// must reach the same result for the same input, so nothing here
// depends on time, randomness or previous calls.
//
// Errors are always one of:
//
//   fault.InvalidTransactionError - rejected, state unchanged
//   fault.InternalError           - the processor failed
package handler
