// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Every failure of a transaction handler belongs to exactly one of two
// classes: InvalidTransactionError (the transaction is rejected and no
// state is changed) or InternalError (the processor itself failed).
// The remaining classes are used by the supporting packages.
package fault
