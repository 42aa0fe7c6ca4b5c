// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/archivetp/fault"
)

// command errors - keep in alphabetic order
var (
	ErrEmptyValue        = fault.InvalidError("value is empty")
	ErrRequiredHexValue  = fault.InvalidError("one hex value is required")
	ErrRequiredReference = fault.InvalidError("one reference is required")
)
