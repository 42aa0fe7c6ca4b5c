// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"github.com/bitmark-inc/archivetp/fault"
)

// Validate - check the fields of an input and decode its action
//
// checks run in a fixed order and the first failure is returned
func (in *Input) Validate() (Action, error) {
	if "" == in.RefAddress {
		return 0, fault.ErrRefAddressRequired
	}
	if "" == in.ContentHash {
		return 0, fault.ErrContentHashRequired
	}
	if "" == in.DipHash {
		return 0, fault.ErrDipHashRequired
	}
	return ActionFromString(in.Action)
}
