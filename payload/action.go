// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"github.com/bitmark-inc/archivetp/fault"
)

// Action - operation requested by a transaction
type Action int

// the only recognised actions
const (
	Create Action = iota + 1
	Replace
)

// wire forms
const (
	createText  = "create"
	replaceText = "replace"
)

// ActionFromString - convert the wire form of an action
func ActionFromString(s string) (Action, error) {
	switch s {
	case createText:
		return Create, nil
	case replaceText:
		return Replace, nil
	default:
		return 0, fault.InvalidTransactionf("invalid action: %s", s)
	}
}

// String - the wire form
func (a Action) String() string {
	switch a {
	case Create:
		return createText
	case Replace:
		return replaceText
	default:
		return "*unknown*"
	}
}
