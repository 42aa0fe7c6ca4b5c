// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/archivetp/archiverecord"
	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/payload"
)

// Transition - the record that results from applying action
//
// prior is nil when no record exists.  create does not look at prior
// and will overwrite an existing record.  The result never carries
// any value from prior.
func Transition(action payload.Action, prior *archiverecord.Record, contentHash string, dipHash string) (*archiverecord.Record, error) {
	switch action {
	case payload.Create:
		return &archiverecord.Record{
			ContentHash: contentHash,
			DipHash:     dipHash,
		}, nil

	case payload.Replace:
		if nil == prior {
			return nil, fault.ErrNoRecordFound
		}
		return &archiverecord.Record{
			ContentHash: contentHash,
			DipHash:     dipHash,
		}, nil

	default:
		return nil, fault.InvalidTransactionf("invalid action: %s", action)
	}
}
