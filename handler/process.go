// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/archivetp/archiverecord"
	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/payload"
	"github.com/bitmark-inc/archivetp/state"
)

// Process - validate a transaction and write its record
//
// nothing is written unless every check passes
func Process(family Family, log *logger.L, request *Request, access state.Access) error {

	in, err := payload.Parse(request.Payload)
	if nil != err {
		return err
	}

	action, err := in.Validate()
	if nil != err {
		return err
	}

	stateAddress, err := family.Namespace.Make(in.RefAddress)
	if nil != err {
		return err
	}

	prior, err := readRecord(access, stateAddress)
	if nil != err {
		return err
	}

	if payload.Replace == action && nil == prior {
		return fault.InvalidTransactionf("no record found on address: %s", stateAddress)
	}

	record, err := Transition(action, prior, in.ContentHash, in.DipHash)
	if nil != err {
		return err
	}

	if nil != log {
		switch action {
		case payload.Create:
			log.Infof("action: %s  address: %s  new archive record  content: %s  dip: %s", action, stateAddress, record.ContentHash, record.DipHash)
		case payload.Replace:
			log.Infof("action: %s  address: %s  modify archive record", action, stateAddress)
			log.Infof("content: %s → %s", prior.ContentHash, record.ContentHash)
			log.Infof("dip: %s → %s", prior.DipHash, record.DipHash)
		}
	}

	return writeRecord(access, stateAddress, record)
}

// fetch and decode the record at an address, nil if absent
func readRecord(access state.Access, stateAddress string) (*archiverecord.Record, error) {
	values, err := access.GetState([]string{stateAddress})
	if nil != err {
		return nil, classify("state read failed", err)
	}
	return archiverecord.Packed(values[stateAddress]).Unpack()
}

func writeRecord(access state.Access, stateAddress string, record *archiverecord.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}

	entries := []state.Entry{
		{Address: stateAddress, Data: packed},
	}
	written, err := access.SetState(entries)
	if nil != err {
		return classify("state write failed", err)
	}
	if 0 == len(written) {
		return fault.ErrStateWriteFailed
	}
	return nil
}

// a state layer may reject the transaction itself (e.g. an address
// it will not serve), anything else is a processor fault
func classify(message string, err error) error {
	if fault.IsErrInvalidTransaction(err) || fault.IsErrInternal(err) {
		return err
	}
	return fault.Internalf("%s: %s", message, err)
}
