// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - access to ledger state during one transaction
package state

//go:generate mockgen -source=state.go -destination=mocks/state.go -package=mocks

// Entry - a value to be written at an address
type Entry struct {
	Address string
	Data    []byte
}

// Access - the ledger's view of state for the transaction being processed
//
// GetState returns an empty value for any address that holds nothing.
// SetState returns the addresses that were actually written.
type Access interface {
	GetState(addresses []string) (map[string][]byte, error)
	SetState(entries []Entry) ([]string, error)
}
