// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payload

import (
	"strings"

	"github.com/bitmark-inc/archivetp/fault"
)

const (
	separator  = ","
	fieldCount = 4
)

// Input - the fields of one transaction body, as received
type Input struct {
	RefAddress  string
	Action      string
	ContentHash string
	DipHash     string
}

// Parse - split a transaction body into its fields
//
// field values are not checked here, see Validate
func Parse(body []byte) (*Input, error) {
	fields := splitFields(string(body))
	if fieldCount != len(fields) {
		return nil, fault.ErrInvalidPayloadSerialization
	}
	return &Input{
		RefAddress:  fields[0],
		Action:      fields[1],
		ContentHash: fields[2],
		DipHash:     fields[3],
	}, nil
}

// Format - the wire form of an input
func (in *Input) Format() []byte {
	return []byte(strings.Join([]string{in.RefAddress, in.Action, in.ContentHash, in.DipHash}, separator))
}

// split on every separator then drop trailing empty fields,
// a body without any separator is a single field even if empty
func splitFields(s string) []string {
	fields := strings.Split(s, separator)
	if 1 == len(fields) {
		return fields
	}
	n := len(fields)
	for n > 0 && "" == fields[n-1] {
		n -= 1
	}
	return fields[:n]
}
