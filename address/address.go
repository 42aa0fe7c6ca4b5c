// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/bitmark-inc/archivetp/fault"
)

// lengths in hex characters
const (
	NamespaceLength = 6
	ReferenceLength = 64
	Length          = NamespaceLength + ReferenceLength
)

// Namespace - fixed prefix of every address owned by a family
type Namespace string

// NewNamespace - derive the namespace prefix of a family
func NewNamespace(familyName string) Namespace {
	digest := sha512.Sum512([]byte(familyName))
	return Namespace(hex.EncodeToString(digest[:])[:NamespaceLength])
}

// String - namespace as hex text
func (ns Namespace) String() string {
	return string(ns)
}

// Make - address of the record identified by reference
//
// only the first ReferenceLength characters of reference are used and
// they must be lowercase hex, anything after them is ignored
func (ns Namespace) Make(reference string) (string, error) {
	if len(reference) < ReferenceLength {
		return "", fault.ErrRefAddressTooShort
	}
	prefix := reference[:ReferenceLength]
	if !isHex(prefix) {
		return "", fault.ErrRefAddressNotHex
	}
	return string(ns) + prefix, nil
}

// Owns - true if address lies in this namespace
func (ns Namespace) Owns(address string) bool {
	return len(address) >= len(ns) && address[:len(ns)] == string(ns)
}

// IsValid - check that s has the form of a state address
func IsValid(s string) bool {
	return Length == len(s) && isHex(s)
}

// lowercase hex digits only, checked per byte so any multi-byte
// character fails
func isHex(s string) bool {
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
