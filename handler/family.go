// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/archivetp/address"
)

// registration values
const (
	FamilyName    = "archive"
	FamilyVersion = "1.0"
)

// Family - fixed identity of the transaction family
//
// computed once and never modified
type Family struct {
	Name      string
	Version   string
	Namespace address.Namespace
}

// NewFamily - the archive family
func NewFamily() Family {
	return Family{
		Name:      FamilyName,
		Version:   FamilyVersion,
		Namespace: address.NewNamespace(FamilyName),
	}
}
