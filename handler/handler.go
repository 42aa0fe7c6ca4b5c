// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/archivetp/fault"
	"github.com/bitmark-inc/archivetp/state"
)

// Request - a transaction delivered by the processor
type Request struct {
	Payload   []byte
	Signature string // transaction id, only used for logging
}

// Handler - registered with a transaction processor
type Handler struct {
	family Family
	log    *logger.L
}

// New - create a handler
//
// log may be nil to disable logging
func New(log *logger.L) *Handler {
	return &Handler{
		family: NewFamily(),
		log:    log,
	}
}

// FamilyName - name used to route transactions to this handler
func (h *Handler) FamilyName() string {
	return h.family.Name
}

// FamilyVersion - version used to route transactions to this handler
func (h *Handler) FamilyVersion() string {
	return h.family.Version
}

// Namespaces - address prefixes this handler may read and write
func (h *Handler) Namespaces() []string {
	return []string{h.family.Namespace.String()}
}

// Family - the immutable family description
func (h *Handler) Family() Family {
	return h.family
}

// Apply - process one transaction against state
func (h *Handler) Apply(request *Request, access state.Access) error {
	err := Process(h.family, h.log, request, access)
	if nil != err && nil != h.log {
		if fault.IsErrInternal(err) {
			h.log.Errorf("transaction: %s  internal error: %s", request.Signature, err)
		} else {
			h.log.Debugf("transaction: %s  rejected: %s", request.Signature, err)
		}
	}
	return err
}
