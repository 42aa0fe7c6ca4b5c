// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InternalError GenericError
type InvalidError GenericError
type InvalidTransactionError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised          = ExistsError("already initialised")
	ErrBatchInUse                  = ProcessError("batch already in use")
	ErrBatchNotInUse               = ProcessError("batch not in use")
	ErrConfigurationNotTable       = InvalidError("configuration did not return a table")
	ErrContentHashRequired         = InvalidTransactionError("content hash is required")
	ErrDatabaseIsReadOnly          = ProcessError("database is read only")
	ErrDatabaseVersion             = InvalidError("database version is not supported")
	ErrDipHashRequired             = InvalidTransactionError("dip hash is required")
	ErrEncodeFailed                = InternalError("failed to encode archive record")
	ErrFieldNotText                = InvalidTransactionError("archive record entry is not a text string")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidPayloadSerialization = InvalidTransactionError("invalid payload serialization")
	ErrInvalidRecord               = InternalError("archive record field is empty")
	ErrInvalidStateAddress         = InvalidTransactionError("invalid state address")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrMissingContentKey           = InvalidTransactionError("archive record has no content entry")
	ErrMissingDipKey               = InvalidTransactionError("archive record has no dip entry")
	ErrNoRecordFound               = InvalidTransactionError("no record found")
	ErrNotArchiveRecord            = InvalidTransactionError("not an archive record")
	ErrNotInitialised              = NotFoundError("not initialised")
	ErrRefAddressNotHex            = InvalidTransactionError("ref address is not lowercase hex")
	ErrRefAddressRequired          = InvalidTransactionError("ref address is required")
	ErrRefAddressTooShort          = InvalidTransactionError("ref address is too short")
	ErrStateWriteFailed            = InternalError("state write failed")
	ErrTrailingData                = InvalidTransactionError("archive record has trailing data")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string             { return string(e) }
func (e InternalError) Error() string           { return string(e) }
func (e InvalidError) Error() string            { return string(e) }
func (e InvalidTransactionError) Error() string { return string(e) }
func (e NotFoundError) Error() string           { return string(e) }
func (e ProcessError) Error() string            { return string(e) }

// InvalidTransactionf - build a transaction rejection that carries data
func InvalidTransactionf(format string, arguments ...interface{}) error {
	return InvalidTransactionError(fmt.Sprintf(format, arguments...))
}

// Internalf - build a processor fault that carries data
func Internalf(format string, arguments ...interface{}) error {
	return InternalError(fmt.Sprintf(format, arguments...))
}

// determine the class of an error
func IsErrExists(e error) bool             { var t ExistsError; return errors.As(e, &t) }
func IsErrInternal(e error) bool           { var t InternalError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool            { var t InvalidError; return errors.As(e, &t) }
func IsErrInvalidTransaction(e error) bool { var t InvalidTransactionError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool           { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool            { var t ProcessError; return errors.As(e, &t) }
