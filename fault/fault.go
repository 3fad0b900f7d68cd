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
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocatorExhausted   = ProcessError("allocator exhausted")
	ErrAllocatorShortBlock  = ProcessError("allocator returned a short block")
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceFactor        = InvalidError("balance factor out of range")
	ErrCountMismatch        = InvalidError("node count mismatch")
	ErrHeightMismatch       = InvalidError("node height mismatch")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvalidError("keys out of order")
	ErrMissingConfiguration = NotFoundError("missing configuration table")
	ErrParentLink           = InvalidError("parent link inconsistent")
	ErrReferenceMismatch    = InvalidError("differs from reference map")
	ErrTooManyNodes         = LengthError("too many nodes")
	ErrUnknownAllocator     = NotFoundError("unknown allocator")
	ErrUnknownScenario      = NotFoundError("unknown scenario")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, also through any wrapping
func IsErrExists(e error) bool {
	var x ExistsError
	return errors.As(e, &x)
}

func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x)
}

func IsErrLength(e error) bool {
	var x LengthError
	return errors.As(e, &x)
}

func IsErrNotFound(e error) bool {
	var x NotFoundError
	return errors.As(e, &x)
}

func IsErrProcess(e error) bool {
	var x ProcessError
	return errors.As(e, &x)
}

// PreconditionError - the value a precondition violation panics with
type PreconditionError struct {
	Message string // what the caller did wrong
	Size    int    // size of the container at the time
	Index   int    // offending record index, -1 for the end position
}

// Error - message with its context
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s (size: %d  index: %d)", e.Message, e.Size, e.Index)
}

// IsPrecondition - determine if an error is a precondition violation
func IsPrecondition(e error) bool {
	var x *PreconditionError
	return errors.As(e, &x)
}
