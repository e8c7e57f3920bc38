// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBlackHeightMismatch    = ProcessError("black height differs between paths")
	ErrBrokenParentLink       = ProcessError("parent link is inconsistent")
	ErrCountMismatch          = ProcessError("node count does not match tree")
	ErrHeightMismatch         = ProcessError("stored height does not match subtree height")
	ErrInvalidBenchmarkSize   = InvalidError("benchmark size must be positive")
	ErrInvalidDiscipline      = InvalidError("invalid balancing discipline")
	ErrInvalidKey             = InvalidError("invalid key")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidOutputFormat    = InvalidError("invalid output format")
	ErrInvalidSearchFraction  = InvalidError("search fraction must be positive")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidWorkloadOrder   = InvalidError("invalid workload order")
	ErrKeyExists              = ExistsError("key already exists")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrKeyOrder               = ProcessError("keys are not in strictly increasing order")
	ErrNotADirectory          = InvalidError("path is not a directory")
	ErrNotPlainFileName       = InvalidError("file name must not contain a directory")
	ErrNoTreeSelected         = NotFoundError("no tree selected")
	ErrRedRedViolation        = ProcessError("red node has a red child")
	ErrRedRoot                = ProcessError("root is red")
	ErrUnbalanced             = ProcessError("subtree heights differ by more than one")
	ErrVerificationOperations = InvalidError("verification operations must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
