// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrChildLimitExceeded      = LimitError("a node cannot have more than two children")
	ErrEmptyValue              = InvalidError("value must not be empty")
	ErrInconsistentTree        = ProcessError("tree structure is inconsistent")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrMissingArgument         = InvalidError("missing argument")
	ErrNodeNotFound            = NotFoundError("node not found")
	ErrParentNotFound          = NotFoundError("parent node not found or full")
	ErrRootAlreadyExists       = ExistsError("root already exists")
	ErrTooManyArguments        = InvalidError("too many arguments")
	ErrUnknownCommand          = InvalidError("unknown command")
	ErrUnknownOutputFormat     = InvalidError("unknown output format")
	ErrUnquotedSeparator       = InvalidError("; & | < and > must be quoted")
	ErrUnterminatedQuote       = InvalidError("unterminated quote")
	ErrUnsupportedConfigFormat = InvalidError("unsupported configuration file format")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
