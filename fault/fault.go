// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type IteratorError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigDirPath         = InvalidError("config directory is not a folder")
	ErrDuplicateItem         = ExistsError("duplicate item")
	ErrEmptyTree             = EmptyError("tree is empty")
	ErrInvalidCommand        = InvalidError("invalid command")
	ErrItemNotBinary         = InvalidError("item cannot marshal to binary")
	ErrItemNotFound          = NotFoundError("item not found")
	ErrIteratorExhausted     = IteratorError("iterator is exhausted")
	ErrRequiredDataDirectory = InvalidError("data directory is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e IteratorError) Error() string { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrIterator(e error) bool { _, ok := e.(IteratorError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
