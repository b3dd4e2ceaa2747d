// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EnvelopeError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBatchInUse             = ProcessError("batch already in use")
	ErrBlockExists            = ExistsError("block already stored")
	ErrBlockLengthExceedsData = EnvelopeError("block length exceeds available data")
	ErrBlockNotFound          = NotFoundError("block not found")
	ErrBlockTrailingData      = EnvelopeError("block has data after last payload")
	ErrDatabaseVersion        = InvalidError("database version is newer than supported")
	ErrInsufficientWork       = InvalidError("block digest exceeds target")
	ErrInvalidAlgorithm       = InvalidError("invalid hash algorithm")
	ErrInvalidBits            = InvalidError("invalid compact target bits")
	ErrInvalidCharacter       = InvalidError("invalid character")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidDigestLength    = InvalidError("invalid digest length")
	ErrInvalidMagic           = EnvelopeError("block magic number mismatch")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMerkleRootMismatch     = InvalidError("merkle root does not match payloads")
	ErrMissingParameters      = InvalidError("missing parameters")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrPayloadPackFailed      = ProcessError("payload pack failed")
	ErrPreviousBlockMismatch  = InvalidError("previous block digest does not match")
	ErrTransactionNotFound    = NotFoundError("transaction not found")
	ErrTruncatedInput         = LengthError("truncated input")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EnvelopeError) Error() string { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEnvelope(e error) bool { _, ok := e.(EnvelopeError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// IsErrTruncated - the decoder ran out of bytes
func IsErrTruncated(e error) bool { return IsErrLength(e) }

// IsErrMalformedEnvelope - the block framing was rejected
func IsErrMalformedEnvelope(e error) bool { return IsErrEnvelope(e) }
