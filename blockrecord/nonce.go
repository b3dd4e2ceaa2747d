// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/jacklund/blockchain/fault"
)

// NonceType - type for nonce
type NonceType uint32

const nonceHexLength = 2 * NonceSize

// MarshalText - convert a nonce to little endian hex for JSON
func (nonce NonceType) MarshalText() ([]byte, error) {
	bits := make([]byte, NonceSize)
	binary.LittleEndian.PutUint32(bits, uint32(nonce))

	buffer := make([]byte, hex.EncodedLen(len(bits)))
	hex.Encode(buffer, bits)
	return buffer, nil
}

// UnmarshalText - convert a nonce little endian hex string to nonce value
func (nonce *NonceType) UnmarshalText(s []byte) error {
	if nonceHexLength != len(s) {
		return fault.ErrInvalidCharacter
	}

	buffer := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidCharacter
	}
	*nonce = NonceType(binary.LittleEndian.Uint32(buffer))
	return nil
}
