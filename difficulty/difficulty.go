// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/jacklund/blockchain/fault"
)

// DefaultBits - the compact form of the difficulty 1 target
const DefaultBits = Bits(0x1d00ffff)

// Bits - compact encoded 256 bit target as carried in a block header
//
// byte 3:    exponent (number of bytes in the target)
// byte 0..2: mantissa, bit 23 is a sign bit
type Bits uint32

// maximum target, difficulty is measured relative to this
var maximumTarget = func() *big.Int {
	t, _ := DefaultBits.Target()
	return t
}()

// Target - expand the compact form into a 256 bit integer
func (bits Bits) Target() (*big.Int, error) {
	u := uint32(bits)
	exponent := int(u >> 24)
	mantissa := u & 0x007fffff

	// negative values are not targets
	if 0 != u&0x00800000 && 0 != mantissa {
		return nil, fault.ErrInvalidBits
	}

	// would not fit in 256 bits
	if 0 != mantissa && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32)) {
		return nil, fault.ErrInvalidBits
	}

	t := new(big.Int)
	if exponent <= 3 {
		t.SetUint64(uint64(mantissa >> uint(8*(3-exponent))))
	} else {
		t.SetUint64(uint64(mantissa))
		t.Lsh(t, uint(8*(exponent-3)))
	}
	return t, nil
}

// Difficulty - how many times harder than the difficulty 1 target
func (bits Bits) Difficulty() (float64, error) {
	t, err := bits.Target()
	if nil != err {
		return 0, err
	}
	if 0 == t.Sign() {
		return 0, fault.ErrInvalidBits
	}

	q := new(big.Float).Quo(new(big.Float).SetInt(maximumTarget), new(big.Float).SetInt(t))
	f, _ := q.Float64()
	return f, nil
}

// String - the big endian hex encoded compact value
func (bits Bits) String() string {
	return fmt.Sprintf("%08x", uint32(bits))
}

// GoString - for the %#v format use 256 bit value
func (bits Bits) GoString() string {
	t, err := bits.Target()
	if nil != err {
		return "<invalid:" + bits.String() + ">"
	}
	return fmt.Sprintf("%064x", t)
}

// MarshalText - compact value as big endian hex for JSON
func (bits Bits) MarshalText() ([]byte, error) {
	return []byte(bits.String()), nil
}

// UnmarshalText - big endian hex to compact value
func (bits *Bits) UnmarshalText(s []byte) error {
	if 8 != len(s) {
		return fault.ErrInvalidBits
	}
	buffer := make([]byte, 4)
	if _, err := hex.Decode(buffer, s); nil != err {
		return err
	}
	*bits = Bits(uint32(buffer[0])<<24 | uint32(buffer[1])<<16 | uint32(buffer[2])<<8 | uint32(buffer[3]))
	return nil
}
