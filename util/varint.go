// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/jacklund/blockchain/fault"
)

// CompactSizeMaximumBytes - maximum possible number of bytes in a compact size
const CompactSizeMaximumBytes = 9

// marker bytes selecting the width of the value that follows
const (
	compactSize16 = 0xfd
	compactSize32 = 0xfe
	compactSize64 = 0xff
)

// ToCompactSize - convert a 64 bit unsigned integer to a compact size
//
// Structure of the result
//   0x00..0xfc:  single byte value
//   0xfd:        followed by little endian uint16
//   0xfe:        followed by little endian uint32
//   0xff:        followed by little endian uint64
func ToCompactSize(value uint64) []byte {
	switch {
	case value < compactSize16:
		return []byte{byte(value)}

	case value <= 0xffff:
		result := make([]byte, 3)
		result[0] = compactSize16
		binary.LittleEndian.PutUint16(result[1:], uint16(value))
		return result

	case value <= 0xffffffff:
		result := make([]byte, 5)
		result[0] = compactSize32
		binary.LittleEndian.PutUint32(result[1:], uint32(value))
		return result

	default:
		result := make([]byte, 9)
		result[0] = compactSize64
		binary.LittleEndian.PutUint64(result[1:], value)
		return result
	}
}

// CompactSizeLength - number of bytes ToCompactSize will produce
func CompactSizeLength(value uint64) int {
	switch {
	case value < compactSize16:
		return 1
	case value <= 0xffff:
		return 3
	case value <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// FromCompactSize - convert a compact size at the start of buffer to a uint64
//
// also return the number of bytes used as second value
// a buffer too short for the width selected by the first byte is an error
//
// Note: an over-long encoding (e.g. 0xfd 0x01 0x00) is accepted
func FromCompactSize(buffer []byte) (uint64, int, error) {
	if 0 == len(buffer) {
		return 0, 0, fault.ErrTruncatedInput
	}

	width := 0
	switch buffer[0] {
	case compactSize16:
		width = 2
	case compactSize32:
		width = 4
	case compactSize64:
		width = 8
	default:
		return uint64(buffer[0]), 1, nil
	}

	if len(buffer) < 1+width {
		return 0, 0, fault.ErrTruncatedInput
	}

	b := buffer[1 : 1+width]
	value := uint64(0)
	switch width {
	case 2:
		value = uint64(binary.LittleEndian.Uint16(b))
	case 4:
		value = uint64(binary.LittleEndian.Uint32(b))
	default:
		value = binary.LittleEndian.Uint64(b)
	}
	return value, 1 + width, nil
}

// IsCanonicalCompactSize - true if the compact size at the start of
// buffer is decodable and uses the shortest form for its value
func IsCanonicalCompactSize(buffer []byte) bool {
	value, n, err := FromCompactSize(buffer)
	if nil != err {
		return false
	}
	return n == CompactSizeLength(value)
}

// ClippedCompactSize - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedCompactSize(buffer []byte, minimum int, maximum int) (int, int, error) {
	if minimum < 0 || maximum < 0 || minimum > maximum {
		return 0, 0, fault.ErrInvalidCount
	}

	value, count, err := FromCompactSize(buffer)
	if nil != err {
		return 0, 0, err
	}
	if value < uint64(minimum) || value > uint64(maximum) {
		return 0, 0, fault.ErrInvalidCount
	}
	return int(value), count, nil
}
