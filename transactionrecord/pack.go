// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/jacklund/blockchain/util"
)

// Pack - turn an outpoint into its 36 byte form
func (outpoint Outpoint) Pack() Packed {
	buffer := make(Packed, 0, OutpointSize)
	return outpoint.appendTo(buffer)
}

// Pack - outpoint, compact size prefixed script then LE32 sequence
func (input Input) Pack() Packed {
	buffer := make(Packed, 0, OutpointSize+util.CompactSizeLength(uint64(len(input.Script)))+len(input.Script)+sequenceSize)
	return input.appendTo(buffer)
}

// Pack - LE64 value then compact size prefixed script
func (output Output) Pack() Packed {
	buffer := make(Packed, 0, valueSize+util.CompactSizeLength(uint64(len(output.Script)))+len(output.Script))
	return output.appendTo(buffer)
}

// Pack - turn a transaction into its wire form
//
// version, inputs and outputs each preceded by a compact size count,
// then lock time
func (tx *Transaction) Pack() (Packed, error) {
	buffer := make(Packed, 0, tx.packedLength())

	buffer = appendUint32(buffer, tx.Version)

	buffer = append(buffer, util.ToCompactSize(uint64(len(tx.Inputs)))...)
	for _, input := range tx.Inputs {
		buffer = input.appendTo(buffer)
	}

	buffer = append(buffer, util.ToCompactSize(uint64(len(tx.Outputs)))...)
	for _, output := range tx.Outputs {
		buffer = output.appendTo(buffer)
	}

	buffer = appendUint32(buffer, tx.LockTime)

	return buffer, nil
}

// exact size so that Pack never reallocates
func (tx *Transaction) packedLength() int {
	n := versionSize + lockTimeSize
	n += util.CompactSizeLength(uint64(len(tx.Inputs)))
	for _, input := range tx.Inputs {
		n += OutpointSize + util.CompactSizeLength(uint64(len(input.Script))) + len(input.Script) + sequenceSize
	}
	n += util.CompactSizeLength(uint64(len(tx.Outputs)))
	for _, output := range tx.Outputs {
		n += valueSize + util.CompactSizeLength(uint64(len(output.Script))) + len(output.Script)
	}
	return n
}

func (outpoint Outpoint) appendTo(buffer Packed) Packed {
	buffer = append(buffer, outpoint.TxId[:]...)
	return appendUint32(buffer, outpoint.Index)
}

func (input Input) appendTo(buffer Packed) Packed {
	buffer = input.Previous.appendTo(buffer)
	buffer = appendBytes(buffer, input.Script)
	return appendUint32(buffer, input.Sequence)
}

func (output Output) appendTo(buffer Packed) Packed {
	buffer = appendUint64(buffer, output.Value)
	return appendBytes(buffer, output.Script)
}

// append a bytes to a buffer
//
// the field is prefixed by CompactSize(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToCompactSize(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a little endian uint32 to buffer
func appendUint32(buffer Packed, value uint32) Packed {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// append a little endian uint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}
