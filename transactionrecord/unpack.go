// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/util"
)

// the smallest possible packed input and output, used to reject a
// count that could not possibly fit in the remaining bytes
const (
	minimumInputSize  = OutpointSize + 1 + sequenceSize
	minimumOutputSize = valueSize + 1
)

// UnpackOutpoint - read a 36 byte outpoint from the start of buffer
func UnpackOutpoint(buffer []byte) (Outpoint, int, error) {
	if len(buffer) < OutpointSize {
		return Outpoint{}, 0, fault.ErrTruncatedInput
	}
	outpoint := Outpoint{
		Index: binary.LittleEndian.Uint32(buffer[txIdSize:OutpointSize]),
	}
	copy(outpoint.TxId[:], buffer[:txIdSize])
	return outpoint, OutpointSize, nil
}

// UnpackInput - read an input from the start of buffer
//
// returns the input and the number of bytes consumed
func UnpackInput(buffer []byte) (Input, int, error) {
	previous, n, err := UnpackOutpoint(buffer)
	if nil != err {
		return Input{}, 0, err
	}

	script, scriptLength, err := unpackBytes(buffer[n:])
	if nil != err {
		return Input{}, 0, err
	}
	n += scriptLength

	sequence, err := unpackUint32(buffer[n:])
	if nil != err {
		return Input{}, 0, err
	}
	n += sequenceSize

	input := Input{
		Previous: previous,
		Script:   script,
		Sequence: sequence,
	}
	return input, n, nil
}

// UnpackOutput - read an output from the start of buffer
func UnpackOutput(buffer []byte) (Output, int, error) {
	if len(buffer) < valueSize {
		return Output{}, 0, fault.ErrTruncatedInput
	}
	value := binary.LittleEndian.Uint64(buffer[:valueSize])
	n := valueSize

	script, scriptLength, err := unpackBytes(buffer[n:])
	if nil != err {
		return Output{}, 0, err
	}
	n += scriptLength

	output := Output{
		Value:  value,
		Script: script,
	}
	return output, n, nil
}

// UnpackTransaction - read a transaction from the start of buffer
//
// the counts are read before their items and any count that cannot
// fit in the remaining bytes is rejected before allocation
func UnpackTransaction(buffer []byte) (*Transaction, int, error) {
	version, err := unpackUint32(buffer)
	if nil != err {
		return nil, 0, err
	}
	n := versionSize

	inputCount, countLength, err := unpackCount(buffer[n:], minimumInputSize)
	if nil != err {
		return nil, 0, err
	}
	n += countLength

	inputs := make([]Input, 0, inputCount)
	for i := 0; i < inputCount; i += 1 {
		input, inputLength, err := UnpackInput(buffer[n:])
		if nil != err {
			return nil, 0, err
		}
		n += inputLength
		inputs = append(inputs, input)
	}

	outputCount, countLength, err := unpackCount(buffer[n:], minimumOutputSize)
	if nil != err {
		return nil, 0, err
	}
	n += countLength

	outputs := make([]Output, 0, outputCount)
	for i := 0; i < outputCount; i += 1 {
		output, outputLength, err := UnpackOutput(buffer[n:])
		if nil != err {
			return nil, 0, err
		}
		n += outputLength
		outputs = append(outputs, output)
	}

	lockTime, err := unpackUint32(buffer[n:])
	if nil != err {
		return nil, 0, err
	}
	n += lockTimeSize

	tx := &Transaction{
		Version:  version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}
	return tx, n, nil
}

// Unpack - convenience form of UnpackTransaction
func (record Packed) Unpack() (*Transaction, int, error) {
	return UnpackTransaction(record)
}

// read a compact size prefixed byte field, returning a copy
func unpackBytes(buffer []byte) ([]byte, int, error) {
	length, n, err := util.FromCompactSize(buffer)
	if nil != err {
		return nil, 0, err
	}
	if length > uint64(len(buffer)-n) {
		return nil, 0, fault.ErrTruncatedInput
	}
	end := n + int(length)
	data := make([]byte, length)
	copy(data, buffer[n:end])
	return data, end, nil
}

// read an item count where each item needs at least itemSize bytes
func unpackCount(buffer []byte, itemSize int) (int, int, error) {
	count, n, err := util.FromCompactSize(buffer)
	if nil != err {
		return 0, 0, err
	}
	if count > uint64((len(buffer)-n)/itemSize) {
		return 0, 0, fault.ErrTruncatedInput
	}
	return int(count), n, nil
}

func unpackUint32(buffer []byte) (uint32, error) {
	if len(buffer) < 4 {
		return 0, fault.ErrTruncatedInput
	}
	return binary.LittleEndian.Uint32(buffer[:4]), nil
}
