// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/jacklund/blockchain/merkle"
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes for fixed width fields
const (
	txIdSize     = merkle.DigestLength
	indexSize    = 4
	sequenceSize = 4
	valueSize    = 8
	versionSize  = 4
	lockTimeSize = 4

	// OutpointSize - packed size of an outpoint
	OutpointSize = txIdSize + indexSize
)

// Script - opaque locking or unlocking script bytes
type Script []byte

// MarshalText - convert script to hex text for JSON
func (script Script) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(script)))
	hex.Encode(buffer, script)
	return buffer, nil
}

// UnmarshalText - convert hex text into a script
func (script *Script) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*script = buffer[:n]
	return nil
}

// Outpoint - reference to an output of a previous transaction
type Outpoint struct {
	TxId  merkle.Digest `json:"txId"`
	Index uint32        `json:"index"`
}

// Input - spend of a previous output
type Input struct {
	Previous Outpoint `json:"previous"`
	Script   Script   `json:"script"`
	Sequence uint32   `json:"sequence"`
}

// Output - value locked by a script
type Output struct {
	Value  uint64 `json:"value"`
	Script Script `json:"script"`
}

// Transaction - a list of inputs and outputs
type Transaction struct {
	Version  uint32   `json:"version"`
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	LockTime uint32   `json:"lockTime"`
}

// NewInput - create an input, the script is copied
func NewInput(previous Outpoint, script []byte, sequence uint32) Input {
	return Input{
		Previous: previous,
		Script:   append(Script{}, script...),
		Sequence: sequence,
	}
}

// NewOutput - create an output, the script is copied
func NewOutput(value uint64, script []byte) Output {
	return Output{
		Value:  value,
		Script: append(Script{}, script...),
	}
}

// NewTransaction - create a transaction that does not share the
// caller's input and output slices
func NewTransaction(version uint32, inputs []Input, outputs []Output, lockTime uint32) *Transaction {
	tx := &Transaction{
		Version:  version,
		Inputs:   make([]Input, len(inputs)),
		Outputs:  make([]Output, len(outputs)),
		LockTime: lockTime,
	}
	for i, in := range inputs {
		tx.Inputs[i] = NewInput(in.Previous, in.Script, in.Sequence)
	}
	for i, out := range outputs {
		tx.Outputs[i] = NewOutput(out.Value, out.Script)
	}
	return tx
}

// TxId - double hash of the packed transaction
func (tx *Transaction) TxId() (merkle.Digest, error) {
	packed, err := tx.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return packed.TxId(), nil
}

// TxId - double hash of an already packed transaction
func (record Packed) TxId() merkle.Digest {
	return merkle.NewDigest(record)
}
