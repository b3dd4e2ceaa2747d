// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"time"

	"github.com/jacklund/blockchain/difficulty"
	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/transactionrecord"
	"github.com/jacklund/blockchain/util"
)

// MagicNumber - network identifier at the start of every packed block
const MagicNumber uint32 = 0xD9B4BEF9

// envelope in front of the header
const (
	MagicSize  = 4
	LengthSize = 4

	magicOffset  = 0
	lengthOffset = magicOffset + MagicSize

	// EnvelopeSize - bytes before the header
	EnvelopeSize = lengthOffset + LengthSize
)

// PackedBlock - packed records are just a byte slice
type PackedBlock []byte

// Payload - anything that can produce its own exact byte form
type Payload interface {
	Pack() (transactionrecord.Packed, error)
}

// Unpacker - parse one payload from the front of a buffer
// returning the payload and the number of bytes consumed
type Unpacker[T Payload] func(buffer []byte) (T, int, error)

// Block - a header followed by its payloads
type Block[T Payload] struct {
	Header   Header `json:"header"`
	Payloads []T    `json:"payloads"`
}

// NewBlock - construct a block timestamped with the current time
func NewBlock[T Payload](version uint32, previous merkle.Digest, payloads []T, bits difficulty.Bits) (*Block[T], error) {
	return NewBlockAt(version, previous, payloads, bits, uint32(time.Now().Unix()))
}

// NewBlockAt - construct a block with a given timestamp
//
// every payload is packed to compute the merkle root and the nonce
// starts at zero
func NewBlockAt[T Payload](version uint32, previous merkle.Digest, payloads []T, bits difficulty.Bits, timestamp uint32) (*Block[T], error) {
	block := &Block[T]{
		Header: Header{
			Version:       version,
			PreviousBlock: previous,
			Timestamp:     timestamp,
			Bits:          bits,
			Nonce:         0,
		},
		Payloads: append(make([]T, 0, len(payloads)), payloads...),
	}

	leaves, err := block.PackedPayloads()
	if nil != err {
		return nil, err
	}
	block.Header.MerkleRoot = merkle.Root(leaves)

	return block, nil
}

// SetNonce - change only the nonce in the header
func (block *Block[T]) SetNonce(nonce uint32) {
	block.Header.Nonce = NonceType(nonce)
}

// Digest - block identifier
func (block *Block[T]) Digest() merkle.Digest {
	return block.Header.Digest()
}

// PackedPayloads - the byte form of each payload in order
func (block *Block[T]) PackedPayloads() ([][]byte, error) {
	leaves := make([][]byte, len(block.Payloads))
	for i, payload := range block.Payloads {
		packed, err := payload.Pack()
		if nil != err {
			return nil, err
		}
		leaves[i] = packed
	}
	return leaves, nil
}

// VerifyMerkleRoot - recompute the root over the payloads and compare
// with the header
func (block *Block[T]) VerifyMerkleRoot() error {
	leaves, err := block.PackedPayloads()
	if nil != err {
		return err
	}
	if merkle.Root(leaves) != block.Header.MerkleRoot {
		return fault.ErrMerkleRootMismatch
	}
	return nil
}

// Pack - pack with the default magic number
func (block *Block[T]) Pack() (PackedBlock, error) {
	return block.PackWithMagic(MagicNumber)
}

// PackWithMagic - turn a block into its wire form
//
// magic | length | header | count | payloads...
// where length covers everything after itself and is filled in last
func (block *Block[T]) PackWithMagic(magic uint32) (PackedBlock, error) {
	buffer := make(PackedBlock, EnvelopeSize, EnvelopeSize+totalHeaderSize+9)
	binary.LittleEndian.PutUint32(buffer[magicOffset:], magic)

	header := block.Header.Pack()
	buffer = append(buffer, header[:]...)
	buffer = append(buffer, util.ToCompactSize(uint64(len(block.Payloads)))...)

	for _, payload := range block.Payloads {
		packed, err := payload.Pack()
		if nil != err {
			return nil, err
		}
		buffer = append(buffer, packed...)
	}

	binary.LittleEndian.PutUint32(buffer[lengthOffset:], uint32(len(buffer)-EnvelopeSize))

	return buffer, nil
}

// FrameLength - check the envelope at the front of buffer and return
// the total bytes the block occupies, envelope included
func FrameLength(buffer []byte, magic uint32) (int, error) {
	if len(buffer) < EnvelopeSize {
		return 0, fault.ErrTruncatedInput
	}
	if magic != binary.LittleEndian.Uint32(buffer[magicOffset:]) {
		return 0, fault.ErrInvalidMagic
	}
	length := uint64(binary.LittleEndian.Uint32(buffer[lengthOffset:]))
	if length > uint64(len(buffer)-EnvelopeSize) {
		return 0, fault.ErrBlockLengthExceedsData
	}
	return EnvelopeSize + int(length), nil
}

// UnpackBlock - unpack a block carrying the default magic number
func UnpackBlock[T Payload](buffer []byte, unpacker Unpacker[T]) (*Block[T], int, error) {
	return UnpackBlockWithMagic(buffer, MagicNumber, unpacker)
}

// UnpackBlockWithMagic - read one block from the front of buffer
//
// only the framed bytes are parsed and all of them must be used by
// the header and payloads, returns the total bytes consumed
func UnpackBlockWithMagic[T Payload](buffer []byte, magic uint32, unpacker Unpacker[T]) (*Block[T], int, error) {
	total, err := FrameLength(buffer, magic)
	if nil != err {
		return nil, 0, err
	}
	framed := buffer[EnvelopeSize:total]

	header, n, err := UnpackHeader(framed)
	if nil != err {
		return nil, 0, err
	}

	count, countLength, err := util.FromCompactSize(framed[n:])
	if nil != err {
		return nil, 0, err
	}
	n += countLength

	// every payload occupies at least one byte
	if count > uint64(len(framed)-n) {
		return nil, 0, fault.ErrTruncatedInput
	}

	payloads := make([]T, 0, count)
	for i := uint64(0); i < count; i += 1 {
		payload, payloadLength, err := unpacker(framed[n:])
		if nil != err {
			return nil, 0, err
		}
		n += payloadLength
		payloads = append(payloads, payload)
	}

	if n != len(framed) {
		return nil, 0, fault.ErrBlockTrailingData
	}

	block := &Block[T]{
		Header:   *header,
		Payloads: payloads,
	}
	return block, total, nil
}
