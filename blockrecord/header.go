// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/jacklund/blockchain/difficulty"
	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
)

// PackedHeader - use fix size array to simplify validation
type PackedHeader [totalHeaderSize]byte

// byte sizes for various fields
const (
	VersionSize       = 4                   // Block version number
	PreviousBlockSize = merkle.DigestLength // double SHA-256 of the previous block header
	MerkleRootSize    = merkle.DigestLength // root over all of the payloads in the block
	TimestampSize     = 4                   // seconds since 1970-01-01T00:00 UTC
	BitsSize          = 4                   // target in compact format
	NonceSize         = 4                   // proof of work counter (starts at 0)
)

// offsets of the fields
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + VersionSize
	merkleRootOffset    = previousBlockOffset + PreviousBlockSize
	timestampOffset     = merkleRootOffset + MerkleRootSize
	bitsOffset          = timestampOffset + TimestampSize
	nonceOffset         = bitsOffset + BitsSize

	// to set size of header array
	totalHeaderSize = nonceOffset + NonceSize // total bytes in the header
)

// HeaderSize - bytes in a packed header
const HeaderSize = totalHeaderSize

// Header - the unpacked header structure
type Header struct {
	Version       uint32          `json:"version"`
	PreviousBlock merkle.Digest   `json:"previousBlock"`
	MerkleRoot    merkle.Digest   `json:"merkleRoot"`
	Timestamp     uint32          `json:"timestamp"`
	Bits          difficulty.Bits `json:"bits"`
	Nonce         NonceType       `json:"nonce"`
}

// UnpackHeader - read an 80 byte header from the front of buffer
func UnpackHeader(buffer []byte) (*Header, int, error) {
	if len(buffer) < totalHeaderSize {
		return nil, 0, fault.ErrTruncatedInput
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], buffer[:totalHeaderSize])

	return packedHeader.Unpack(), totalHeaderSize, nil
}

// ExtractHeader - extract a header from the front of a []byte
// also return its digest and the bytes that follow it
func ExtractHeader(block []byte) (*Header, merkle.Digest, []byte, error) {
	header, n, err := UnpackHeader(block)
	if nil != err {
		return nil, merkle.Digest{}, nil, err
	}
	digest := merkle.NewDigest(block[:n])

	return header, digest, block[n:], nil
}

// Unpack - turn a byte array into a record
func (record PackedHeader) Unpack() *Header {
	header := &Header{
		Version:   binary.LittleEndian.Uint32(record[versionOffset:]),
		Timestamp: binary.LittleEndian.Uint32(record[timestampOffset:]),
		Bits:      difficulty.Bits(binary.LittleEndian.Uint32(record[bitsOffset:])),
		Nonce:     NonceType(binary.LittleEndian.Uint32(record[nonceOffset:])),
	}

	// these are in little endian order so can just copy them
	copy(header.PreviousBlock[:], record[previousBlockOffset:merkleRootOffset])
	copy(header.MerkleRoot[:], record[merkleRootOffset:timestampOffset])

	return header
}

// Digest - digest for a packed header
func (record PackedHeader) Digest() merkle.Digest {
	return merkle.NewDigest(record[:])
}

// Pack - turn a record into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint32(buffer[versionOffset:], header.Version)

	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint32(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[bitsOffset:], uint32(header.Bits))
	binary.LittleEndian.PutUint32(buffer[nonceOffset:], uint32(header.Nonce))

	return buffer
}

// Digest - block identifier, the double hash of the packed header
func (header *Header) Digest() merkle.Digest {
	return header.Pack().Digest()
}
