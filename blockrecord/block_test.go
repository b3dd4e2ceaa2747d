// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/hex"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacklund/blockchain/blockrecord"
	"github.com/jacklund/blockchain/blockrecord/mocks"
	"github.com/jacklund/blockchain/chain"
	"github.com/jacklund/blockchain/difficulty"
	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/transactionrecord"
)

// the bitcoin genesis block exactly as stored on disk
const (
	genesisCoinbaseHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff" +
		"4d04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e" +
		"206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73ffffffff0100f2052a01" +
		"000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef" +
		"38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

	genesisHeaderHex = "01000000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"3ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a" +
		"29ab5f49" + "ffff001d" + "1dac2b7c"

	genesisBlockHex = "f9beb4d9" + "1d010000" + genesisHeaderHex + "01" + genesisCoinbaseHex

	genesisDigest    = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	genesisMerkle    = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	genesisTimestamp = 1231006505
	genesisNonce     = 2083236893
)

type transactionBlock = blockrecord.Block[*transactionrecord.Transaction]

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.Nil(t, err, "hex decode")
	return b
}

func unpackGenesis(t *testing.T) (*transactionBlock, []byte) {
	packed := decodeHex(t, genesisBlockHex)
	block, n, err := blockrecord.UnpackBlock(packed, transactionrecord.UnpackTransaction)
	require.Nil(t, err, "unpack genesis")
	require.Equal(t, len(packed), n, "bytes consumed")
	return block, packed
}

func TestGenesisBlock(t *testing.T) {
	block, packed := unpackGenesis(t)

	assert.Equal(t, 293, len(packed), "genesis length")
	assert.Equal(t, genesisDigest, block.Digest().String(), "block digest")
	assert.Equal(t, genesisMerkle, block.Header.MerkleRoot.String(), "merkle root")
	assert.Equal(t, uint32(genesisTimestamp), block.Header.Timestamp, "timestamp")
	assert.Equal(t, difficulty.DefaultBits, block.Header.Bits, "bits")
	assert.Equal(t, blockrecord.NonceType(genesisNonce), block.Header.Nonce, "nonce")
	assert.Equal(t, merkle.Digest{}, block.Header.PreviousBlock, "previous")

	require.Equal(t, 1, len(block.Payloads), "payload count")
	assert.Equal(t, uint64(5000000000), block.Payloads[0].Outputs[0].Value, "coinbase value")

	assert.Nil(t, block.VerifyMerkleRoot(), "merkle root must verify")
	assert.Nil(t, blockrecord.ValidProofOfWork(&block.Header), "proof of work")

	repacked, err := block.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, blockrecord.PackedBlock(packed), repacked, "byte exact repack")
}

func TestNewBlockMatchesGenesis(t *testing.T) {
	coinbase, _, err := transactionrecord.UnpackTransaction(decodeHex(t, genesisCoinbaseHex))
	require.Nil(t, err, "unpack coinbase")

	block, err := blockrecord.NewBlockAt(1, merkle.Digest{}, []*transactionrecord.Transaction{coinbase}, difficulty.DefaultBits, genesisTimestamp)
	require.Nil(t, err, "new block")

	assert.Equal(t, blockrecord.NonceType(0), block.Header.Nonce, "initial nonce")
	assert.Equal(t, genesisMerkle, block.Header.MerkleRoot.String(), "merkle root")

	block.SetNonce(genesisNonce)
	assert.Equal(t, genesisDigest, block.Digest().String(), "digest after nonce")

	packed, err := block.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, genesisBlockHex, hex.EncodeToString(packed), "packed block")
}

func TestNewBlockUsesClock(t *testing.T) {
	block, err := blockrecord.NewBlock(2, merkle.Digest{}, []*transactionrecord.Transaction{}, difficulty.DefaultBits)
	require.Nil(t, err, "new block")
	assert.NotEqual(t, uint32(0), block.Header.Timestamp, "timestamp")
	assert.Equal(t, merkle.Root(nil), block.Header.MerkleRoot, "empty root")
}

func TestRoundTripWithMagic(t *testing.T) {
	block, _ := unpackGenesis(t)

	magic, err := chain.Magic(chain.Testing)
	require.Nil(t, err, "magic")

	packed, err := block.PackWithMagic(magic)
	require.Nil(t, err, "pack")

	_, _, err = blockrecord.UnpackBlock(packed, transactionrecord.UnpackTransaction)
	assert.Equal(t, fault.ErrInvalidMagic, err, "default magic must reject")

	unpacked, n, err := blockrecord.UnpackBlockWithMagic(packed, magic, transactionrecord.UnpackTransaction)
	require.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "consumed")
	assert.Equal(t, block, unpacked, "round trip")
}

func TestEmptyBlockRoundTrip(t *testing.T) {
	previous := merkle.NewDigest([]byte("previous"))
	block, err := blockrecord.NewBlockAt(4, previous, []*transactionrecord.Transaction{}, 0x1b0404cb, 1600000000)
	require.Nil(t, err, "new block")

	packed, err := block.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, blockrecord.EnvelopeSize+blockrecord.HeaderSize+1, len(packed), "length")

	unpacked, _, err := blockrecord.UnpackBlock(packed, transactionrecord.UnpackTransaction)
	require.Nil(t, err, "unpack")
	assert.Equal(t, block, unpacked, "round trip")
}

func TestCorruptedMagic(t *testing.T) {
	_, packed := unpackGenesis(t)

	for i := 0; i < blockrecord.MagicSize; i += 1 {
		corrupt := append([]byte{}, packed...)
		corrupt[i] ^= 0x01

		_, _, err := blockrecord.UnpackBlock(corrupt, transactionrecord.UnpackTransaction)
		assert.Equal(t, fault.ErrInvalidMagic, err, "byte: %d", i)
		assert.True(t, fault.IsErrMalformedEnvelope(err), "byte: %d", i)
	}
}

func TestLengthExceedsData(t *testing.T) {
	_, packed := unpackGenesis(t)

	_, _, err := blockrecord.UnpackBlock(packed[:len(packed)-1], transactionrecord.UnpackTransaction)
	assert.Equal(t, fault.ErrBlockLengthExceedsData, err, "short by one")
	assert.True(t, fault.IsErrMalformedEnvelope(err), "category")

	for l := 0; l < blockrecord.EnvelopeSize; l += 1 {
		_, _, err := blockrecord.UnpackBlock(packed[:l], transactionrecord.UnpackTransaction)
		assert.Equal(t, fault.ErrTruncatedInput, err, "envelope length: %d", l)
	}
}

func TestShortDeclaredLength(t *testing.T) {
	_, packed := unpackGenesis(t)

	// declared length one less: the framed bytes end inside the transaction
	corrupt := append([]byte{}, packed...)
	corrupt[4] -= 1
	_, _, err := blockrecord.UnpackBlock(corrupt, transactionrecord.UnpackTransaction)
	assert.Equal(t, fault.ErrTruncatedInput, err, "short frame")

	// declared length shorter than a header
	corrupt[4] = 0x10
	corrupt[5] = 0x00
	_, _, err = blockrecord.UnpackBlock(corrupt, transactionrecord.UnpackTransaction)
	assert.Equal(t, fault.ErrTruncatedInput, err, "frame shorter than header")
}

func TestTrailingData(t *testing.T) {
	_, packed := unpackGenesis(t)

	// extend the framed section by one byte
	corrupt := append(append([]byte{}, packed...), 0x00)
	corrupt[4] += 1

	_, _, err := blockrecord.UnpackBlock(corrupt, transactionrecord.UnpackTransaction)
	assert.Equal(t, fault.ErrBlockTrailingData, err, "trailing byte")
	assert.True(t, fault.IsErrMalformedEnvelope(err), "category")
}

func TestHugePayloadCount(t *testing.T) {
	header := decodeHex(t, genesisHeaderHex)

	packed := decodeHex(t, "f9beb4d9"+"5a000000")
	packed = append(packed, header...)
	packed = append(packed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00)

	_, _, err := blockrecord.UnpackBlock(packed, transactionrecord.UnpackTransaction)
	assert.Equal(t, fault.ErrTruncatedInput, err, "huge count")
}

func TestFrameLength(t *testing.T) {
	_, packed := unpackGenesis(t)

	file := append(append([]byte{}, packed...), packed...)

	n, err := blockrecord.FrameLength(file, blockrecord.MagicNumber)
	require.Nil(t, err, "first frame")
	assert.Equal(t, len(packed), n, "first frame length")

	n2, err := blockrecord.FrameLength(file[n:], blockrecord.MagicNumber)
	require.Nil(t, err, "second frame")
	assert.Equal(t, len(packed), n2, "second frame length")

	_, err = blockrecord.FrameLength(file[n+n2:], blockrecord.MagicNumber)
	assert.Equal(t, fault.ErrTruncatedInput, err, "end of file")
}

func TestVerifyMerkleRootMismatch(t *testing.T) {
	block, _ := unpackGenesis(t)

	block.Payloads[0].LockTime = 1
	assert.Equal(t, fault.ErrMerkleRootMismatch, block.VerifyMerkleRoot(), "modified payload")
}

func TestNewBlockPackFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	good := mocks.NewMockPayload(ctl)
	bad := mocks.NewMockPayload(ctl)

	good.EXPECT().Pack().Return(transactionrecord.Packed{0x01}, nil).Times(1)
	bad.EXPECT().Pack().Return(nil, fault.ErrPayloadPackFailed).Times(1)

	block, err := blockrecord.NewBlockAt(1, merkle.Digest{}, []blockrecord.Payload{good, bad}, difficulty.DefaultBits, 1)
	assert.Nil(t, block, "no partial block")
	assert.Equal(t, fault.ErrPayloadPackFailed, err, "error must propagate")
}

func TestPackFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payload := mocks.NewMockPayload(ctl)
	gomock.InOrder(
		payload.EXPECT().Pack().Return(transactionrecord.Packed{0x01, 0x02}, nil),
		payload.EXPECT().Pack().Return(nil, fault.ErrPayloadPackFailed),
	)

	block, err := blockrecord.NewBlockAt(1, merkle.Digest{}, []blockrecord.Payload{payload}, difficulty.DefaultBits, 1)
	require.Nil(t, err, "new block")
	assert.Equal(t, merkle.Root([][]byte{{0x01, 0x02}}), block.Header.MerkleRoot, "root over packed payload")

	packed, err := block.Pack()
	assert.Nil(t, packed, "no partial output")
	assert.Equal(t, fault.ErrPayloadPackFailed, err, "error must propagate")
}
