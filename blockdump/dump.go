// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdump

import (
	"fmt"

	"github.com/jacklund/blockchain/blockrecord"
	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/storage"
	"github.com/jacklund/blockchain/transactionrecord"
)

// TransactionItem - one decoded payload
type TransactionItem struct {
	Index int                            `json:"index"`
	TxId  merkle.Digest                  `json:"txId"`
	Data  *transactionrecord.Transaction `json:"data"`
}

// BlockResult - decoded block
type BlockResult struct {
	Digest         merkle.Digest       `json:"digest"`
	Header         *blockrecord.Header `json:"header"`
	Target         string              `json:"target,omitempty"`
	Difficulty     float64             `json:"difficulty"`
	ProofOfWork    bool                `json:"proofOfWork"`
	MerkleVerified bool                `json:"merkleVerified"`
	MerkleTree     []merkle.Digest     `json:"merkleTree,omitempty"`
	Transactions   []TransactionItem   `json:"transactions,omitempty"`
	Packed         []byte              `json:"binary,omitempty"`
}

// BlockDump - dump of a stored block
func BlockDump(store *storage.Store, digest merkle.Digest, magic uint32, decodeTxs bool) (*BlockResult, error) {
	packed, err := store.GetBlock(digest)
	if nil != err {
		return nil, err
	}
	return BlockDecode(packed, magic, decodeTxs)
}

// BlockDecode - decode a packed block including its envelope
//
// without decodeTxs only the header and the raw bytes are returned
func BlockDecode(packed []byte, magic uint32, decodeTxs bool) (*BlockResult, error) {

	block, _, err := blockrecord.UnpackBlockWithMagic(packed, magic, transactionrecord.UnpackTransaction)
	if nil != err {
		return nil, err
	}
	header := &block.Header

	result := &BlockResult{
		Digest:      block.Digest(),
		Header:      header,
		ProofOfWork: nil == blockrecord.ValidProofOfWork(header),
	}

	// a header with bad bits is still shown
	if target, err := header.Bits.Target(); nil == err {
		result.Target = fmt.Sprintf("%064x", target)
	}
	if d, err := header.Bits.Difficulty(); nil == err {
		result.Difficulty = d
	}

	if !decodeTxs {
		result.Packed = packed
		return result, nil
	}

	leaves, err := block.PackedPayloads()
	if nil != err {
		return nil, err
	}

	txIds := make([]merkle.Digest, len(leaves))
	result.Transactions = make([]TransactionItem, len(leaves))
	for i, leaf := range leaves {
		txIds[i] = merkle.NewDigest(leaf)
		result.Transactions[i] = TransactionItem{
			Index: i,
			TxId:  txIds[i],
			Data:  block.Payloads[i],
		}
	}

	result.MerkleTree = merkle.FullMerkleTree(txIds)
	result.MerkleVerified = result.MerkleTree[len(result.MerkleTree)-1] == header.MerkleRoot

	return result, nil
}
