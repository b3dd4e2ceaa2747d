// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/jacklund/blockchain/blockdump"
	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/storage"
)

type transactionLocation struct {
	TxId        merkle.Digest `json:"txId"`
	BlockDigest merkle.Digest `json:"blockDigest"`
	Index       uint32        `json:"index"`
}

// dump of a particular block
func dumpBlock(store *storage.Store, digest merkle.Digest, magic uint32, decodeTxs bool) (*blockdump.BlockResult, error) {
	return blockdump.BlockDump(store, digest, magic, decodeTxs)
}

// where a transaction was stored
func findTransaction(store *storage.Store, txId merkle.Digest) (*transactionLocation, error) {
	blockDigest, index, err := store.FindTransaction(txId)
	if nil != err {
		return nil, err
	}
	result := &transactionLocation{
		TxId:        txId,
		BlockDigest: blockDigest,
		Index:       index,
	}
	return result, nil
}
