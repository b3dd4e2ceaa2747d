// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/jacklund/blockchain/blockrecord"
	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/storage"
	"github.com/jacklund/blockchain/transactionrecord"
)

// store every block from a file
// record format:
//   magic               4 bytes
//   little endian n     4 bytes
//   block data          n bytes
//
// blocks already present are skipped, the count of newly stored
// blocks is returned
func importBlocks(log *logger.L, store *storage.Store, filename string, magic uint32) (int, error) {

	buffer, err := os.ReadFile(filename)
	if nil != err {
		return 0, err
	}

	stored := 0
	for offset := 0; offset < len(buffer); {
		n, err := blockrecord.FrameLength(buffer[offset:], magic)
		if nil != err {
			log.Errorf("file: %q  offset: %d  error: %s", filename, offset, err)
			return stored, err
		}
		framed := buffer[offset : offset+n]

		added, err := storeBlock(log, store, framed, magic)
		if nil != err {
			log.Errorf("file: %q  offset: %d  error: %s", filename, offset, err)
			return stored, err
		}
		if added {
			stored += 1
		}
		offset += n
	}

	log.Infof("file: %q  stored: %d blocks", filename, stored)
	return stored, nil
}

// decode a single framed block and save it with its transaction index
func storeBlock(log *logger.L, store *storage.Store, framed []byte, magic uint32) (bool, error) {

	block, _, err := blockrecord.UnpackBlockWithMagic(framed, magic, transactionrecord.UnpackTransaction)
	if nil != err {
		return false, err
	}

	err = block.VerifyMerkleRoot()
	if nil != err {
		return false, err
	}

	digest := block.Digest()
	if err := blockrecord.ValidProofOfWork(&block.Header); nil != err {
		log.Warnf("block: %s  proof of work: %s", digest, err)
	}

	leaves, err := block.PackedPayloads()
	if nil != err {
		return false, err
	}
	txIds := make([]merkle.Digest, len(leaves))
	for i, leaf := range leaves {
		txIds[i] = transactionrecord.Packed(leaf).TxId()
	}

	err = store.PutBlock(digest, framed, block.Header.Pack(), txIds)
	if fault.ErrBlockExists == err {
		log.Debugf("block: %s  already stored", digest)
		return false, nil
	} else if nil != err {
		return false, err
	}

	log.Debugf("block: %s  transactions: %d", digest, len(txIds))
	return true, nil
}
