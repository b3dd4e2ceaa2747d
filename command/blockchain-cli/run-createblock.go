// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/jacklund/blockchain/blockrecord"
	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/transactionrecord"
)

type createResult struct {
	Digest merkle.Digest       `json:"digest"`
	Header *blockrecord.Header `json:"header"`
	Packed string              `json:"packed"`
}

func runCreateBlock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	previous, err := checkOptionalDigest(c.String("previous"))
	if nil != err {
		return err
	}

	bits, err := checkBits(c.String("bits"))
	if nil != err {
		return err
	}

	if 0 == len(c.Args()) {
		return ErrRequiredTransactions
	}

	txs := make([]*transactionrecord.Transaction, 0, len(c.Args()))
	for i, arg := range c.Args() {
		tx, _, err := decodeTransaction(arg)
		if nil != err {
			return fmt.Errorf("transaction: %d  error: %s", i, err)
		}
		txs = append(txs, tx)
	}

	version := uint32(c.Uint("version"))
	timestamp := uint32(c.Uint("timestamp"))

	var block *blockrecord.Block[*transactionrecord.Transaction]
	if 0 == timestamp {
		block, err = blockrecord.NewBlock(version, previous, txs, bits)
	} else {
		block, err = blockrecord.NewBlockAt(version, previous, txs, bits, timestamp)
	}
	if nil != err {
		return err
	}
	block.SetNonce(uint32(c.Uint("nonce")))

	packed, err := block.PackWithMagic(m.magic)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transactions: %d  packed: %d bytes\n", len(txs), len(packed))
	}

	result := createResult{
		Digest: block.Digest(),
		Header: &block.Header,
		Packed: hex.EncodeToString(packed),
	}
	return printJson(m.w, result)
}
