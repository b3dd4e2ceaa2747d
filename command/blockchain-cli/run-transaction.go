// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/transactionrecord"
)

// a whole transaction, nothing may follow it
func decodeTransaction(arg string) (*transactionrecord.Transaction, merkle.Digest, error) {
	packed, err := checkHex(arg)
	if nil != err {
		return nil, merkle.Digest{}, err
	}

	tx, n, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		return nil, merkle.Digest{}, err
	}
	if n != len(packed) {
		return nil, merkle.Digest{}, ErrTrailingData
	}
	return tx, transactionrecord.Packed(packed).TxId(), nil
}

func runDecodeTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, txId, err := decodeTransaction(c.Args().First())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inputs: %d  outputs: %d\n", len(tx.Inputs), len(tx.Outputs))
	}

	out := struct {
		TxId merkle.Digest                  `json:"txId"`
		Data *transactionrecord.Transaction `json:"data"`
	}{
		TxId: txId,
		Data: tx,
	}
	return printJson(m.w, out)
}

func runTxId(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	_, txId, err := decodeTransaction(c.Args().First())
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", txId)
	return nil
}
