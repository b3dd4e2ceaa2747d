// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jacklund/blockchain/merkle"
)

type merkleResult struct {
	Algorithm string          `json:"algorithm"`
	Leaves    []merkle.Digest `json:"leaves"`
	Root      merkle.Digest   `json:"root"`
	Tree      []merkle.Digest `json:"tree,omitempty"`
}

func runMerkle(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ids := make([]merkle.Digest, 0, len(c.Args()))
	for i, arg := range c.Args() {
		if c.Bool("txids") {
			var id merkle.Digest
			if err := id.UnmarshalText([]byte(arg)); nil != err {
				return fmt.Errorf("leaf: %d  error: %s", i, err)
			}
			ids = append(ids, id)
			continue
		}

		record, err := checkHex(arg)
		if nil != err {
			return fmt.Errorf("leaf: %d  error: %s", i, err)
		}
		ids = append(ids, m.algorithm.DoubleHash(record))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "leaves: %d\n", len(ids))
	}

	result := merkleResult{
		Algorithm: m.algorithm.String(),
		Leaves:    ids,
		Root:      m.algorithm.RootFromDigests(ids),
	}
	if c.Bool("tree") {
		result.Tree = m.algorithm.FullMerkleTree(ids)
	}
	return printJson(m.w, result)
}
