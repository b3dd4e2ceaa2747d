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

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	record, err := checkHex(c.Args().First())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "hashing: %d bytes\n", len(record))
	}

	out := struct {
		Algorithm string        `json:"algorithm"`
		Single    merkle.Digest `json:"single"`
		Double    merkle.Digest `json:"double"`
	}{
		Algorithm: m.algorithm.String(),
		Single:    m.algorithm.SingleHash(record),
		Double:    m.algorithm.DoubleHash(record),
	}
	return printJson(m.w, out)
}
