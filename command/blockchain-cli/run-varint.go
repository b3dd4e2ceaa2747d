// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/jacklund/blockchain/util"
)

type varintResult struct {
	Value     uint64 `json:"value"`
	Hex       string `json:"hex"`
	Length    int    `json:"length"`
	Canonical bool   `json:"canonical"`
}

func runVarint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	arg := c.Args().First()
	if "" == arg {
		return ErrRequiredValue
	}

	if c.Bool("decode") {
		buffer, err := checkHex(arg)
		if nil != err {
			return err
		}
		value, n, err := util.FromCompactSize(buffer)
		if nil != err {
			return err
		}
		if n != len(buffer) {
			return ErrTrailingData
		}
		if m.verbose {
			fmt.Fprintf(m.e, "decoded: %d bytes\n", n)
		}
		return printJson(m.w, varintResult{
			Value:     value,
			Hex:       hex.EncodeToString(buffer),
			Length:    n,
			Canonical: util.IsCanonicalCompactSize(buffer),
		})
	}

	value, err := strconv.ParseUint(arg, 0, 64)
	if nil != err {
		return err
	}
	buffer := util.ToCompactSize(value)

	return printJson(m.w, varintResult{
		Value:     value,
		Hex:       hex.EncodeToString(buffer),
		Length:    len(buffer),
		Canonical: true,
	})
}
