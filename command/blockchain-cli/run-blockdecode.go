// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/jacklund/blockchain/blockdump"
)

func runDecodeBlock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	arg := c.Args().First()

	var packed []byte
	var err error

	switch {
	case "" != fileName && "" != arg:
		return ErrBothHexAndFile
	case "" != fileName:
		if m.verbose {
			fmt.Fprintf(m.e, "reading file: %s\n", fileName)
		}
		packed, err = os.ReadFile(fileName)
	case "" != arg:
		packed, err = checkHex(arg)
	default:
		return ErrRequiredBlock
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %d bytes\n", len(packed))
	}

	result, err := blockdump.BlockDecode(packed, m.magic, !c.Bool("header"))
	if nil != err {
		return err
	}

	return printJson(m.w, result)
}
