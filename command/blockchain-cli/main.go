// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/jacklund/blockchain/merkle"
)

type metadata struct {
	chain     string
	magic     uint32
	algorithm merkle.Algorithm
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "blockchain-cli"
	app.Usage = "encode and decode blocks, transactions and merkle trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "chain, c",
			Value: "bitcoin",
			Usage: " envelope magic of `CHAIN` [bitcoin|testing|local]",
		},
		cli.StringFlag{
			Name:  "algorithm, a",
			Value: "sha256",
			Usage: " merkle and hash digest `ALGORITHM` [sha256|sha3-256|blake2b-256]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "varint",
			Usage:     "encode a number as a compact size",
			ArgsUsage: "VALUE\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "decode, d",
					Usage: " decode a compact size given as `HEX`",
				},
			},
			Action: runVarint,
		},
		{
			Name:      "hash",
			Usage:     "single and double digest of a hex record",
			ArgsUsage: "HEX\n   (* = required)",
			Action:    runHash,
		},
		{
			Name:      "merkle",
			Usage:     "merkle root of hex leaves",
			ArgsUsage: "HEX...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "txids, t",
					Usage: " leaves are transaction ids instead of records",
				},
				cli.BoolFlag{
					Name:  "tree",
					Usage: " output every level of the tree",
				},
			},
			Action: runMerkle,
		},
		{
			Name:      "decode-transaction",
			Usage:     "decode a hex transaction to JSON",
			ArgsUsage: "HEX\n   (* = required)",
			Action:    runDecodeTransaction,
		},
		{
			Name:      "txid",
			Usage:     "transaction id of a hex transaction",
			ArgsUsage: "HEX\n   (* = required)",
			Action:    runTxId,
		},
		{
			Name:      "decode-block",
			Usage:     "decode a framed hex block to JSON",
			ArgsUsage: "[HEX]\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+binary `FILE` holding a framed block",
				},
				cli.BoolFlag{
					Name:  "header",
					Usage: " only decode the header",
				},
			},
			Action: runDecodeBlock,
		},
		{
			Name:      "create-block",
			Usage:     "assemble a framed block from hex transactions",
			ArgsUsage: "HEX-TX...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "previous, p",
					Value: "",
					Usage: " previous block `DIGEST` [default all zero]",
				},
				cli.StringFlag{
					Name:  "bits, b",
					Value: "1d00ffff",
					Usage: " compact difficulty `BITS` as hex",
				},
				cli.UintFlag{
					Name:  "version, n",
					Value: 1,
					Usage: " block `VERSION`",
				},
				cli.UintFlag{
					Name:  "timestamp, s",
					Value: 0,
					Usage: " unix `SECONDS` [default now]",
				},
				cli.UintFlag{
					Name:  "nonce",
					Value: 0,
					Usage: " header `NONCE`",
				},
			},
			Action: runCreateBlock,
		},
		{
			Name:  "version",
			Usage: "display blockchain-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// decode the global options
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		chainName, magic, err := checkChain(c.GlobalString("chain"))
		if nil != err {
			return err
		}

		algorithm, err := merkle.AlgorithmFromString(c.GlobalString("algorithm"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "chain: %s  magic: %08x\n", chainName, magic)
			fmt.Fprintf(e, "algorithm: %s\n", algorithm)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				chain:     chainName,
				magic:     magic,
				algorithm: algorithm,
				verbose:   verbose,
				e:         e,
				w:         w,
			},
		}
		return nil
	}

	return app
}
