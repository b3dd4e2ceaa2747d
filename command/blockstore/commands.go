// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/jacklund/blockchain/merkle"
	"github.com/jacklund/blockchain/storage"
)

const defaultListCount = 20

// setup command handler
//
// commands that need neither the configuration file nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "import", "i", "list", "l", "dump", "d", "find", "f", "count", "n":
		return false // defer processing until database is opened

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  import FILE...             (i)      - store every framed block read from the files\n")
		fmt.Printf("\n")

		fmt.Printf("  count                      (n)      - number of stored blocks\n")
		fmt.Printf("\n")

		fmt.Printf("  list [START [COUNT]]       (l)      - list block digests in arrival order\n")
		fmt.Printf("\n")

		fmt.Printf("  dump DIGEST [--header]     (d)      - dump a block as a JSON structure to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  find TXID                  (f)      - locate the block holding a transaction\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// commands that modify the database
func isWriteCommand(command string) bool {
	switch command {
	case "import", "i":
		return true
	default:
		return false
	}
}

// data command handler
// the database is open so these commands can access and/or change it
func processDataCommand(log *logger.L, store *storage.Store, arguments []string, options *Configuration) {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "import", "i":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}
		total := 0
		for _, filename := range arguments {
			if "" == filename {
				exitwithstatus.Message("missing file name")
			}
			n, err := importBlocks(log, store, filename, options.magic())
			if nil != err {
				exitwithstatus.Message("failed importing: %q  error: %s", filename, err)
			}
			total += n
		}
		fmt.Printf("imported: %d blocks  stored: %d\n", total, store.Count())

	case "count", "n":
		fmt.Printf("%d\n", store.Count())

	case "list", "l":
		start := uint64(0)
		count := defaultListCount
		var err error

		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start number: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}

		entries, err := store.List(start, count)
		if nil != err {
			exitwithstatus.Message("list error: %s", err)
		}
		printJson(entries)

	case "dump", "d":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing block digest argument")
		}
		var digest merkle.Digest
		if err := digest.UnmarshalText([]byte(arguments[0])); nil != err {
			exitwithstatus.Message("error in block digest: %s", err)
		}
		decodeTxs := !(len(arguments) > 1 && "--header" == arguments[1])

		block, err := dumpBlock(store, digest, options.magic(), decodeTxs)
		if nil != err {
			exitwithstatus.Message("dump block error: %s", err)
		}
		printJson(block)

	case "find", "f":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing transaction id argument")
		}
		var txId merkle.Digest
		if err := txId.UnmarshalText([]byte(arguments[0])); nil != err {
			exitwithstatus.Message("error in transaction id: %s", err)
		}
		location, err := findTransaction(store, txId)
		if nil != err {
			exitwithstatus.Message("find transaction error: %s", err)
		}
		printJson(location)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}
}

func printJson(message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
