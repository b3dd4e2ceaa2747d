// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2017 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/jacklund/blockchain/chain"
	"github.com/jacklund/blockchain/difficulty"
	"github.com/jacklund/blockchain/merkle"
)

// map the aliases onto a chain name and its envelope magic
func checkChain(name string) (string, uint32, error) {
	switch strings.ToLower(name) {
	case "", "bitcoin", "live", "main":
		name = chain.Bitcoin
	case "testing", "test":
		name = chain.Testing
	case "local", "regression":
		name = chain.Local
	}
	magic, err := chain.Magic(name)
	if nil != err {
		return "", 0, err
	}
	return name, magic, nil
}

// hex is required, an optional 0x prefix is ignored
func checkHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if "" == s {
		return nil, ErrRequiredHex
	}
	return hex.DecodeString(s)
}

// optional digest in display order, blank gives all zero
func checkOptionalDigest(s string) (merkle.Digest, error) {
	var digest merkle.Digest
	if "" == s {
		return digest, nil
	}
	err := digest.UnmarshalText([]byte(s))
	return digest, err
}

// compact difficulty as 8 hex characters
func checkBits(s string) (difficulty.Bits, error) {
	var bits difficulty.Bits
	err := bits.UnmarshalText([]byte(strings.TrimPrefix(s, "0x")))
	if nil != err {
		return 0, err
	}
	if _, err := bits.Target(); nil != err {
		return 0, err
	}
	return bits, nil
}
