// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/jacklund/blockchain/fault"
)

// names of all chains
const (
	Bitcoin = "bitcoin"
	Testing = "testing"
	Local   = "local"
)

// magic numbers that open every block envelope on each chain
var magicNumbers = map[string]uint32{
	Bitcoin: 0xd9b4bef9,
	Testing: 0x0709110b,
	Local:   0xdab5bffa,
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := magicNumbers[name]
	return ok
}

// Magic - envelope magic number for a chain
func Magic(name string) (uint32, error) {
	m, ok := magicNumbers[name]
	if !ok {
		return 0, fault.ErrInvalidChain
	}
	return m, nil
}
