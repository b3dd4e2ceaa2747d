// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"crypto/sha256"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/jacklund/blockchain/fault"
)

// Algorithm - the 256 bit digest primitive applied to records
type Algorithm int

// supported primitives, SHA256 is the one the wire format requires
const (
	SHA256 Algorithm = iota
	SHA3_256
	BLAKE2b_256
)

var algorithmNames = map[Algorithm]string{
	SHA256:      "sha256",
	SHA3_256:    "sha3-256",
	BLAKE2b_256: "blake2b-256",
}

// AlgorithmFromString - map a configuration name to an algorithm
func AlgorithmFromString(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if "" == name {
		return SHA256, nil
	}
	for a, s := range algorithmNames {
		if s == name {
			return a, nil
		}
	}
	return SHA256, fault.ErrInvalidAlgorithm
}

// String - configuration name of the algorithm
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// SingleHash - apply the digest primitive once
func (a Algorithm) SingleHash(record []byte) Digest {
	switch a {
	case SHA256:
		return sha256.Sum256(record)
	case SHA3_256:
		return sha3.Sum256(record)
	case BLAKE2b_256:
		h, err := blake2b.New256(nil)
		logger.PanicIfError("merkle.SingleHash: blake2b", err)
		h.Write(record)
		var d Digest
		copy(d[:], h.Sum(nil))
		return d
	default:
		logger.Panicf("merkle.SingleHash: unsupported algorithm: %d", a)
	}
	return Digest{}
}

// DoubleHash - apply the digest primitive twice
func (a Algorithm) DoubleHash(record []byte) Digest {
	d := a.SingleHash(record)
	return a.SingleHash(d[:])
}

// SingleHash - SHA-256 of a record
func SingleHash(record []byte) Digest {
	return SHA256.SingleHash(record)
}

// NewDigest - create a digest from a byte slice
//
// this is the double SHA-256 used for transaction ids, block
// header digests and merkle nodes
func NewDigest(record []byte) Digest {
	return SHA256.DoubleHash(record)
}
