// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
)

func hexDigest(t *testing.T, s string) merkle.Digest {
	b, err := hex.DecodeString(s)
	if nil != err {
		t.Fatalf("hex decode error: %s", err)
	}
	var d merkle.Digest
	if err := merkle.DigestFromBytes(&d, b); nil != err {
		t.Fatalf("digest from bytes error: %s", err)
	}
	return d
}

func TestSingleHash(t *testing.T) {
	s := []byte("hello world")

	// printf '%s' 'hello world' | sha256sum
	expected := hexDigest(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9")
	assert.Equal(t, expected, merkle.SingleHash(s), "single hash")
}

func TestDoubleHash(t *testing.T) {
	s := []byte("hello world")

	expected := hexDigest(t, "bc62d4b80d9e36da29c16c5d4d9f11731f36052c72401a76c23c0fb5a9b74423")
	assert.Equal(t, expected, merkle.NewDigest(s), "double hash")

	single := merkle.SingleHash(s)
	assert.Equal(t, merkle.SingleHash(single[:]), merkle.NewDigest(s), "double is single applied twice")
}

func TestAlternativeAlgorithms(t *testing.T) {
	s := []byte("hello world")

	sha3 := hexDigest(t, "644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938")
	assert.Equal(t, sha3, merkle.SHA3_256.SingleHash(s), "sha3-256")

	sha3d := hexDigest(t, "b1b103a0d3dada11eb8054c88e1ac6ccbe514b6f53f81b621033fda7de7eac4e")
	assert.Equal(t, sha3d, merkle.SHA3_256.DoubleHash(s), "double sha3-256")

	b2 := hexDigest(t, "256c83b297114d201b30179f3f0ef0cace9783622da5974326b436178aeef610")
	assert.Equal(t, b2, merkle.BLAKE2b_256.SingleHash(s), "blake2b-256")
}

func TestAlgorithmFromString(t *testing.T) {
	items := []struct {
		name      string
		algorithm merkle.Algorithm
		err       error
	}{
		{"", merkle.SHA256, nil},
		{"sha256", merkle.SHA256, nil},
		{"SHA3-256", merkle.SHA3_256, nil},
		{" blake2b-256 ", merkle.BLAKE2b_256, nil},
		{"md5", merkle.SHA256, fault.ErrInvalidAlgorithm},
	}

	for i, item := range items {
		a, err := merkle.AlgorithmFromString(item.name)
		assert.Equal(t, item.err, err, "%d: error for %q", i, item.name)
		assert.Equal(t, item.algorithm, a, "%d: algorithm for %q", i, item.name)
	}

	assert.Equal(t, "sha3-256", merkle.SHA3_256.String())
}
