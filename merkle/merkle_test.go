// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacklund/blockchain/merkle"
)

func concatDigest(a merkle.Digest, b merkle.Digest) merkle.Digest {
	return merkle.NewDigest(append(append([]byte{}, a[:]...), b[:]...))
}

func TestEmptyRoot(t *testing.T) {
	expected := merkle.NewDigest([]byte{})
	assert.Equal(t, expected, merkle.Root(nil), "nil leaves")
	assert.Equal(t, expected, merkle.Root([][]byte{}), "empty leaves")
	assert.Equal(t, expected, merkle.RootFromDigests(nil), "empty digests")

	// known value of the double SHA-256 of nothing
	assert.Equal(t, hexDigest(t, "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"), merkle.Root(nil))
}

func TestSingleLeaf(t *testing.T) {
	a := []byte("A")
	assert.Equal(t, merkle.NewDigest(a), merkle.Root([][]byte{a}), "single leaf root")
	assert.Equal(t, hexDigest(t, "1cd6ef71e6e0ff46ad2609d403dc3fee244417089aa4461245a4e4fe23a55e42"), merkle.Root([][]byte{a}))
}

func TestOddDuplication(t *testing.T) {
	a := []byte("A")
	b := []byte("B")
	c := []byte("C")

	ab := concatDigest(merkle.NewDigest(a), merkle.NewDigest(b))
	cc := concatDigest(merkle.NewDigest(c), merkle.NewDigest(c))
	expected := concatDigest(ab, cc)

	actual := merkle.Root([][]byte{a, b, c})
	assert.Equal(t, expected, actual, "three leaf root")
	assert.Equal(t, hexDigest(t, "d4866b4e596633ebfe026128a506dffdb268839731aa5a3ace7898ab39813884"), actual)
}

func TestOrderSensitivity(t *testing.T) {
	a := []byte("A")
	b := []byte("B")

	ab := merkle.Root([][]byte{a, b})
	ba := merkle.Root([][]byte{b, a})

	assert.NotEqual(t, ab, ba, "order must matter")
	assert.Equal(t, hexDigest(t, "4347036f8a3cbba13f41e94672cac98c781acc2f03ab8707c4463c19d3690a5f"), ab)
	assert.Equal(t, hexDigest(t, "dd6404f4ab8945b78f8c682cf89d370c9131be21ee46eae28a1a13c47a831aea"), ba)
}

func TestDeterminism(t *testing.T) {
	leaves := [][]byte{[]byte("one"), []byte("two"), []byte("three"), []byte("four"), []byte("five")}
	assert.Equal(t, merkle.Root(leaves), merkle.Root(leaves))
}

// the iterative reduction must agree with the recursive definition
func recursiveRoot(level []merkle.Digest) merkle.Digest {
	if 1 == len(level) {
		return level[0]
	}
	next := make([]merkle.Digest, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		j := i + 1
		if j == len(level) {
			j = i
		}
		next = append(next, concatDigest(level[i], level[j]))
	}
	return recursiveRoot(next)
}

func TestRootMatchesRecursion(t *testing.T) {
	for count := 1; count <= 17; count += 1 {
		leaves := make([][]byte, count)
		ids := make([]merkle.Digest, count)
		for i := range leaves {
			leaves[i] = []byte{byte(i), byte(count)}
			ids[i] = merkle.NewDigest(leaves[i])
		}
		expected := recursiveRoot(ids)
		assert.Equal(t, expected, merkle.Root(leaves), "root for %d leaves", count)
		assert.Equal(t, expected, merkle.RootFromDigests(ids), "root from digests for %d leaves", count)

		tree := merkle.FullMerkleTree(ids)
		assert.Equal(t, expected, tree[len(tree)-1], "full tree root for %d leaves", count)
		assert.Equal(t, ids, tree[:count], "full tree leaves for %d leaves", count)
	}
}

func TestRootFromDigestsDoesNotModifyInput(t *testing.T) {
	ids := []merkle.Digest{merkle.NewDigest([]byte("x")), merkle.NewDigest([]byte("y")), merkle.NewDigest([]byte("z"))}
	saved := append([]merkle.Digest{}, ids...)

	merkle.RootFromDigests(ids)
	assert.Equal(t, saved, ids, "input must be unchanged")
}

func TestFullMerkleTreeLayout(t *testing.T) {
	a := merkle.NewDigest([]byte("A"))
	b := merkle.NewDigest([]byte("B"))
	c := merkle.NewDigest([]byte("C"))

	ab := concatDigest(a, b)
	cc := concatDigest(c, c)
	expected := []merkle.Digest{a, b, c, ab, cc, concatDigest(ab, cc)}

	assert.Equal(t, expected, merkle.FullMerkleTree([]merkle.Digest{a, b, c}))
	assert.Equal(t, []merkle.Digest{merkle.Root(nil)}, merkle.FullMerkleTree(nil))
}
