// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// Root - compute the merkle root of a list of serialised leaves
//
// each leaf is double hashed, then each level is reduced by hashing
// consecutive pairs; an odd final element is paired with itself.
// an empty list gives the digest of the empty byte sequence
func Root(leaves [][]byte) Digest {
	return SHA256.Root(leaves)
}

// RootFromDigests - merkle root when the leaf digests (e.g. transaction ids) are known
func RootFromDigests(ids []Digest) Digest {
	return SHA256.RootFromDigests(ids)
}

// FullMerkleTree - every level of the tree, leaf digests first and root last
func FullMerkleTree(ids []Digest) []Digest {
	return SHA256.FullMerkleTree(ids)
}

// Root - merkle root using this algorithm
func (a Algorithm) Root(leaves [][]byte) Digest {
	if 0 == len(leaves) {
		return a.DoubleHash(nil)
	}
	ids := make([]Digest, len(leaves))
	for i, leaf := range leaves {
		ids[i] = a.DoubleHash(leaf)
	}
	return a.reduce(ids)
}

// RootFromDigests - merkle root from leaf digests using this algorithm
func (a Algorithm) RootFromDigests(ids []Digest) Digest {
	if 0 == len(ids) {
		return a.DoubleHash(nil)
	}
	level := make([]Digest, len(ids))
	copy(level, ids)
	return a.reduce(level)
}

// reduce level by level in place until a single digest remains
func (a Algorithm) reduce(level []Digest) Digest {
	buffer := make([]byte, 2*DigestLength)
	for n := len(level); n > 1; n = (n + 1) / 2 {
		for i := 0; i < n; i += 2 {
			j := i + 1
			if j == n {
				j = i // compensate for odd number
			}
			copy(buffer, level[i][:])
			copy(buffer[DigestLength:], level[j][:])
			level[i/2] = a.DoubleHash(buffer)
		}
	}
	return level[0]
}

// FullMerkleTree - compute the complete tree from a set of leaf digests
//
// structure is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. merkle root digest
//
// a single leaf is its own root, no leaves gives just the empty root
func (a Algorithm) FullMerkleTree(ids []Digest) []Digest {

	idCount := len(ids)
	if 0 == idCount {
		return []Digest{a.DoubleHash(nil)}
	}

	// compute length of ids + all tree levels including root
	totalLength := 1 // space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	// add initial ids
	tree := make([]Digest, totalLength)
	copy(tree, ids)

	buffer := make([]byte, 2*DigestLength)
	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			copy(buffer, tree[j][:])
			copy(buffer[DigestLength:], tree[k][:])
			tree[n] = a.DoubleHash(buffer)
			n += 1
			j = k + 1
		}
	}
	return tree
}
