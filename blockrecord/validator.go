// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
)

// ValidProofOfWork - the header digest must not exceed the target
// encoded in its bits
func ValidProofOfWork(header *Header) error {
	target, err := header.Bits.Target()
	if nil != err {
		return err
	}
	if header.Digest().Cmp(target) > 0 {
		return fault.ErrInsufficientWork
	}
	return nil
}

// ValidBlockLinkage - valid incoming block linkage
func ValidBlockLinkage(currentDigest merkle.Digest, incomingDigestOfPreviousBlock merkle.Digest) error {
	if currentDigest != incomingDigestOfPreviousBlock {
		return fault.ErrPreviousBlockMismatch
	}

	return nil
}
