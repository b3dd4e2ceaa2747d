// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/jacklund/blockchain/blockrecord"
	"github.com/jacklund/blockchain/fault"
	"github.com/jacklund/blockchain/merkle"
)

// size of the value stored for each transaction
const transactionLocationSize = merkle.DigestLength + 4

// Entry - a block's position in arrival order
type Entry struct {
	N      uint64        `json:"n"`
	Digest merkle.Digest `json:"digest"`
}

// PutBlock - store a packed block with its header and transaction
// index in a single batch
func (s *Store) PutBlock(digest merkle.Digest, packed []byte, header blockrecord.PackedHeader, txIds []merkle.Digest) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}

	err := s.access.Begin()
	if nil != err {
		return err
	}

	if s.Pool.Blocks.Has(digest[:]) {
		s.access.Abort()
		return fault.ErrBlockExists
	}

	n := s.count()

	s.Pool.Blocks.put(digest[:], packed)
	s.Pool.Headers.put(digest[:], header[:])
	s.Pool.Sequence.put(sequenceKey(n), digest[:])

	for i, txId := range txIds {
		location := make([]byte, transactionLocationSize)
		copy(location, digest[:])
		binary.LittleEndian.PutUint32(location[merkle.DigestLength:], uint32(i))
		s.Pool.Transactions.put(txId[:], location)
	}

	err = s.access.Commit()
	if nil != err {
		s.log.Errorf("store block: %s  error: %s", digest, err)
		return err
	}

	s.log.Debugf("stored block: %s  sequence: %d  transactions: %d", digest, n, len(txIds))
	return nil
}

// GetBlock - fetch the packed block for a digest
func (s *Store) GetBlock(digest merkle.Digest) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	packed := s.Pool.Blocks.Get(digest[:])
	if nil == packed {
		return nil, fault.ErrBlockNotFound
	}
	return packed, nil
}

// GetHeader - fetch and unpack a block header
func (s *Store) GetHeader(digest merkle.Digest) (*blockrecord.Header, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	packed := s.Pool.Headers.Get(digest[:])
	if nil == packed {
		return nil, fault.ErrBlockNotFound
	}
	header, _, err := blockrecord.UnpackHeader(packed)
	return header, err
}

// HasBlock - check if a block is stored
func (s *Store) HasBlock(digest merkle.Digest) bool {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return false
	}
	return s.Pool.Blocks.Has(digest[:])
}

// FindTransaction - the block digest and payload index holding a transaction
func (s *Store) FindTransaction(txId merkle.Digest) (merkle.Digest, uint32, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return merkle.Digest{}, 0, fault.ErrNotInitialised
	}

	location := s.Pool.Transactions.Get(txId[:])
	if transactionLocationSize != len(location) {
		return merkle.Digest{}, 0, fault.ErrTransactionNotFound
	}

	var digest merkle.Digest
	err := merkle.DigestFromBytes(&digest, location[:merkle.DigestLength])
	if nil != err {
		return merkle.Digest{}, 0, err
	}
	index := binary.LittleEndian.Uint32(location[merkle.DigestLength:])
	return digest, index, nil
}

// Count - number of stored blocks
func (s *Store) Count() uint64 {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return 0
	}
	return s.count()
}

// must hold the lock
func (s *Store) count() uint64 {
	last, found := s.Pool.Sequence.LastElement()
	if !found {
		return 0
	}
	return binary.BigEndian.Uint64(last.Key) + 1
}

// List - up to count entries in arrival order starting at start
func (s *Store) List(start uint64, count int) ([]Entry, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	elements, err := s.Pool.Sequence.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		entry, err := toEntry(e.Key, e.Value)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// sentinel to end a walk early
type stopWalk struct{}

func (stopWalk) Error() string { return "stop" }

// Walk - call f for every block in arrival order until it returns false
func (s *Store) Walk(f func(n uint64, digest merkle.Digest) bool) error {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}

	err := s.Pool.Sequence.NewFetchCursor().Map(func(key []byte, value []byte) error {
		entry, err := toEntry(key, value)
		if nil != err {
			return err
		}
		if !f(entry.N, entry.Digest) {
			return stopWalk{}
		}
		return nil
	})
	if _, ok := err.(stopWalk); ok {
		return nil
	}
	return err
}

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

func toEntry(key []byte, value []byte) (Entry, error) {
	if 8 != len(key) {
		return Entry{}, fault.ErrInvalidCount
	}
	entry := Entry{
		N: binary.BigEndian.Uint64(key),
	}
	err := merkle.DigestFromBytes(&entry.Digest, value)
	return entry, err
}
