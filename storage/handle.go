// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the keys of the database sharing one prefix byte
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a key (prefix removed) and its value
type Element struct {
	Key   []byte
	Value []byte
}

// the whole key range of the pool
func (p *PoolHandle) span() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// queue a write in the open batch
func (p *PoolHandle) put(key []byte, value []byte) {
	p.dataAccess.Put(p.prefixKey(key), value)
}

// Get - value for a key or nil if absent
//
// the result may be shared with the cache so must not be modified
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	found, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return found
}

// LastElement - the element with the highest key
func (p *PoolHandle) LastElement() (Element, bool) {
	span := p.span()
	iter := p.dataAccess.Iterator(&span)
	defer iter.Release()

	if !iter.Last() {
		logger.PanicIfError("pool.LastElement", iter.Error())
		return Element{}, false
	}
	return currentElement(iter), true
}

// copy out the iterator's current item since its slices are reused
func currentElement(iter iterator.Iterator) Element {
	key := iter.Key()[1:]
	value := iter.Value()
	return Element{
		Key:   append(make([]byte, 0, len(key)), key...),
		Value: append(make([]byte, 0, len(value)), value...),
	}
}
