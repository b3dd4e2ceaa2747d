// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/jacklund/blockchain/fault"
)

// FetchCursor - position within a pool for paged reads
type FetchCursor struct {
	pool *PoolHandle
	span ldb_util.Range
}

// NewFetchCursor - cursor at the first key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		span: p.span(),
	}
}

// Seek - move to the first key not less than key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.span.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements from the cursor, which then moves past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.scan(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key above the last one returned
		cursor.span.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - call f on each element from the cursor onwards, stopping at
// the first error which is then returned
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	var mapErr error
	err := cursor.scan(func(e Element) bool {
		mapErr = f(e.Key, e.Value)
		return nil == mapErr
	})
	if nil != mapErr {
		return mapErr
	}
	return err
}

// iterate until f returns false, the cursor itself does not move
func (cursor *FetchCursor) scan(f func(Element) bool) error {
	iter := cursor.pool.dataAccess.Iterator(&cursor.span)
	defer iter.Release()

	for iter.Next() {
		if !f(currentElement(iter)) {
			break
		}
	}
	return iter.Error()
}
