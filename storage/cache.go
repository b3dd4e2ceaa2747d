// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - recently written or read records keyed by prefixed key
type Cache interface {
	Get(string) ([]byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
	ClearPending()
	Count() int
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbRead
)

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	data := obj.(cacheData)
	return data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}

// ClearPending - drop entries created by Put, keeping those read
// from the database
func (c *dbCache) ClearPending() {
	for key, item := range c.cache.Items() {
		if dbPut == item.Object.(cacheData).op {
			c.cache.Delete(key)
		}
	}
}

func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}
