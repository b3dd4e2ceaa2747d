// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "Bkey"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, found := c.Get(key)
	assert.False(t, found, "key already exists")

	c.Set(dbPut, key, expected)
	actual, found := c.Get(key)
	assert.True(t, found, "key not found after put")
	assert.Equal(t, expected, actual, "cached value")

	c.Set(dbRead, key, []byte{'e'})
	actual, found = c.Get(key)
	assert.True(t, found, "key not found after read")
	assert.Equal(t, []byte{'e'}, actual, "cached value after read")
	assert.Equal(t, 1, c.Count(), "item count")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "Bkey", []byte{'a'})
	c.Set(dbRead, "Hkey", []byte{'b'})
	c.Clear()

	_, found := c.Get("Bkey")
	assert.False(t, found, "put survived clear")
	_, found = c.Get("Hkey")
	assert.False(t, found, "read survived clear")
	assert.Equal(t, 0, c.Count(), "item count")
}

func TestCacheClearPending(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "Bkey", []byte{'a'})
	c.Set(dbRead, "Hkey", []byte{'b'})
	c.ClearPending()

	_, found := c.Get("Bkey")
	assert.False(t, found, "pending put survived")
	value, found := c.Get("Hkey")
	assert.True(t, found, "read entry removed")
	assert.Equal(t, []byte{'b'}, value, "read value")
}
