// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/jacklund/blockchain/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Blocks       *PoolHandle `prefix:"B"`
	Headers      *PoolHandle `prefix:"H"`
	Transactions *PoolHandle `prefix:"T"`
	Sequence     *PoolHandle `prefix:"N"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open block database
type Store struct {
	sync.RWMutex
	log    *logger.L
	db     *leveldb.DB
	access *AccessData
	cache  *dbCache
	Pool   pools
}

// Open - open up the database
//
// a read only open requires an existing database of the current version
func Open(database string, readOnly bool) (*Store, error) {
	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		log.Errorf("open database: %q  error: %s", database, err)
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q is not initialised", database)
			return nil, fault.ErrNotInitialised
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	store := &Store{
		log:   log,
		db:    db,
		cache: newCache(),
	}
	store.access = newDA(db, store.cache)

	err = store.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened database: %q  version: %d  read only: %t", database, version, readOnly)

	ok = true // prevent db close
	return store, nil
}

// scan each field of the pools struct and create its handle
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return
	}
	s.cache.Clear()
	err := s.db.Close()
	if nil != err {
		s.log.Errorf("close error: %s", err)
	}
	s.db = nil
	s.log.Info("closed")
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
