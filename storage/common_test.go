// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/jacklund/blockchain/storage"
)

// test database and log locations
const (
	testingDirName   = "testing"
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) *storage.Store {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	store, err := storage.Open(databasePath(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return store
}

// post test cleanup
func teardown(store *storage.Store) {
	store.Close()
	logger.Finalise()
	removeFiles()
}

func databasePath() string {
	return filepath.Join(testingDirName, databaseFileName)
}
