// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk block store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. digest       = block header double SHA-256 (32 bytes, as hashed)
// 4. txId         = transaction double SHA-256 (32 bytes, as hashed)
// 5. n            = arrival order as big endian uint64 (8 bytes)
// 6. index        = payload position as little endian uint32 (4 bytes)
//
// Blocks:
//
//   B ++ digest                - block store
//                                data: packed block including envelope
//   H ++ digest                - block headers
//                                data: 80 byte packed header
//
// Transactions:
//
//   T ++ txId                  - location of a transaction
//                                data: digest ++ index
//
// Sequence:
//
//   N ++ n                     - blocks in the order they were stored
//                                data: digest
//
// Version:
//
//   0x00 ++ "VERSION"          - database format
//                                data: big endian uint32
package storage
