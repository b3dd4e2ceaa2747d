// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdump - decode a packed block and its transactions
//
// used by the blockstore dump command and the CLI decode-block command
package blockdump
