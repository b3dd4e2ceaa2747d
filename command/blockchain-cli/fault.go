// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/jacklund/blockchain/fault"
)

// common errors - keep in alphabetic order
const (
	ErrBothHexAndFile       = fault.InvalidError("give either hex or file, not both")
	ErrRequiredBlock        = fault.InvalidError("block hex or file is required")
	ErrRequiredHex          = fault.InvalidError("hex argument is required")
	ErrRequiredTransactions = fault.InvalidError("at least one transaction is required")
	ErrRequiredValue        = fault.InvalidError("value is required")
	ErrTrailingData         = fault.InvalidError("unexpected data after record")
)
