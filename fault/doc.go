// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// the classes used by the record decoders are:
//   LengthError   - the buffer ran out before the record was complete
//   EnvelopeError - the block framing (magic/length) is not acceptable
package fault
