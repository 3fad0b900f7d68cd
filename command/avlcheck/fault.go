// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// command errors - keep in alphabetic order
const (
	ErrInvalidFormat   = fault.InvalidError("invalid output format")
	ErrInvalidKey      = fault.InvalidError("invalid key")
	ErrMissingKeys     = fault.InvalidError("no keys given")
	ErrMissingScenario = fault.InvalidError("no scenario given")
	ErrScenarioFailed  = fault.ProcessError("scenario failed")
)
