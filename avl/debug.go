// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build avldebug

package avl

// verify the whole tree after every insert and erase
const invariantChecks = true
