// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlcheck - exercise the avl ordered map
//
// Runs the standard scenarios (ascending and descending bulk insert,
// inner erase, random operations compared with a reference map), a
// configurable soak run that logs its progress from a background
// go routine, and can draw the tree built from a list of
// keys.  An optional Lua configuration file selects the allocator,
// the soak parameters and the logging setup, e.g.:
//
//	local M = {}
//	M.allocator = { kind = "pool", retain = 8 }
//	M.soak = {
//	    seed = 42,
//	    operations = 1000000,
//	    key_range = 9999,
//	    erase_percent = 33,
//	    report_seconds = 10,
//	}
//	M.logging = {
//	    directory = "log",
//	    file = "avlcheck.log",
//	    size = 1048576,
//	    count = 10,
//	    levels = { DEFAULT = "info" },
//	}
//	return M
package main
