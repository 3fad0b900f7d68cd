// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
)

func TestDump(t *testing.T) {
	tree := avl.New[int, string]()
	assert.NotContains(t, tree.Dump(true), "→", "empty tree")

	tree.Emplace(2, "two")
	tree.Emplace(1, "one")
	tree.Emplace(3, "three")

	full := tree.Dump(true)
	for _, s := range []string{"2 → two", "1 → one", "3 → three", "2/+0", "1/+0"} {
		assert.Contains(t, full, s)
	}
	assert.NotContains(t, full, "·", "placeholder in a full tree")

	// the root is listed before its children
	assert.Less(t, strings.Index(full, "2 → two"), strings.Index(full, "1 → one"))
	assert.Less(t, strings.Index(full, "1 → one"), strings.Index(full, "3 → three"))

	tree.Erase(3)
	keys := tree.Dump(false)
	assert.NotContains(t, keys, "→", "values shown")
	assert.Contains(t, keys, "2/+1")
	assert.Contains(t, keys, "·", "missing right child")
}
