// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parenthesised form of the tree: (key left right), "-" for no node
func (m *Map[K, V]) shape(h handle) string {
	if none == h {
		return "-"
	}
	p := m.store.at(h)
	if none == p.left && none == p.right {
		return fmt.Sprintf("%v", p.key)
	}
	return fmt.Sprintf("(%v %s %s)", p.key, m.shape(p.left), m.shape(p.right))
}

func build(keys ...int) *Map[int, int] {
	m := New[int, int]()
	for _, k := range keys {
		m.Emplace(k, k)
	}
	return m
}

func TestRotations(t *testing.T) {
	tests := []struct {
		keys  []int
		shape string
	}{
		{[]int{1, 2, 3}, "(2 1 3)"}, // left rotation
		{[]int{3, 2, 1}, "(2 1 3)"}, // right rotation
		{[]int{3, 1, 2}, "(2 1 3)"}, // left-right
		{[]int{1, 3, 2}, "(2 1 3)"}, // right-left
		{[]int{4, 2, 6, 1, 3, 5, 7, 8, 9}, "(4 (2 1 3) (6 5 (8 7 9)))"},
	}
	for i, test := range tests {
		m := build(test.keys...)
		assert.Equal(t, test.shape, m.shape(m.root), "%d: keys: %v", i, test.keys)
		require.NoError(t, m.Check(), "%d", i)
	}
}

func TestRemoveCases(t *testing.T) {
	tests := []struct {
		name   string
		keys   []int
		remove int
		shape  string
	}{
		{"leaf", []int{2, 1, 3}, 1, "(2 - 3)"},
		{"only root", []int{1}, 1, "-"},
		{"root of two", []int{1, 2}, 1, "2"},
		{"one left child", []int{4, 2, 6, 1}, 2, "(4 1 6)"},
		{"one right child", []int{4, 2, 6, 7}, 6, "(4 2 7)"},
		{"successor is right child", []int{4, 2, 6, 1, 3, 7}, 4, "(6 (2 1 3) 7)"},
		{"successor is deeper", []int{4, 2, 8, 1, 6, 9, 7}, 4, "(6 (2 1 -) (8 7 9))"},
		{"successor leaves a gap", []int{4, 2, 8, 1, 3, 6, 9, 5}, 4, "(5 (2 1 3) (8 6 9))"},
		{"root of three", []int{2, 1, 3}, 2, "(3 1 -)"},
		{"rebalance after remove", []int{4, 2, 6, 1, 3, 5, 7, 8}, 1, "(4 (2 - 3) (6 5 (7 - 8)))"},
		{"rotation after remove", []int{2, 1, 3, 4}, 1, "(3 2 4)"},
	}
	for _, test := range tests {
		m := build(test.keys...)
		require.NoError(t, m.Check(), "%s: before", test.name)

		m.Erase(test.remove)
		assert.Equal(t, test.shape, m.shape(m.root), test.name)
		assert.NoError(t, m.Check(), test.name)
		assert.Equal(t, len(test.keys)-1, m.Size(), test.name)
	}
}

// a removed node's record is reused by the next insert
func TestFreeList(t *testing.T) {
	m := build(1, 2, 3)
	h, found, _ := m.search(2)
	require.True(t, found)

	m.Erase(2)
	assert.False(t, m.store.live(h), "removed record still live")
	assert.Equal(t, 1, m.store.freeNodes)

	m.Emplace(10, 10)
	assert.Equal(t, 0, m.store.freeNodes)
	h2, found, _ := m.search(10)
	require.True(t, found)
	assert.Equal(t, h, h2, "record not reused")
}

func TestSearchResult(t *testing.T) {
	m := New[int, int]()
	h, found, _ := m.search(5)
	assert.Equal(t, none, h, "empty tree")
	assert.False(t, found)

	m = build(20, 10, 30)
	h, found, s := m.search(25)
	assert.False(t, found)
	assert.Equal(t, 30, m.store.at(h).key)
	assert.Equal(t, leftSide, s)

	h, found, s = m.search(35)
	assert.False(t, found)
	assert.Equal(t, 30, m.store.at(h).key)
	assert.Equal(t, rightSide, s)

	h, found, _ = m.search(10)
	assert.True(t, found)
	assert.Equal(t, 10, m.store.at(h).key)
}

func TestCheckDetectsDamage(t *testing.T) {
	m := build(1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, m.Check())

	// break a parent link
	h, _, _ := m.search(1)
	saved := m.store.at(h).up
	m.store.at(h).up = m.root
	err := m.Check()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parent link"), err.Error())
	m.store.at(h).up = saved

	// stale height
	m.store.at(m.root).height += 1
	require.Error(t, m.Check())
	m.store.at(m.root).height -= 1

	// out of order key
	m.store.at(h).key = 100
	require.Error(t, m.Check())
	m.store.at(h).key = 1

	// count
	m.count += 1
	require.Error(t, m.Check())
	m.count -= 1

	require.NoError(t, m.Check())
}
