// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// Map - type to hold the root node of a tree and the arena of its nodes
type Map[K, V any] struct {
	store   nodeStore[K, V]
	root    handle
	count   int
	compare func(a, b K) int
	log     *logger.L
}

// Pair - a key with its associated value
type Pair[K, V any] struct {
	Key   K
	Value V
}

// New - create an initially empty map ordered by the natural order of K
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty map ordered by compare, which
// must return a negative number, zero or a positive number as a is
// less than, equal to or greater than b
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	return NewWithAllocator(compare, Allocator[Node[K, V]](HeapAllocator[Node[K, V]]{}))
}

// NewWithAllocator - create an initially empty map whose nodes are
// obtained from allocator
func NewWithAllocator[K, V any](compare func(a, b K) int, allocator Allocator[Node[K, V]]) *Map[K, V] {
	if nil == compare {
		fault.Panic("avl: nil compare function")
	}
	if nil == allocator {
		fault.Panic("avl: nil allocator")
	}
	return &Map[K, V]{
		store: nodeStore[K, V]{
			allocator: allocator,
		},
		root:    none,
		count:   0,
		compare: compare,
	}
}

// SetLog - send debug messages about arena use to a logger channel
func (m *Map[K, V]) SetLog(log *logger.L) {
	m.log = log
	m.store.log = log
}

// IsEmpty - true if map contains no data
func (m *Map[K, V]) IsEmpty() bool {
	return none == m.root
}

// Size - number of nodes currently in the map
func (m *Map[K, V]) Size() int {
	return m.count
}

// Height - number of levels in the tree
func (m *Map[K, V]) Height() int {
	return int(m.heightOf(m.root))
}

// Front - the pair with the lowest key
func (m *Map[K, V]) Front() Pair[K, V] {
	if none == m.root {
		fault.Violation("avl: front of empty map", m.count, 0)
	}
	p := m.store.at(m.first(m.root))
	return Pair[K, V]{Key: p.key, Value: p.value}
}

// Back - the pair with the highest key
func (m *Map[K, V]) Back() Pair[K, V] {
	if none == m.root {
		fault.Violation("avl: back of empty map", m.count, 0)
	}
	p := m.store.at(m.last(m.root))
	return Pair[K, V]{Key: p.key, Value: p.value}
}
