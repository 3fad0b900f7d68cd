// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a pair to the map, an existing key has its value
// replaced.  Returns an iterator at the pair's node.
func (m *Map[K, V]) Insert(pair Pair[K, V]) Iterator[K, V] {
	return m.Emplace(pair.Key, pair.Value)
}

// Emplace - add key with value to the map, an existing key has its
// value replaced.  Returns an iterator at the key's node.
func (m *Map[K, V]) Emplace(key K, value V) Iterator[K, V] {
	closest, found, s := m.search(key)
	if found {
		m.store.at(closest).value = value
		return Iterator[K, V]{m: m, h: closest}
	}

	h := m.store.newNode(key, value)
	m.attach(h, closest, s)
	return Iterator[K, V]{m: m, h: h}
}

// link a new node below parent, or make it the root of an empty tree
func (m *Map[K, V]) attach(h handle, parent handle, s side) {
	if none == parent {
		m.root = h
	} else {
		p := m.store.at(parent)
		if leftSide == s {
			p.left = h
		} else {
			p.right = h
		}
		m.store.at(h).up = parent
	}
	m.count += 1

	m.rebalance(h)
	m.assertConsistent("insert")
}
