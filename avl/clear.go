// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - remove every pair and hand the arena back to the allocator
//
// The nodes are collected in one pass and freed in a second one, since
// freeing a node destroys the links the traversal is following.
func (m *Map[K, V]) Clear() {
	nodes := make([]handle, 0, m.count)
	for h := m.first(m.root); none != h; h = m.successor(h) {
		nodes = append(nodes, h)
	}

	for _, h := range nodes {
		m.store.destroy(h)
		m.store.freeNode(h)
	}
	m.store.release()

	m.root = none
	m.count = 0

	if nil != m.log {
		m.log.Debugf("cleared: %d nodes", len(nodes))
	}
}
