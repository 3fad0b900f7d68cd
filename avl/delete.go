// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Erase - remove key from the map, returns an iterator at the pair
// that followed it.  A key that is not present leaves the map
// unchanged and returns End().
func (m *Map[K, V]) Erase(key K) Iterator[K, V] {
	h, found, _ := m.search(key)
	if !found {
		return m.End()
	}
	next := m.successor(h)
	m.remove(h)
	return Iterator[K, V]{m: m, h: next}
}

// EraseAt - remove the pair at it, returns an iterator at the pair
// that followed it
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	m.checkOwner(it, "erase")
	it.node("erase")

	next := m.successor(it.h)
	m.remove(it.h)
	return Iterator[K, V]{m: m, h: next}
}

// EraseRange - remove the pairs from "from" up to but not including
// "to", returns "to"
func (m *Map[K, V]) EraseRange(from Iterator[K, V], to Iterator[K, V]) Iterator[K, V] {
	m.checkOwner(from, "erase range")
	m.checkOwner(to, "erase range")

	for from.h != to.h {
		if none == from.h {
			fault.Violation("avl: erase range runs past the end", m.count, int(to.h)-1)
		}
		from = m.EraseAt(from)
	}
	return from
}

// unlink a node from the tree and return it to the free list
func (m *Map[K, V]) remove(q handle) {
	m.store.destroy(q)

	p := m.store.at(q)
	up := p.up
	start := up

	switch {
	case none == p.left:
		// no children, or only a right child
		m.replace(up, q, p.right)

	case none == p.right:
		m.replace(up, q, p.left)

	default:
		// two children: promote the lowest node of the right sub-tree
		r := p.right
		s := m.store.at(r)
		if none == s.left {
			s.left = p.left
			m.store.at(p.left).up = r
			m.replace(up, q, r)
			start = r
		} else {
			for none != s.left {
				r = s.left
				s = m.store.at(r)
			}
			su := s.up

			// the successor's right child fills the gap it leaves
			m.store.at(su).left = s.right
			if none != s.right {
				m.store.at(s.right).up = su
			}

			s.left = p.left
			m.store.at(p.left).up = r
			s.right = p.right
			m.store.at(p.right).up = r
			m.replace(up, q, r)
			start = su
		}
	}
	m.count -= 1

	m.rebalance(start)
	m.store.freeNode(q)
	m.assertConsistent("erase")
}
