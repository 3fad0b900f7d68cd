// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// which child link of a parent a new node belongs in
type side int

const (
	leftSide side = iota
	rightSide
)

// descend from the root looking for key
//
// returns the node holding key and true, or the node that would be
// the parent of key, false and the side it would be attached on.  An
// empty tree gives (none, false, leftSide).
func (m *Map[K, V]) search(key K) (handle, bool, side) {
	closest := none
	s := leftSide
	for h := m.root; none != h; {
		p := m.store.at(h)
		closest = h
		switch c := m.compare(key, p.key); {
		case c < 0:
			s = leftSide
			h = p.left
		case c > 0:
			s = rightSide
			h = p.right
		default:
			return h, true, s
		}
	}
	return closest, false, s
}

// Find - iterator at key, or End() if key is not present
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	h, found, _ := m.search(key)
	if !found {
		return m.End()
	}
	return Iterator[K, V]{m: m, h: h}
}

// Get - the value stored for key and whether it was present
func (m *Map[K, V]) Get(key K) (V, bool) {
	h, found, _ := m.search(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.store.at(h).value, true
}
