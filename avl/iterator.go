// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - a position in a map: either at a node or at the end
//
// An iterator stays usable across insertions and removals of other
// keys.  Removing the key it is positioned at invalidates it.
type Iterator[K, V any] struct {
	m *Map[K, V]
	h handle
}

// Begin - iterator at the lowest key, End() if the map is empty
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m, h: m.first(m.root)}
}

// End - the position after the highest key
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, h: none}
}

// Last - iterator at the highest key, End() if the map is empty
func (m *Map[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{m: m, h: m.last(m.root)}
}

// internal: lowest node in a sub-tree
func (m *Map[K, V]) first(h handle) handle {
	if none == h {
		return none
	}
	for {
		left := m.store.at(h).left
		if none == left {
			return h
		}
		h = left
	}
}

// internal: highest node in a sub-tree
func (m *Map[K, V]) last(h handle) handle {
	if none == h {
		return none
	}
	for {
		right := m.store.at(h).right
		if none == right {
			return h
		}
		h = right
	}
}

// internal: node with the next highest key, none after the last
func (m *Map[K, V]) successor(h handle) handle {
	p := m.store.at(h)
	if none != p.right {
		return m.first(p.right)
	}
	for {
		up := p.up
		if none == up {
			return none
		}
		p = m.store.at(up)
		if p.left == h {
			return up
		}
		h = up
	}
}

// internal: node with the next lowest key, none before the first
func (m *Map[K, V]) predecessor(h handle) handle {
	p := m.store.at(h)
	if none != p.left {
		return m.last(p.left)
	}
	for {
		up := p.up
		if none == up {
			return none
		}
		p = m.store.at(up)
		if p.right == h {
			return up
		}
		h = up
	}
}

// the iterator must have come from this map
func (m *Map[K, V]) checkOwner(it Iterator[K, V], action string) {
	if it.m != m {
		fault.Violation("avl: "+action+" with an iterator from a different map", m.count, int(it.h)-1)
	}
}

// checked access to the node under the iterator
func (it Iterator[K, V]) node(action string) *Node[K, V] {
	if nil == it.m {
		fault.Violation("avl: "+action+" with an unset iterator", 0, int(it.h)-1)
	}
	if none == it.h {
		fault.Violation("avl: "+action+" at end", it.m.count, -1)
	}
	if !it.m.store.live(it.h) {
		fault.Violation("avl: "+action+" with an invalidated iterator", it.m.count, int(it.h)-1)
	}
	return it.m.store.at(it.h)
}

// Valid - true if positioned at a node, false at the end
func (it Iterator[K, V]) Valid() bool {
	return none != it.h
}

// Equal - true if both iterators are at the same position of the
// same map
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.m == other.m && it.h == other.h
}

// Key - key at the iterator
func (it Iterator[K, V]) Key() K {
	return it.node("key").key
}

// Value - value at the iterator
func (it Iterator[K, V]) Value() V {
	return it.node("value").value
}

// Pair - key and value at the iterator
func (it Iterator[K, V]) Pair() Pair[K, V] {
	p := it.node("pair")
	return Pair[K, V]{Key: p.key, Value: p.value}
}

// SetValue - overwrite the value at the iterator, the key cannot be
// changed as it fixes the position in the tree
func (it Iterator[K, V]) SetValue(value V) {
	it.node("set value").value = value
}

// Next - the iterator at the next highest key, or the end
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.node("advance")
	return Iterator[K, V]{m: it.m, h: it.m.successor(it.h)}
}

// Prev - the iterator at the next lowest key; from the end this is
// the highest key, from the lowest key it is the end
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if nil != it.m && none == it.h {
		return it.m.Last()
	}
	it.node("retreat")
	return Iterator[K, V]{m: it.m, h: it.m.predecessor(it.h)}
}

// All - iterate over the pairs in ascending key order
//
// The loop body may erase the key it was given.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		h := m.first(m.root)
		for none != h {
			p := m.store.at(h)
			next := m.successor(h)
			if !yield(p.key, p.value) {
				return
			}
			h = next
		}
	}
}

// Backward - iterate over the pairs in descending key order
//
// The loop body may erase the key it was given.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		h := m.last(m.root)
		for none != h {
			p := m.store.at(h)
			prev := m.predecessor(h)
			if !yield(p.key, p.value) {
				return
			}
			h = prev
		}
	}
}

// Keys - iterate over the keys in ascending order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
