// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an absent node has height zero
func (m *Map[K, V]) heightOf(h handle) int32 {
	if none == h {
		return 0
	}
	return m.store.at(h).height
}

// recompute height from the two children
func (m *Map[K, V]) updateHeight(h handle) {
	p := m.store.at(h)
	p.height = 1 + max(m.heightOf(p.left), m.heightOf(p.right))
}

// left height minus right height
func (m *Map[K, V]) balanceFactor(h handle) int32 {
	p := m.store.at(h)
	return m.heightOf(p.left) - m.heightOf(p.right)
}

// put x where old was below up, or at the root if up is none
func (m *Map[K, V]) replace(up handle, old handle, x handle) {
	if none == up {
		m.root = x
	} else {
		p := m.store.at(up)
		if p.left == old {
			p.left = x
		} else {
			p.right = x
		}
	}
	if none != x {
		m.store.at(x).up = up
	}
}

// walk from h to the root restoring heights and the AVL balance
func (m *Map[K, V]) rebalance(h handle) {
	for none != h {
		m.updateHeight(h)
		switch bf := m.balanceFactor(h); {
		case bf > 1:
			left := m.store.at(h).left
			if m.balanceFactor(left) < 0 {
				// double LR rotation
				m.rotateLeft(left)
			}
			h = m.rotateRight(h)
		case bf < -1:
			right := m.store.at(h).right
			if m.balanceFactor(right) > 0 {
				// double RL rotation
				m.rotateRight(right)
			}
			h = m.rotateLeft(h)
		}
		h = m.store.at(h).up
	}
}

// turn (x (y a b) c) into (y a (x b c)), returns y
func (m *Map[K, V]) rotateRight(x handle) handle {
	p := m.store.at(x)
	y := p.left
	q := m.store.at(y)

	inner := q.right
	p.left = inner
	if none != inner {
		m.store.at(inner).up = x
	}
	m.replace(p.up, x, y)
	q.right = x
	p.up = y

	// x is now below y so must be finished first
	m.updateHeight(x)
	m.updateHeight(y)
	return y
}

// turn (x a (y b c)) into (y (x a b) c), returns y
func (m *Map[K, V]) rotateLeft(x handle) handle {
	p := m.store.at(x)
	y := p.right
	q := m.store.at(y)

	inner := q.left
	p.right = inner
	if none != inner {
		m.store.at(inner).up = x
	}
	m.replace(p.up, x, y)
	q.left = x
	p.up = y

	m.updateHeight(x)
	m.updateHeight(y)
	return y
}
