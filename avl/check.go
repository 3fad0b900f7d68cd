// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify key order, heights, balance and the up links of
// every node, and that the node count matches Size()
func (m *Map[K, V]) Check() error {
	if none != m.root && none != m.store.at(m.root).up {
		return fmt.Errorf("%w: root has a parent", fault.ErrParentLink)
	}
	n, _, err := m.checkNode(m.root, none, nil, nil)
	if nil != err {
		return err
	}
	if n != m.count {
		return fmt.Errorf("%w: found: %d  expected: %d", fault.ErrCountMismatch, n, m.count)
	}
	return nil
}

// internal: consistency checker, lo and hi bound the keys allowed in
// the sub-tree; returns the node count and height of the sub-tree
func (m *Map[K, V]) checkNode(h handle, up handle, lo *K, hi *K) (int, int32, error) {
	if none == h {
		return 0, 0, nil
	}
	if !m.store.live(h) {
		return 0, 0, fmt.Errorf("%w: free record %d is linked", fault.ErrParentLink, h-1)
	}
	p := m.store.at(h)
	if p.up != up {
		return 0, 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrParentLink, p.key, p.up-1, up-1)
	}
	if nil != lo && m.compare(*lo, p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: node: %v  not above: %v", fault.ErrKeyOrder, p.key, *lo)
	}
	if nil != hi && m.compare(p.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: node: %v  not below: %v", fault.ErrKeyOrder, p.key, *hi)
	}

	nl, hl, err := m.checkNode(p.left, h, lo, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := m.checkNode(p.right, h, &p.key, hi)
	if nil != err {
		return 0, 0, err
	}

	height := 1 + max(hl, hr)
	if p.height != height {
		return 0, 0, fmt.Errorf("%w: node: %v  actual: %d  expected: %d", fault.ErrHeightMismatch, p.key, p.height, height)
	}
	if bf := hl - hr; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: node: %v  balance: %+d", fault.ErrBalanceFactor, p.key, bf)
	}
	return 1 + nl + nr, height, nil
}

// MaxImbalance - the largest difference between the heights of the
// two sub-trees of any node
func (m *Map[K, V]) MaxImbalance() int {
	worst := int32(0)
	for h := m.first(m.root); none != h; h = m.successor(h) {
		bf := m.balanceFactor(h)
		if bf < 0 {
			bf = -bf
		}
		worst = max(worst, bf)
	}
	return int(worst)
}

// panic if the tree is damaged, only in builds tagged avldebug
func (m *Map[K, V]) assertConsistent(operation string) {
	if !invariantChecks {
		return
	}
	if err := m.Check(); nil != err {
		fault.Panicf("avl: %s left the tree inconsistent: %s", operation, err)
	}
}
