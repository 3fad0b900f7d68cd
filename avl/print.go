// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// marks an absent child of a node that has one other child
const emptyChild = "·"

// Dump - render the tree as text, the left sub-tree of each node is
// listed before the right one; each node shows its height and balance
func (m *Map[K, V]) Dump(printData bool) string {
	tree := treeprint.New()
	if none != m.root {
		m.dumpNode(tree, m.root, printData)
	}
	return tree.String()
}

func (m *Map[K, V]) dumpNode(branch treeprint.Tree, h handle, printData bool) {
	p := m.store.at(h)

	label := fmt.Sprintf("%v", p.key)
	if printData {
		label = fmt.Sprintf("%v → %v", p.key, p.value)
	}
	meta := fmt.Sprintf("%d/%+d", p.height, m.balanceFactor(h))

	if none == p.left && none == p.right {
		branch.AddMetaNode(meta, label)
		return
	}

	sub := branch.AddMetaBranch(meta, label)
	for _, child := range []handle{p.left, p.right} {
		if none == child {
			sub.AddNode(emptyChild)
		} else {
			m.dumpNode(sub, child, printData)
		}
	}
}
