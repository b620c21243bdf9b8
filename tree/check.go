// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treeedit/fault"
)

// Check - verify fanout, parent pointers, ownership and node count
func (tree *Tree[V]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		tree.warnf("check: root: %v has a parent", tree.root.value)
		return fault.ErrInconsistentTree
	}

	ok := true
	n := 0
	walk(tree.root, func(p *Node[V], _ int) {
		n += 1
		if !ok {
			return
		}
		if len(p.children) > MaximumChildren {
			tree.warnf("check: node: %v has %d children", p.value, len(p.children))
			ok = false
		}
		if p.owner != tree {
			tree.warnf("check: node: %v has wrong owner", p.value)
			ok = false
		}
		for _, c := range p.children {
			if c.up != p {
				tree.warnf("check: node: %v  parent: %v  expected: %v", c.value, c.up, p.value)
				ok = false
			}
		}
	})
	if !ok {
		return fault.ErrInconsistentTree
	}

	if n != tree.count {
		tree.warnf("check: count: %d  actual: %d", tree.count, n)
		return fault.ErrInconsistentTree
	}
	return nil
}
