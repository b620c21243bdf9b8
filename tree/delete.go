// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// DeleteNode - remove the first node holding value together with its
// sub-tree; a matching root empties the whole tree
//
// returns true if anything was removed, a missing value is not an
// error
func (tree *Tree[V]) DeleteNode(value V) bool {
	if nil == tree.root {
		return false
	}

	if tree.root.value == value {
		release(tree.root)
		tree.root = nil
		tree.count = 0
		tree.debugf("delete root: %v", value)
		return true
	}

	// the root cannot match here so the result always has a parent
	p := tree.root.Find(value)
	if nil == p {
		tree.debugf("delete: %v not found", value)
		return false
	}

	parent := p.up
	for i, c := range parent.children {
		if c == p {
			children := make([]*Node[V], 0, MaximumChildren)
			children = append(children, parent.children[:i]...)
			parent.children = append(children, parent.children[i+1:]...)
			break
		}
	}

	n := release(p)
	tree.count -= n
	tree.debugf("delete: %v removed: %d nodes", value, n)
	return true
}

// detach a sub-tree from its owner, returns the number of nodes
func release[V comparable](p *Node[V]) int {
	p.up = nil
	n := 0
	walk(p, func(q *Node[V], _ int) {
		q.owner = nil
		n += 1
	})
	return n
}
