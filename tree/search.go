// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Find - first node holding value in pre-order from the root, or nil
func (tree *Tree[V]) Find(value V) *Node[V] {
	return tree.root.Find(value)
}

// Find - first node holding value in pre-order within the sub-tree
// rooted at this node, or nil
func (p *Node[V]) Find(value V) *Node[V] {
	if nil == p {
		return nil
	}
	stack := []*Node[V]{p}
	for len(stack) > 0 {
		n := len(stack) - 1
		q := stack[n]
		stack = stack[:n]

		if q.value == value {
			return q
		}

		// reversed so the leftmost child is popped first
		for i := len(q.children) - 1; i >= 0; i -= 1 {
			stack = append(stack, q.children[i])
		}
	}
	return nil
}

// FindFrom - first node holding value in pre-order below start, a nil
// start finds nothing
func (tree *Tree[V]) FindFrom(start *Node[V], value V) *Node[V] {
	if nil != start && start.owner != tree {
		return nil
	}
	return start.Find(value)
}
