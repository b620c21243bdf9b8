// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Traverse - call visit for every node of the sub-tree at start in
// pre-order, children left to right; a nil start visits nothing
func (tree *Tree[V]) Traverse(start *Node[V], visit func(*Node[V])) {
	walk(start, func(p *Node[V], _ int) {
		visit(p)
	})
}

// Nodes - the pre-order list of all nodes, recomputed on every call
func (tree *Tree[V]) Nodes() []*Node[V] {
	nodes := make([]*Node[V], 0, tree.count)
	tree.Traverse(tree.root, func(p *Node[V]) {
		nodes = append(nodes, p)
	})
	return nodes
}

// Values - the pre-order list of all values
func (tree *Tree[V]) Values() []V {
	values := make([]V, 0, tree.count)
	tree.Traverse(tree.root, func(p *Node[V]) {
		values = append(values, p.value)
	})
	return values
}

func (tree *Tree[V]) walk(start *Node[V], visit func(*Node[V], int)) {
	walk(start, visit)
}

// internal: explicit stack pre-order walk passing depth relative to start
func walk[V comparable](start *Node[V], visit func(*Node[V], int)) {
	if nil == start {
		return
	}

	type item struct {
		node  *Node[V]
		depth int
	}

	stack := []item{{start, 0}}
	for len(stack) > 0 {
		n := len(stack) - 1
		it := stack[n]
		stack = stack[:n]

		visit(it.node, it.depth)

		for i := len(it.node.children) - 1; i >= 0; i -= 1 {
			stack = append(stack, item{it.node.children[i], it.depth + 1})
		}
	}
}
