// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treeedit/fault"
)

// MaximumChildren - fanout limit of every node
const MaximumChildren = 2

// Node - a node in the tree
type Node[V comparable] struct {
	value    V          // payload, also the lookup key
	children []*Node[V] // 0..2 children in insertion order
	up       *Node[V]   // points to parent node
	owner    *Tree[V]   // nil once removed from a tree
}

func newNode[V comparable](owner *Tree[V], value V) *Node[V] {
	return &Node[V]{
		value:    value,
		children: make([]*Node[V], 0, MaximumChildren),
		owner:    owner,
	}
}

// Value - read the value from a node
func (p *Node[V]) Value() V {
	return p.value
}

// Children - a copy of the ordered child list
func (p *Node[V]) Children() []*Node[V] {
	c := make([]*Node[V], len(p.children))
	copy(c, p.children)
	return c
}

// Parent - return parent node of a node, nil for a root
func (p *Node[V]) Parent() *Node[V] {
	return p.up
}

// IsFull - true if no more children can be added
func (p *Node[V]) IsFull() bool {
	return len(p.children) >= MaximumChildren
}

// Depth - get the depth of a node, a root is at depth zero
func (p *Node[V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all nodes at a specific depth below
// this node in left to right order
func (p *Node[V]) GetChildrenByDepth(depth uint) []*Node[V] {
	if depth == 0 {
		return []*Node[V]{p}
	}
	nodes := []*Node[V]{}
	for _, c := range p.children {
		nodes = append(nodes, c.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// AddChild - append a new leaf holding value
//
// this is the low-level primitive: when the node is already full
// nothing is changed, the condition is logged and
// fault.ErrChildLimitExceeded is returned
func (p *Node[V]) AddChild(value V) (*Node[V], error) {
	if p.IsFull() {
		if nil != p.owner {
			p.owner.warnf("add child: %v to: %v  error: %s", value, p.value, fault.ErrChildLimitExceeded)
		}
		return nil, fault.ErrChildLimitExceeded
	}

	child := newNode(p.owner, value)
	child.up = p
	p.children = append(p.children, child)

	if nil != p.owner {
		p.owner.count += 1
		p.owner.debugf("add child: %v to: %v", value, p.value)
	}
	return child, nil
}
